package store

import (
	"hnl-console/internal/models"

	"gorm.io/gorm"
)

// CreatePerson inserts the base row and, when sub is non-nil, the matching
// role subclass row in one transaction. sub must be one of *Researcher,
// *Agent, *Victim, *PsychicSubject with PersonID left zero.
func (s *Store) CreatePerson(p *models.Person, sub interface{}) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		switch v := sub.(type) {
		case nil:
		case *models.Researcher:
			v.PersonID = p.ID
			return tx.Create(v).Error
		case *models.Agent:
			v.PersonID = p.ID
			return tx.Create(v).Error
		case *models.Victim:
			v.PersonID = p.ID
			return tx.Create(v).Error
		case *models.PsychicSubject:
			v.PersonID = p.ID
			return tx.Create(v).Error
		}
		return nil
	})
	return s.count("person_create", wrapErr(err))
}

func (s *Store) GetPerson(id uint) (*models.Person, error) {
	var p models.Person
	err := s.db.First(&p, id).Error
	if err := s.count("person_get", wrapErr(err)); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdatePerson(p *models.Person) error {
	return s.count("person_update", wrapErr(s.db.Save(p).Error))
}

func (s *Store) ArchivePerson(id uint, reason string) error {
	var p models.Person
	if err := s.count("person_archive", wrapErr(s.db.First(&p, id).Error)); err != nil {
		return err
	}
	p.Archived = true
	p.ArchiveReason = reason
	p.ArchivedAt = now()
	return s.count("person_archive", wrapErr(s.db.Save(&p).Error))
}

func (s *Store) GetOperatorByUsername(username string) (*models.Operator, error) {
	var op models.Operator
	err := s.db.Where("username = ?", username).First(&op).Error
	if err := s.count("operator_get", wrapErr(err)); err != nil {
		return nil, err
	}
	return &op, nil
}
