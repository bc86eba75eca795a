package store

import (
	"hnl-console/internal/models"

	"gorm.io/gorm"
)

// CreateEntity inserts the base row plus the species subclass row when sub
// is one of *Monster, *ShadowCreature, *MindEntity.
func (s *Store) CreateEntity(e *models.Entity, sub interface{}) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		switch v := sub.(type) {
		case nil:
		case *models.Monster:
			v.EntityID = e.ID
			return tx.Create(v).Error
		case *models.ShadowCreature:
			v.EntityID = e.ID
			return tx.Create(v).Error
		case *models.MindEntity:
			v.EntityID = e.ID
			return tx.Create(v).Error
		}
		return nil
	})
	return s.count("entity_create", wrapErr(err))
}

func (s *Store) GetEntity(id uint) (*models.Entity, error) {
	var e models.Entity
	err := s.db.First(&e, id).Error
	if err := s.count("entity_get", wrapErr(err)); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) UpdateEntity(e *models.Entity) error {
	return s.count("entity_update", wrapErr(s.db.Save(e).Error))
}
