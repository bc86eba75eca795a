package store

import "hnl-console/internal/models"

func (s *Store) CreatePortal(p *models.Portal) error {
	return s.count("portal_create", wrapErr(s.db.Create(p).Error))
}

func (s *Store) GetPortal(id uint) (*models.Portal, error) {
	var p models.Portal
	err := s.db.Preload("Origin").Preload("Destination").First(&p, id).Error
	if err := s.count("portal_get", wrapErr(err)); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdatePortal(p *models.Portal) error {
	return s.count("portal_update", wrapErr(s.db.Save(p).Error))
}
