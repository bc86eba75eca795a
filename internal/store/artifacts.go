package store

import "hnl-console/internal/models"

func (s *Store) CreateArtifact(a *models.Artifact) error {
	return s.count("artifact_create", wrapErr(s.db.Create(a).Error))
}

func (s *Store) GetArtifact(id uint) (*models.Artifact, error) {
	var a models.Artifact
	err := s.db.Preload("FoundAt").First(&a, id).Error
	if err := s.count("artifact_get", wrapErr(err)); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) UpdateArtifact(a *models.Artifact) error {
	return s.count("artifact_update", wrapErr(s.db.Save(a).Error))
}

// DeleteArtifact removes the row permanently.
func (s *Store) DeleteArtifact(id uint) error {
	var a models.Artifact
	if err := s.count("artifact_delete", wrapErr(s.db.First(&a, id).Error)); err != nil {
		return err
	}
	return s.count("artifact_delete", wrapErr(s.db.Delete(&a).Error))
}
