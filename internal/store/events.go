package store

import "hnl-console/internal/models"

func (s *Store) CreateEvent(ev *models.Event) error {
	return s.count("event_create", wrapErr(s.db.Create(ev).Error))
}

// GetEvent returns the row even when archived.
func (s *Store) GetEvent(id uint) (*models.Event, error) {
	var ev models.Event
	err := s.db.Preload("Location").Preload("Portal").First(&ev, id).Error
	if err := s.count("event_get", wrapErr(err)); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *Store) UpdateEvent(ev *models.Event) error {
	return s.count("event_update", wrapErr(s.db.Save(ev).Error))
}

// ArchiveEvent soft-deletes: the row stays readable by primary key.
func (s *Store) ArchiveEvent(id uint, reason string) error {
	var ev models.Event
	if err := s.count("event_archive", wrapErr(s.db.First(&ev, id).Error)); err != nil {
		return err
	}
	ev.Archived = true
	ev.ArchiveReason = reason
	ev.ArchivedAt = now()
	return s.count("event_archive", wrapErr(s.db.Save(&ev).Error))
}

func (s *Store) ListEventsChronological() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Where("archived = ?", false).
		Order("date asc, time asc").
		Find(&events).Error
	if err := s.count("event_timeline", wrapErr(err)); err != nil {
		return nil, err
	}
	return events, nil
}
