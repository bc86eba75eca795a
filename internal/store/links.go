package store

import (
	"time"

	"hnl-console/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkEventEntity records a timed appearance and the junction row. The
// junction insert is idempotent.
func (s *Store) LinkEventEntity(eventID, entityID uint, start, end *time.Time) (*models.EntityAppearance, error) {
	if err := s.exists(&models.Event{}, eventID, "event_get"); err != nil {
		return nil, err
	}
	if err := s.exists(&models.Entity{}, entityID, "entity_get"); err != nil {
		return nil, err
	}

	app := models.EntityAppearance{
		EntityID:  entityID,
		EventID:   eventID,
		StartTime: start,
		EndTime:   end,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		link := models.EventEntity{EventID: eventID, EntityID: entityID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
	if err := s.count("link_event_entity", wrapErr(err)); err != nil {
		return nil, err
	}
	return &app, nil
}

// UnlinkEventEntity drops the junction row; appearances go too when asked.
func (s *Store) UnlinkEventEntity(eventID, entityID uint, dropAppearances bool) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ? AND entity_id = ?", eventID, entityID).
			Delete(&models.EventEntity{}).Error; err != nil {
			return err
		}
		if dropAppearances {
			return tx.Where("event_id = ? AND entity_id = ?", eventID, entityID).
				Delete(&models.EntityAppearance{}).Error
		}
		return nil
	})
	return s.count("unlink_event_entity", wrapErr(err))
}

func (s *Store) LinkEventArtifact(eventID, artifactID uint) error {
	if err := s.exists(&models.Event{}, eventID, "event_get"); err != nil {
		return err
	}
	if err := s.exists(&models.Artifact{}, artifactID, "artifact_get"); err != nil {
		return err
	}
	link := models.EventArtifact{EventID: eventID, ArtifactID: artifactID}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	return s.count("link_event_artifact", wrapErr(err))
}

func (s *Store) UnlinkEventArtifact(eventID, artifactID uint) error {
	err := s.db.Where("event_id = ? AND artifact_id = ?", eventID, artifactID).
		Delete(&models.EventArtifact{}).Error
	return s.count("unlink_event_artifact", wrapErr(err))
}

// AddVictimRecord assigns the next per-event sequence number inside the
// insert transaction.
func (s *Store) AddVictimRecord(eventID, personID uint, severity models.InjurySeverity) (*models.VictimRecord, error) {
	if err := s.exists(&models.Event{}, eventID, "event_get"); err != nil {
		return nil, err
	}
	if err := s.exists(&models.Person{}, personID, "person_get"); err != nil {
		return nil, err
	}

	var rec models.VictimRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var maxSeq uint
		row := tx.Model(&models.VictimRecord{}).
			Where("event_id = ?", eventID).
			Select("COALESCE(MAX(seq), 0)").
			Row()
		if err := row.Scan(&maxSeq); err != nil {
			return err
		}
		rec = models.VictimRecord{
			EventID:        eventID,
			Seq:            maxSeq + 1,
			PersonID:       personID,
			InjurySeverity: severity,
		}
		return tx.Create(&rec).Error
	})
	if err := s.count("victim_add", wrapErr(err)); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) RemoveVictimRecord(eventID, seq uint) error {
	res := s.db.Where("event_id = ? AND seq = ?", eventID, seq).
		Delete(&models.VictimRecord{})
	if err := s.count("victim_remove", wrapErr(res.Error)); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) RemoveVictimByPerson(eventID, personID uint) error {
	res := s.db.Where("event_id = ? AND person_id = ?", eventID, personID).
		Delete(&models.VictimRecord{})
	if err := s.count("victim_remove", wrapErr(res.Error)); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) exists(model interface{}, id uint, op string) error {
	var n int64
	err := s.db.Model(model).Where("id = ?", id).Count(&n).Error
	if err := s.count(op, wrapErr(err)); err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
