package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"hnl-console/internal/models"
)

// PortalStabilityRow is one portal with its event aggregates.
type PortalStabilityRow struct {
	PortalID        uint
	Name            string
	Status          models.PortalStatus
	OriginName      *string
	DestinationName *string
	EventCount      int
	SevereCount     int
}

func (s *Store) PortalStability() ([]PortalStabilityRow, error) {
	query, args, err := sq.Select(
		"p.id AS portal_id",
		"p.name AS name",
		"p.status AS status",
		"origin.name AS origin_name",
		"dest.name AS destination_name",
		"COUNT(DISTINCT e.id) AS event_count",
		"COALESCE(SUM(CASE WHEN e.severity = 'Severe' THEN 1 ELSE 0 END), 0) AS severe_count").
		From("portals p").
		LeftJoin("events e ON e.portal_id = p.id AND e.archived = false").
		LeftJoin("locations origin ON origin.id = p.origin_id").
		LeftJoin("locations dest ON dest.id = p.destination_id").
		GroupBy("p.id", "p.name", "p.status", "origin.name", "dest.name").
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, s.count("portal_stability", err)
	}

	var rows []PortalStabilityRow
	err = s.db.Raw(query, args...).Scan(&rows).Error
	if err := s.count("portal_stability", wrapErr(err)); err != nil {
		return nil, err
	}
	return rows, nil
}

// SightingRow is one entity appearance with its event's location.
type SightingRow struct {
	AppearanceID uint
	EventID      uint
	StartTime    *time.Time
	EndTime      *time.Time
	LocationName *string
}

func (s *Store) EntitySightings(entityID uint) ([]SightingRow, error) {
	query, args, err := sq.Select(
		"ea.id AS appearance_id",
		"ea.event_id AS event_id",
		"ea.start_time AS start_time",
		"ea.end_time AS end_time",
		"l.name AS location_name").
		From("entity_appearances ea").
		LeftJoin("events e ON e.id = ea.event_id").
		LeftJoin("locations l ON l.id = e.location_id").
		Where(sq.Eq{"ea.entity_id": entityID}).
		OrderBy("ea.id").
		ToSql()
	if err != nil {
		return nil, s.count("entity_sightings", err)
	}

	var rows []SightingRow
	err = s.db.Raw(query, args...).Scan(&rows).Error
	if err := s.count("entity_sightings", wrapErr(err)); err != nil {
		return nil, err
	}
	return rows, nil
}

// DisturbanceRow carries the strongest available indicator per location:
// distortion level, else population density, else baseline risk.
type DisturbanceRow struct {
	LocationID uint
	Name       string
	WorldType  models.WorldType
	Indicator  float64
}

func (s *Store) DisturbanceIndicators() ([]DisturbanceRow, error) {
	query, args, err := sq.Select(
		"l.id AS location_id",
		"l.name AS name",
		"l.world_type AS world_type",
		"COALESCE(ul.distortion_level, sl.population_density, l.risk_level) AS indicator").
		From("locations l").
		LeftJoin("upside_down_locations ul ON ul.location_id = l.id").
		LeftJoin("surface_locations sl ON sl.location_id = l.id").
		OrderBy("indicator DESC").
		ToSql()
	if err != nil {
		return nil, s.count("disturbance_map", err)
	}

	var rows []DisturbanceRow
	err = s.db.Raw(query, args...).Scan(&rows).Error
	if err := s.count("disturbance_map", wrapErr(err)); err != nil {
		return nil, err
	}
	return rows, nil
}

// PsychicSubjectRow joins a person with their psychic subclass row.
type PsychicSubjectRow struct {
	PersonID     uint
	Name         string
	AbilityType  string
	PowerLevel   int
	ControlScore int
}

func (s *Store) PsychicSubjects() ([]PsychicSubjectRow, error) {
	query, args, err := sq.Select(
		"p.id AS person_id",
		"p.name AS name",
		"ps.ability_type AS ability_type",
		"ps.power_level AS power_level",
		"ps.control_score AS control_score").
		From("people p").
		Join("psychic_subjects ps ON ps.person_id = p.id").
		Where(sq.Eq{"p.archived": false}).
		OrderBy("ps.power_level DESC").
		ToSql()
	if err != nil {
		return nil, s.count("psychic_dashboard", err)
	}

	var rows []PsychicSubjectRow
	err = s.db.Raw(query, args...).Scan(&rows).Error
	if err := s.count("psychic_dashboard", wrapErr(err)); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) RecentExperiments(personID uint, limit int) ([]models.Experiment, error) {
	var rows []models.Experiment
	err := s.db.Where("conducted_by_id = ?", personID).
		Order("date desc").
		Limit(limit).
		Find(&rows).Error
	if err := s.count("psychic_dashboard", wrapErr(err)); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) RecentVictimEvents(personID uint, limit int) ([]models.Event, error) {
	var rows []models.Event
	err := s.db.
		Joins("JOIN victim_records vr ON vr.event_id = events.id AND vr.person_id = ?", personID).
		Order("events.date desc").
		Limit(limit).
		Find(&rows).Error
	if err := s.count("psychic_dashboard", wrapErr(err)); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) LatestSnapshot() (*models.DTSSnapshot, error) {
	var snap models.DTSSnapshot
	err := s.db.Order("id desc").First(&snap).Error
	if err := s.count("snapshot_get", wrapErr(err)); err != nil {
		return nil, err
	}
	return &snap, nil
}
