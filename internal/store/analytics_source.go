package store

import (
	"errors"

	"hnl-console/internal/analytics"
	"hnl-console/internal/models"
)

// The store is the fact source for the analytics engine.
var _ analytics.Source = (*Store)(nil)

type entityThreatRow struct {
	EventID     uint
	ThreatLevel models.ThreatLevel
}

func (s *Store) eventEntityThreats() (map[uint][]models.ThreatLevel, error) {
	var rows []entityThreatRow
	err := s.db.Model(&models.EventEntity{}).
		Select("event_entities.event_id AS event_id, entities.threat_level AS threat_level").
		Joins("JOIN entities ON entities.id = event_entities.entity_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	byEvent := make(map[uint][]models.ThreatLevel)
	for _, r := range rows {
		byEvent[r.EventID] = append(byEvent[r.EventID], r.ThreatLevel)
	}
	return byEvent, nil
}

func (s *Store) eventInjuries() (map[uint][]models.InjurySeverity, error) {
	var recs []models.VictimRecord
	if err := s.db.Find(&recs).Error; err != nil {
		return nil, err
	}
	byEvent := make(map[uint][]models.InjurySeverity)
	for _, r := range recs {
		byEvent[r.EventID] = append(byEvent[r.EventID], r.InjurySeverity)
	}
	return byEvent, nil
}

func (s *Store) portalStatuses() (map[uint]models.PortalStatus, error) {
	var portals []models.Portal
	if err := s.db.Find(&portals).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.PortalStatus, len(portals))
	for _, p := range portals {
		byID[p.ID] = p.Status
	}
	return byID, nil
}

func (s *Store) factsFor(ev models.Event, threats map[uint][]models.ThreatLevel,
	injuries map[uint][]models.InjurySeverity, portals map[uint]models.PortalStatus) analytics.EventFacts {

	f := analytics.EventFacts{
		ID:             ev.ID,
		Severity:       ev.Severity,
		Outcome:        ev.Outcome,
		EntityThreats:  threats[ev.ID],
		VictimInjuries: injuries[ev.ID],
	}
	if portals != nil && ev.PortalID != nil {
		if status, ok := portals[*ev.PortalID]; ok {
			f.PortalStatus = &status
		}
	}
	return f
}

// EventFacts reads the rows for a single event scope. Archived events are
// still addressable by explicit ID.
func (s *Store) EventFacts(id uint) (analytics.EventFacts, error) {
	var ev models.Event
	if err := s.count("dts_read", wrapErr(s.db.First(&ev, id).Error)); err != nil {
		return analytics.EventFacts{}, err
	}

	f := analytics.EventFacts{ID: ev.ID, Severity: ev.Severity, Outcome: ev.Outcome}

	var threats []models.ThreatLevel
	err := s.db.Model(&models.EventEntity{}).
		Select("entities.threat_level").
		Joins("JOIN entities ON entities.id = event_entities.entity_id").
		Where("event_entities.event_id = ?", id).
		Scan(&threats).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return analytics.EventFacts{}, err
	}
	f.EntityThreats = threats

	var injuries []models.InjurySeverity
	err = s.db.Model(&models.VictimRecord{}).
		Select("injury_severity").
		Where("event_id = ?", id).
		Scan(&injuries).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return analytics.EventFacts{}, err
	}
	f.VictimInjuries = injuries

	if ev.PortalID != nil {
		var portal models.Portal
		if err := s.count("dts_read", wrapErr(s.db.First(&portal, *ev.PortalID).Error)); err == nil {
			f.PortalStatus = &portal.Status
		} else if !errors.Is(err, ErrNotFound) {
			return analytics.EventFacts{}, err
		}
	}
	return f, nil
}

func (s *Store) PortalFacts(id uint) (analytics.PortalFacts, error) {
	var portal models.Portal
	if err := s.count("dts_read", wrapErr(s.db.First(&portal, id).Error)); err != nil {
		return analytics.PortalFacts{}, err
	}

	var events []models.Event
	err := s.db.Where("portal_id = ? AND archived = ?", id, false).Find(&events).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return analytics.PortalFacts{}, err
	}

	threats, err := s.eventEntityThreats()
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return analytics.PortalFacts{}, err
	}
	injuries, err := s.eventInjuries()
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return analytics.PortalFacts{}, err
	}

	f := analytics.PortalFacts{ID: portal.ID, Status: portal.Status}
	for _, ev := range events {
		// portal status contributes once at the portal level, not per event
		f.Events = append(f.Events, s.factsFor(ev, threats, injuries, nil))
	}
	return f, nil
}

func (s *Store) GlobalFacts() (analytics.GlobalFacts, error) {
	var g analytics.GlobalFacts

	var events []models.Event
	err := s.db.Where("archived = ?", false).Find(&events).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return g, err
	}
	for _, ev := range events {
		g.Events = append(g.Events, analytics.EventFacts{
			ID: ev.ID, Severity: ev.Severity, Outcome: ev.Outcome,
		})
	}

	err = s.db.Model(&models.Entity{}).Select("threat_level").Scan(&g.EntityThreats).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return g, err
	}
	err = s.db.Model(&models.Portal{}).Select("status").Scan(&g.PortalStatuses).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return g, err
	}
	err = s.db.Model(&models.VictimRecord{}).Select("injury_severity").Scan(&g.VictimInjuries).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return g, err
	}
	return g, nil
}

func (s *Store) AllEventFacts() ([]analytics.EventFacts, error) {
	var events []models.Event
	err := s.db.Where("archived = ?", false).Find(&events).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return nil, err
	}

	threats, err := s.eventEntityThreats()
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return nil, err
	}
	injuries, err := s.eventInjuries()
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return nil, err
	}
	portals, err := s.portalStatuses()
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return nil, err
	}

	facts := make([]analytics.EventFacts, 0, len(events))
	for _, ev := range events {
		facts = append(facts, s.factsFor(ev, threats, injuries, portals))
	}
	return facts, nil
}

func (s *Store) AllPortalFacts() ([]analytics.PortalFacts, error) {
	var portals []models.Portal
	if err := s.count("dts_read", wrapErr(s.db.Find(&portals).Error)); err != nil {
		return nil, err
	}

	var events []models.Event
	err := s.db.Where("portal_id IS NOT NULL AND archived = ?", false).Find(&events).Error
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return nil, err
	}

	threats, err := s.eventEntityThreats()
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return nil, err
	}
	injuries, err := s.eventInjuries()
	if err := s.count("dts_read", wrapErr(err)); err != nil {
		return nil, err
	}

	byPortal := make(map[uint][]analytics.EventFacts)
	for _, ev := range events {
		byPortal[*ev.PortalID] = append(byPortal[*ev.PortalID], s.factsFor(ev, threats, injuries, nil))
	}

	facts := make([]analytics.PortalFacts, 0, len(portals))
	for _, p := range portals {
		facts = append(facts, analytics.PortalFacts{
			ID:     p.ID,
			Status: p.Status,
			Events: byPortal[p.ID],
		})
	}
	return facts, nil
}

// SaveEventScore persists one recomputed score with a single update.
func (s *Store) SaveEventScore(id uint, score int, band analytics.Band) error {
	res := s.db.Model(&models.Event{}).Where("id = ?", id).
		Updates(map[string]interface{}{"threat_score": score, "threat_band": string(band)})
	if err := s.count("dts_write", wrapErr(res.Error)); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SavePortalScore(id uint, score int, band analytics.Band) error {
	res := s.db.Model(&models.Portal{}).Where("id = ?", id).
		Updates(map[string]interface{}{"threat_score": score, "threat_band": string(band)})
	if err := s.count("dts_write", wrapErr(res.Error)); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SaveSnapshot(score int, band analytics.Band, facts analytics.GlobalFacts) error {
	snap := models.DTSSnapshot{
		Score:       score,
		Band:        string(band),
		EventCount:  len(facts.Events),
		EntityCount: len(facts.EntityThreats),
		PortalCount: len(facts.PortalStatuses),
		VictimCount: len(facts.VictimInjuries),
	}
	return s.count("dts_write", wrapErr(s.db.Create(&snap).Error))
}
