package store_test

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hnl-console/internal/analytics"
	"hnl-console/internal/database"
	"hnl-console/internal/models"
	"hnl-console/internal/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// newTestStore opens a private in-memory database with the full schema.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:hnl_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(db)
}

func mustCreateEvent(t *testing.T, s *store.Store, ev *models.Event) *models.Event {
	t.Helper()
	if ev.Date.IsZero() {
		ev.Date = time.Date(1983, 11, 6, 0, 0, 0, 0, time.UTC)
	}
	if ev.Outcome == "" {
		ev.Outcome = models.OutcomeContained
	}
	if ev.Severity == "" {
		ev.Severity = models.SeverityMinor
	}
	if err := s.CreateEvent(ev); err != nil {
		t.Fatalf("create event: %v", err)
	}
	return ev
}

func mustCreatePerson(t *testing.T, s *store.Store, name string, role models.PersonRole, sub interface{}) *models.Person {
	t.Helper()
	p := &models.Person{Name: name, Role: role, Status: models.PersonActive}
	if err := s.CreatePerson(p, sub); err != nil {
		t.Fatalf("create person: %v", err)
	}
	return p
}

func mustCreateEntity(t *testing.T, s *store.Store, name string, threat models.ThreatLevel) *models.Entity {
	t.Helper()
	e := &models.Entity{
		Name:        name,
		Species:     models.SpeciesMonster,
		ThreatLevel: threat,
		OriginWorld: models.WorldUpsideDown,
	}
	if err := s.CreateEntity(e, &models.Monster{AggressionIndex: 7}); err != nil {
		t.Fatalf("create entity: %v", err)
	}
	return e
}

func TestEventArchive(t *testing.T) {
	s := newTestStore(t)

	ev := mustCreateEvent(t, s, &models.Event{Description: "gate flicker in lab C"})
	other := mustCreateEvent(t, s, &models.Event{
		Description: "perimeter breach",
		Date:        time.Date(1983, 11, 7, 0, 0, 0, 0, time.UTC),
	})

	if err := s.ArchiveEvent(ev.ID, "duplicate filing"); err != nil {
		t.Fatalf("archive: %v", err)
	}

	got, err := s.GetEvent(ev.ID)
	if err != nil {
		t.Fatalf("archived event must stay readable by ID: %v", err)
	}
	if !got.Archived || got.ArchiveReason != "duplicate filing" || got.ArchivedAt == nil {
		t.Errorf("archive fields not persisted: %+v", got)
	}

	timeline, err := s.ListEventsChronological()
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(timeline) != 1 || timeline[0].ID != other.ID {
		t.Errorf("timeline should exclude archived rows, got %d rows", len(timeline))
	}

	if err := s.ArchiveEvent(9999, "x"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("archiving a missing event = %v, want ErrNotFound", err)
	}
}

func TestEventTimelineOrder(t *testing.T) {
	s := newTestStore(t)

	late := mustCreateEvent(t, s, &models.Event{
		Date: time.Date(1984, 3, 1, 0, 0, 0, 0, time.UTC), Time: "09:00:00",
	})
	early := mustCreateEvent(t, s, &models.Event{
		Date: time.Date(1983, 11, 6, 0, 0, 0, 0, time.UTC), Time: "21:30:00",
	})
	sameDayEarlier := mustCreateEvent(t, s, &models.Event{
		Date: time.Date(1983, 11, 6, 0, 0, 0, 0, time.UTC), Time: "08:15:00",
	})

	timeline, err := s.ListEventsChronological()
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	wantOrder := []uint{sameDayEarlier.ID, early.ID, late.ID}
	if len(timeline) != 3 {
		t.Fatalf("got %d events, want 3", len(timeline))
	}
	for i, want := range wantOrder {
		if timeline[i].ID != want {
			t.Errorf("timeline[%d].ID = %d, want %d", i, timeline[i].ID, want)
		}
	}
}

func TestArtifactHardDelete(t *testing.T) {
	s := newTestStore(t)

	a := &models.Artifact{Name: "pulsing vine sample", Type: models.ArtifactBiological, AnomalyLevel: 6}
	if err := s.CreateArtifact(a); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.DeleteArtifact(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetArtifact(a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("deleted artifact lookup = %v, want ErrNotFound", err)
	}
	if err := s.DeleteArtifact(a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestVictimSequence(t *testing.T) {
	s := newTestStore(t)

	ev := mustCreateEvent(t, s, &models.Event{})
	other := mustCreateEvent(t, s, &models.Event{})
	p1 := mustCreatePerson(t, s, "Barb Holland", models.RoleVictim, &models.Victim{InjurySeverity: models.InjuryFatal})
	p2 := mustCreatePerson(t, s, "Will Byers", models.RoleVictim, &models.Victim{InjurySeverity: models.InjurySevere})

	r1, err := s.AddVictimRecord(ev.ID, p1.ID, models.InjuryFatal)
	if err != nil {
		t.Fatalf("add victim: %v", err)
	}
	r2, err := s.AddVictimRecord(ev.ID, p2.ID, models.InjurySevere)
	if err != nil {
		t.Fatalf("add victim: %v", err)
	}
	if r1.Seq != 1 || r2.Seq != 2 {
		t.Errorf("seqs = (%d, %d), want (1, 2)", r1.Seq, r2.Seq)
	}

	// sequences are per event, not global
	r3, err := s.AddVictimRecord(other.ID, p2.ID, models.InjuryMinor)
	if err != nil {
		t.Fatalf("add victim: %v", err)
	}
	if r3.Seq != 1 {
		t.Errorf("other event seq = %d, want 1", r3.Seq)
	}

	if err := s.RemoveVictimRecord(ev.ID, r1.Seq); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.RemoveVictimRecord(ev.ID, r1.Seq); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second remove = %v, want ErrNotFound", err)
	}
	if err := s.RemoveVictimByPerson(ev.ID, p2.ID); err != nil {
		t.Fatalf("remove by person: %v", err)
	}

	if _, err := s.AddVictimRecord(ev.ID, 9999, models.InjuryMinor); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("victim with unknown person = %v, want ErrNotFound", err)
	}
	if _, err := s.AddVictimRecord(9999, p1.ID, models.InjuryMinor); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("victim on unknown event = %v, want ErrNotFound", err)
	}
}

func TestLinkEventEntity(t *testing.T) {
	s := newTestStore(t)

	ev := mustCreateEvent(t, s, &models.Event{})
	ent := mustCreateEntity(t, s, "Demogorgon", models.ThreatCritical)

	start := time.Date(1983, 11, 6, 21, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	if _, err := s.LinkEventEntity(ev.ID, ent.ID, &start, &end); err != nil {
		t.Fatalf("link: %v", err)
	}
	// a second sighting of the same pair only adds an appearance
	if _, err := s.LinkEventEntity(ev.ID, ent.ID, nil, nil); err != nil {
		t.Fatalf("repeat link: %v", err)
	}

	facts, err := s.EventFacts(ev.ID)
	if err != nil {
		t.Fatalf("event facts: %v", err)
	}
	if len(facts.EntityThreats) != 1 || facts.EntityThreats[0] != models.ThreatCritical {
		t.Errorf("junction must dedupe the pair, got threats %v", facts.EntityThreats)
	}

	sightings, err := s.EntitySightings(ent.ID)
	if err != nil {
		t.Fatalf("sightings: %v", err)
	}
	if len(sightings) != 2 {
		t.Errorf("got %d sightings, want 2", len(sightings))
	}

	if err := s.UnlinkEventEntity(ev.ID, ent.ID, true); err != nil {
		t.Fatalf("unlink: %v", err)
	}
	facts, err = s.EventFacts(ev.ID)
	if err != nil {
		t.Fatalf("event facts: %v", err)
	}
	if len(facts.EntityThreats) != 0 {
		t.Errorf("threats after unlink = %v, want none", facts.EntityThreats)
	}
	sightings, err = s.EntitySightings(ent.ID)
	if err != nil {
		t.Fatalf("sightings: %v", err)
	}
	if len(sightings) != 0 {
		t.Errorf("appearances should be dropped when asked, got %d", len(sightings))
	}

	if _, err := s.LinkEventEntity(ev.ID, 9999, nil, nil); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("link to unknown entity = %v, want ErrNotFound", err)
	}
}

func TestGlobalSearch(t *testing.T) {
	s := newTestStore(t)

	ent := mustCreateEntity(t, s, "Demogorgon", models.ThreatCritical)
	mustCreatePerson(t, s, "Joyce Byers", models.RoleResearcher, nil)
	if err := s.DB().Create(&models.Location{Name: "Mirkwood", WorldType: models.WorldNormal, RiskLevel: 2}).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}

	res, err := s.GlobalSearch("gorgon")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Entities) != 1 || res.Entities[0].Name != "Demogorgon" {
		t.Errorf("entity hits = %+v, want Demogorgon", res.Entities)
	}
	if len(res.Persons) != 0 || len(res.Locations) != 0 {
		t.Errorf("unexpected cross-table hits: %+v", res)
	}

	// a purely numeric query also matches primary keys
	res, err = s.GlobalSearch(fmt.Sprintf("%d", ent.ID))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Entities) != 1 {
		t.Errorf("numeric search missed entity ID %d", ent.ID)
	}

	res, err = s.GlobalSearch("vecna")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !res.Empty() {
		t.Errorf("expected no hits, got %+v", res)
	}
}

func TestPortalStability(t *testing.T) {
	s := newTestStore(t)

	origin := models.Location{Name: "Hawkins Lab", WorldType: models.WorldNormal}
	if err := s.DB().Create(&origin).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	portal := &models.Portal{Name: "Gate Prime", Status: models.PortalActive, OriginID: &origin.ID}
	if err := s.CreatePortal(portal); err != nil {
		t.Fatalf("create portal: %v", err)
	}

	mustCreateEvent(t, s, &models.Event{PortalID: &portal.ID, Severity: models.SeveritySevere})
	mustCreateEvent(t, s, &models.Event{PortalID: &portal.ID, Severity: models.SeverityMinor})
	archived := mustCreateEvent(t, s, &models.Event{PortalID: &portal.ID, Severity: models.SeveritySevere})
	if err := s.ArchiveEvent(archived.ID, "void"); err != nil {
		t.Fatalf("archive: %v", err)
	}

	rows, err := s.PortalStability()
	if err != nil {
		t.Fatalf("portal stability: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.EventCount != 2 || row.SevereCount != 1 {
		t.Errorf("aggregates = (%d events, %d severe), want (2, 1); archived rows must not count",
			row.EventCount, row.SevereCount)
	}
	if row.OriginName == nil || *row.OriginName != "Hawkins Lab" {
		t.Errorf("origin name = %v, want Hawkins Lab", row.OriginName)
	}
}

func TestPsychicSubjectsDashboard(t *testing.T) {
	s := newTestStore(t)

	weak := mustCreatePerson(t, s, "Subject Three", models.RolePsychicSubject,
		&models.PsychicSubject{AbilityType: "Telepathy", PowerLevel: 40, ControlScore: 55})
	strong := mustCreatePerson(t, s, "Subject Eleven", models.RolePsychicSubject,
		&models.PsychicSubject{AbilityType: "Telekinesis", PowerLevel: 95, ControlScore: 60})
	mustCreatePerson(t, s, "Sam Owens", models.RoleResearcher, &models.Researcher{ClearanceLevel: "Top Secret"})

	rows, err := s.PsychicSubjects()
	if err != nil {
		t.Fatalf("psychic subjects: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].PersonID != strong.ID || rows[1].PersonID != weak.ID {
		t.Errorf("rows not ordered by power level: %+v", rows)
	}

	if err := s.ArchivePerson(weak.ID, "transferred"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	rows, err = s.PsychicSubjects()
	if err != nil {
		t.Fatalf("psychic subjects: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("archived subjects must drop out, got %d rows", len(rows))
	}
}

func TestDisturbanceIndicators(t *testing.T) {
	s := newTestStore(t)

	plain := models.Location{Name: "Quarry", WorldType: models.WorldNormal, RiskLevel: 3}
	surface := models.Location{Name: "Downtown", WorldType: models.WorldNormal, RiskLevel: 1}
	shadow := models.Location{Name: "Shadow Forest", WorldType: models.WorldUpsideDown, RiskLevel: 5}
	for _, l := range []*models.Location{&plain, &surface, &shadow} {
		if err := s.DB().Create(l).Error; err != nil {
			t.Fatalf("seed location: %v", err)
		}
	}
	if err := s.DB().Create(&models.SurfaceLocation{LocationID: surface.ID, PopulationDensity: 1200}).Error; err != nil {
		t.Fatalf("seed surface: %v", err)
	}
	if err := s.DB().Create(&models.UpsideDownLocation{LocationID: shadow.ID, DistortionLevel: 9}).Error; err != nil {
		t.Fatalf("seed upside down: %v", err)
	}

	rows, err := s.DisturbanceIndicators()
	if err != nil {
		t.Fatalf("disturbance: %v", err)
	}
	byName := map[string]float64{}
	for _, r := range rows {
		byName[r.Name] = r.Indicator
	}
	if byName["Quarry"] != 3 {
		t.Errorf("baseline risk indicator = %v, want 3", byName["Quarry"])
	}
	if byName["Downtown"] != 1200 {
		t.Errorf("population indicator = %v, want 1200", byName["Downtown"])
	}
	if byName["Shadow Forest"] != 9 {
		t.Errorf("distortion indicator = %v, want 9", byName["Shadow Forest"])
	}
}

func TestReportWithDetail(t *testing.T) {
	s := newTestStore(t)

	author := mustCreatePerson(t, s, "Murray Bauman", models.RoleResearcher, nil)
	r := &models.Report{Date: time.Date(1984, 7, 4, 0, 0, 0, 0, time.UTC), AuthoredByID: author.ID}
	detail := &models.ReportDetail{Summary: "signal traced to the lab", Verdict: models.VerdictTrue}
	if err := s.CreateReport(r, detail); err != nil {
		t.Fatalf("create report: %v", err)
	}
	if detail.ReportID != r.ID {
		t.Errorf("detail keyed to %d, want %d", detail.ReportID, r.ID)
	}

	res, err := s.GlobalSearch("signal traced")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(res.Reports) != 1 || res.Reports[0].ReportID != r.ID {
		t.Errorf("report hits = %+v", res.Reports)
	}
}

func TestRecomputePersistsScores(t *testing.T) {
	s := newTestStore(t)

	portal := &models.Portal{Name: "Gate Prime", Status: models.PortalActive}
	if err := s.CreatePortal(portal); err != nil {
		t.Fatalf("create portal: %v", err)
	}
	ev := mustCreateEvent(t, s, &models.Event{
		Severity: models.SeveritySevere,
		Outcome:  models.OutcomeCatastrophic,
		PortalID: &portal.ID,
	})
	ent := mustCreateEntity(t, s, "Mind Flayer", models.ThreatCritical)
	if _, err := s.LinkEventEntity(ev.ID, ent.ID, nil, nil); err != nil {
		t.Fatalf("link: %v", err)
	}
	victim := mustCreatePerson(t, s, "Bob Newby", models.RoleVictim, nil)
	if _, err := s.AddVictimRecord(ev.ID, victim.ID, models.InjuryFatal); err != nil {
		t.Fatalf("victim: %v", err)
	}

	engine := analytics.NewEngine(s, analytics.DefaultWeights())

	// Severe 5 + Catastrophic 8 + Critical 10 + Fatal 6 + Active portal 4
	const wantEventScore = 33

	report, err := engine.Recompute()
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if report.EventsUpdated != 1 || report.PortalsUpdated != 1 || len(report.RowErrors) != 0 {
		t.Fatalf("report = %+v", report)
	}

	got, err := s.GetEvent(ev.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.ThreatScore != wantEventScore || got.ThreatBand != "HIGH" {
		t.Errorf("persisted event score = (%d, %q), want (%d, HIGH)", got.ThreatScore, got.ThreatBand, wantEventScore)
	}

	gotPortal, err := s.GetPortal(portal.ID)
	if err != nil {
		t.Fatalf("get portal: %v", err)
	}
	if gotPortal.ThreatScore != wantEventScore || gotPortal.ThreatBand != "HIGH" {
		t.Errorf("persisted portal score = (%d, %q)", gotPortal.ThreatScore, gotPortal.ThreatBand)
	}

	snap, err := s.LatestSnapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Score != 33 || snap.Band != "HIGH" {
		t.Errorf("snapshot = (%d, %q), want (33, HIGH)", snap.Score, snap.Band)
	}
	if snap.EventCount != 1 || snap.EntityCount != 1 || snap.PortalCount != 1 || snap.VictimCount != 1 {
		t.Errorf("snapshot counts = %+v", snap)
	}

	// a second pass over unchanged data lands on the same numbers
	if _, err := engine.Recompute(); err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	again, err := s.GetEvent(ev.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if again.ThreatScore != wantEventScore {
		t.Errorf("score drifted to %d after second pass", again.ThreatScore)
	}

	// archiving removes the event from every scope except direct lookup
	if err := s.ArchiveEvent(ev.ID, "sealed"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if _, err := engine.Recompute(); err != nil {
		t.Fatalf("third recompute: %v", err)
	}
	snap, err = s.LatestSnapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.EventCount != 0 {
		t.Errorf("archived event still counted in snapshot: %+v", snap)
	}
	// entity, portal and victim rows still contribute: 10 + 4 + 6
	if snap.Score != 20 || snap.Band != "HIGH" {
		t.Errorf("post-archive snapshot = (%d, %q), want (20, HIGH)", snap.Score, snap.Band)
	}

	if _, err := engine.ScoreEvent(ev.ID); err != nil {
		t.Errorf("archived event must stay scoreable by ID: %v", err)
	}
	if _, err := engine.ScoreEvent(9999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("scoring a missing event = %v, want ErrNotFound", err)
	}
}
