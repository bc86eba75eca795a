package analytics_test

import (
	"errors"
	"testing"

	"hnl-console/internal/analytics"
	"hnl-console/internal/models"

	"github.com/smartystreets/goconvey/convey"
)

// fakeSource serves canned facts and records every persisted score.
type fakeSource struct {
	events  []analytics.EventFacts
	portals []analytics.PortalFacts
	global  analytics.GlobalFacts

	readErr      error
	failEventIDs map[uint]bool

	savedEvents  map[uint]int
	savedPortals map[uint]int
	snapshots    int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		failEventIDs: map[uint]bool{},
		savedEvents:  map[uint]int{},
		savedPortals: map[uint]int{},
	}
}

func (f *fakeSource) EventFacts(id uint) (analytics.EventFacts, error) {
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return analytics.EventFacts{}, errors.New("event not found")
}

func (f *fakeSource) PortalFacts(id uint) (analytics.PortalFacts, error) {
	for _, p := range f.portals {
		if p.ID == id {
			return p, nil
		}
	}
	return analytics.PortalFacts{}, errors.New("portal not found")
}

func (f *fakeSource) GlobalFacts() (analytics.GlobalFacts, error) {
	return f.global, nil
}

func (f *fakeSource) AllEventFacts() ([]analytics.EventFacts, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.events, nil
}

func (f *fakeSource) AllPortalFacts() ([]analytics.PortalFacts, error) {
	return f.portals, nil
}

func (f *fakeSource) SaveEventScore(id uint, score int, _ analytics.Band) error {
	if f.failEventIDs[id] {
		return errors.New("write refused")
	}
	f.savedEvents[id] = score
	return nil
}

func (f *fakeSource) SavePortalScore(id uint, score int, _ analytics.Band) error {
	f.savedPortals[id] = score
	return nil
}

func (f *fakeSource) SaveSnapshot(_ int, _ analytics.Band, _ analytics.GlobalFacts) error {
	f.snapshots++
	return nil
}

func TestEngineScoring(t *testing.T) {
	convey.Convey("Given an engine over canned facts", t, func() {
		src := newFakeSource()
		src.events = []analytics.EventFacts{
			{ID: 1, Severity: models.SeveritySevere, Outcome: models.OutcomeCatastrophic,
				EntityThreats: []models.ThreatLevel{models.ThreatCritical}},
		}
		src.portals = []analytics.PortalFacts{
			{ID: 7, Status: models.PortalActive, Events: src.events},
		}
		engine := analytics.NewEngine(src, analytics.DefaultWeights())

		convey.Convey("When an event is scored", func() {
			res, err := engine.ScoreEvent(1)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the result carries score, band and scope", func() {
				convey.So(res.Score, convey.ShouldEqual, 23)
				convey.So(res.Band, convey.ShouldEqual, analytics.BandHigh)
				convey.So(res.Scope, convey.ShouldEqual, "event")
				convey.So(res.ID, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When a missing event is scored", func() {
			_, err := engine.ScoreEvent(99)
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When a portal is scored", func() {
			res, err := engine.ScorePortal(7)
			convey.So(err, convey.ShouldBeNil)
			convey.So(res.Score, convey.ShouldEqual, 4+23)
			convey.So(res.Band, convey.ShouldEqual, analytics.BandHigh)
		})

		convey.Convey("When the global scope is empty", func() {
			res, err := engine.ScoreGlobal()
			convey.So(err, convey.ShouldBeNil)
			convey.So(res.Score, convey.ShouldEqual, 0)
			convey.So(res.Band, convey.ShouldEqual, analytics.BandLow)
		})
	})
}

func TestEngineRecompute(t *testing.T) {
	convey.Convey("Given facts for two events and one portal", t, func() {
		src := newFakeSource()
		src.events = []analytics.EventFacts{
			{ID: 1, Severity: models.SeveritySevere, Outcome: models.OutcomeCatastrophic},
			{ID: 2, Severity: models.SeverityMinor, Outcome: models.OutcomeContained},
		}
		src.portals = []analytics.PortalFacts{
			{ID: 7, Status: models.PortalClosed, Events: src.events[1:]},
		}
		src.global = analytics.GlobalFacts{Events: src.events}
		engine := analytics.NewEngine(src, analytics.DefaultWeights())

		convey.Convey("When the pass completes cleanly", func() {
			report, err := engine.Recompute()
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then every row and the snapshot are persisted", func() {
				convey.So(report.EventsUpdated, convey.ShouldEqual, 2)
				convey.So(report.PortalsUpdated, convey.ShouldEqual, 1)
				convey.So(report.RowErrors, convey.ShouldBeEmpty)
				convey.So(src.savedEvents[1], convey.ShouldEqual, 13)
				convey.So(src.savedEvents[2], convey.ShouldEqual, 1)
				convey.So(src.savedPortals[7], convey.ShouldEqual, 1)
				convey.So(src.snapshots, convey.ShouldEqual, 1)
				convey.So(report.Global.Score, convey.ShouldEqual, 14)
			})
		})

		convey.Convey("When one row refuses the write", func() {
			src.failEventIDs[1] = true
			report, err := engine.Recompute()
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the pass continues past the failed row", func() {
				convey.So(report.EventsUpdated, convey.ShouldEqual, 1)
				convey.So(report.PortalsUpdated, convey.ShouldEqual, 1)
				convey.So(report.RowErrors, convey.ShouldHaveLength, 1)
				convey.So(report.RowErrors[0].Scope, convey.ShouldEqual, "event")
				convey.So(report.RowErrors[0].ID, convey.ShouldEqual, 1)
				convey.So(src.savedEvents[2], convey.ShouldEqual, 1)
				convey.So(src.snapshots, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the fact read itself fails", func() {
			src.readErr = errors.New("connection reset")
			report, err := engine.Recompute()

			convey.Convey("Then the pass aborts before writing anything", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(report, convey.ShouldBeNil)
				convey.So(src.savedEvents, convey.ShouldBeEmpty)
				convey.So(src.snapshots, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the pass runs twice", func() {
			first, err := engine.Recompute()
			convey.So(err, convey.ShouldBeNil)
			firstScores := map[uint]int{}
			for id, s := range src.savedEvents {
				firstScores[id] = s
			}

			second, err := engine.Recompute()
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the persisted scores do not drift", func() {
				convey.So(second.Global.Score, convey.ShouldEqual, first.Global.Score)
				convey.So(src.savedEvents, convey.ShouldResemble, firstScores)
			})
		})
	})
}
