package analytics

import (
	"fmt"

	"hnl-console/internal/metrics"
	"hnl-console/internal/models"
)

// EventFacts are the rows contributing to one event's score.
type EventFacts struct {
	ID             uint
	Severity       models.Severity
	Outcome        models.Outcome
	EntityThreats  []models.ThreatLevel
	VictimInjuries []models.InjurySeverity
	PortalStatus   *models.PortalStatus
}

// PortalFacts are the rows contributing to one portal's score. The nested
// event facts carry no portal status of their own so the portal contributes
// its status exactly once.
type PortalFacts struct {
	ID     uint
	Status models.PortalStatus
	Events []EventFacts
}

// GlobalFacts is the full snapshot: every non-archived event plus every
// entity, portal and victim record.
type GlobalFacts struct {
	Events         []EventFacts
	EntityThreats  []models.ThreatLevel
	PortalStatuses []models.PortalStatus
	VictimInjuries []models.InjurySeverity
}

// Source reads fact rows for a scope and persists recomputed scores.
type Source interface {
	EventFacts(id uint) (EventFacts, error)
	PortalFacts(id uint) (PortalFacts, error)
	GlobalFacts() (GlobalFacts, error)
	AllEventFacts() ([]EventFacts, error)
	AllPortalFacts() ([]PortalFacts, error)
	SaveEventScore(id uint, score int, band Band) error
	SavePortalScore(id uint, score int, band Band) error
	SaveSnapshot(score int, band Band, facts GlobalFacts) error
}

// Result is one computed score with its classification.
type Result struct {
	Scope string
	ID    uint
	Score int
	Band  Band
}

// Engine computes DTS values for explicit scopes.
type Engine struct {
	src     Source
	weights Weights
}

func NewEngine(src Source, weights Weights) *Engine {
	return &Engine{src: src, weights: weights}
}

func (e *Engine) Weights() Weights {
	return e.weights
}

// EventScore sums the fixed contributions of every row in the event scope.
func (w Weights) EventScore(f EventFacts) int {
	score := w.Severity[f.Severity] + w.Outcome[f.Outcome]
	for _, t := range f.EntityThreats {
		score += w.ThreatLevel[t]
	}
	for _, inj := range f.VictimInjuries {
		score += w.Injury[inj]
	}
	if f.PortalStatus != nil {
		score += w.PortalStatus[*f.PortalStatus]
	}
	return score
}

func (w Weights) PortalScore(f PortalFacts) int {
	score := w.PortalStatus[f.Status]
	for _, ev := range f.Events {
		score += w.EventScore(ev)
	}
	return score
}

func (w Weights) GlobalScore(g GlobalFacts) int {
	score := 0
	for _, ev := range g.Events {
		score += w.Severity[ev.Severity] + w.Outcome[ev.Outcome]
	}
	for _, t := range g.EntityThreats {
		score += w.ThreatLevel[t]
	}
	for _, st := range g.PortalStatuses {
		score += w.PortalStatus[st]
	}
	for _, inj := range g.VictimInjuries {
		score += w.Injury[inj]
	}
	return score
}

func (e *Engine) ScoreEvent(id uint) (Result, error) {
	facts, err := e.src.EventFacts(id)
	if err != nil {
		return Result{}, err
	}
	score := e.weights.EventScore(facts)
	return Result{Scope: "event", ID: id, Score: score, Band: e.weights.Classify(score)}, nil
}

func (e *Engine) ScorePortal(id uint) (Result, error) {
	facts, err := e.src.PortalFacts(id)
	if err != nil {
		return Result{}, err
	}
	score := e.weights.PortalScore(facts)
	return Result{Scope: "portal", ID: id, Score: score, Band: e.weights.Classify(score)}, nil
}

func (e *Engine) ScoreGlobal() (Result, error) {
	facts, err := e.src.GlobalFacts()
	if err != nil {
		return Result{}, err
	}
	score := e.weights.GlobalScore(facts)
	return Result{Scope: "global", Score: score, Band: e.weights.Classify(score)}, nil
}

// RowError is one row that failed to persist during recompute.
type RowError struct {
	Scope string
	ID    uint
	Err   error
}

func (r RowError) Error() string {
	return fmt.Sprintf("%s %d: %v", r.Scope, r.ID, r.Err)
}

// RecomputeReport summarizes one maintenance pass.
type RecomputeReport struct {
	EventsUpdated  int
	PortalsUpdated int
	Global         Result
	RowErrors      []RowError
}

// Recompute runs the full maintenance pass: per-event and per-portal scores
// are persisted row by row, then a global snapshot is written. Row write
// failures are collected and the pass continues; a read failure aborts.
func (e *Engine) Recompute() (*RecomputeReport, error) {
	report := &RecomputeReport{}

	events, err := e.src.AllEventFacts()
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	for _, f := range events {
		score := e.weights.EventScore(f)
		if err := e.src.SaveEventScore(f.ID, score, e.weights.Classify(score)); err != nil {
			report.RowErrors = append(report.RowErrors, RowError{Scope: "event", ID: f.ID, Err: err})
			metrics.RecomputeRowErrors.Inc()
			continue
		}
		report.EventsUpdated++
	}

	portals, err := e.src.AllPortalFacts()
	if err != nil {
		return nil, fmt.Errorf("read portals: %w", err)
	}
	for _, f := range portals {
		score := e.weights.PortalScore(f)
		if err := e.src.SavePortalScore(f.ID, score, e.weights.Classify(score)); err != nil {
			report.RowErrors = append(report.RowErrors, RowError{Scope: "portal", ID: f.ID, Err: err})
			metrics.RecomputeRowErrors.Inc()
			continue
		}
		report.PortalsUpdated++
	}

	global, err := e.src.GlobalFacts()
	if err != nil {
		return nil, fmt.Errorf("read global facts: %w", err)
	}
	score := e.weights.GlobalScore(global)
	band := e.weights.Classify(score)
	report.Global = Result{Scope: "global", Score: score, Band: band}
	if err := e.src.SaveSnapshot(score, band, global); err != nil {
		report.RowErrors = append(report.RowErrors, RowError{Scope: "snapshot", Err: err})
		metrics.RecomputeRowErrors.Inc()
	}

	metrics.RecomputePasses.Inc()
	return report, nil
}
