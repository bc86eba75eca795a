// Package analytics computes the Dimensional Threat Score (DTS) and the
// derived dashboard figures. Scores are pure functions of the rows passed
// in; nothing here caches between calls.
package analytics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hnl-console/internal/models"
)

// Band is a discrete DTS classification.
type Band string

const (
	BandLow      Band = "LOW"
	BandModerate Band = "MODERATE"
	BandHigh     Band = "HIGH"
	BandCritical Band = "CRITICAL"
)

// Weights maps every categorical enum to its fixed point contribution.
// Unknown variants contribute zero.
type Weights struct {
	Severity     map[models.Severity]int       `yaml:"severity"`
	Outcome      map[models.Outcome]int        `yaml:"outcome"`
	ThreatLevel  map[models.ThreatLevel]int    `yaml:"threat_level"`
	PortalStatus map[models.PortalStatus]int   `yaml:"portal_status"`
	Injury       map[models.InjurySeverity]int `yaml:"injury"`
	Thresholds   Thresholds                    `yaml:"thresholds"`
}

// Thresholds are closed lower bounds: score >= bound maps to that band.
type Thresholds struct {
	Moderate int `yaml:"moderate"`
	High     int `yaml:"high"`
	Critical int `yaml:"critical"`
}

// DefaultWeights is the documented fixed weighting table.
func DefaultWeights() Weights {
	return Weights{
		Severity: map[models.Severity]int{
			models.SeverityMinor:    1,
			models.SeverityModerate: 3,
			models.SeveritySevere:   5,
		},
		Outcome: map[models.Outcome]int{
			models.OutcomeContained:    0,
			models.OutcomeOngoing:      2,
			models.OutcomeCatastrophic: 8,
		},
		ThreatLevel: map[models.ThreatLevel]int{
			models.ThreatLow:      1,
			models.ThreatMedium:   3,
			models.ThreatHigh:     6,
			models.ThreatCritical: 10,
		},
		PortalStatus: map[models.PortalStatus]int{
			models.PortalClosed: 0,
			models.PortalActive: 4,
		},
		Injury: map[models.InjurySeverity]int{
			models.InjuryMinor:    1,
			models.InjuryModerate: 2,
			models.InjurySevere:   4,
			models.InjuryFatal:    6,
		},
		Thresholds: Thresholds{
			Moderate: 10,
			High:     20,
			Critical: 50,
		},
	}
}

// LoadWeights reads a YAML override file on top of the defaults. Entries
// absent from the file keep their default value.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("parse weights file: %w", err)
	}
	return w, nil
}

// Classify maps a score onto a band using closed lower bounds.
func (w Weights) Classify(score int) Band {
	switch {
	case score >= w.Thresholds.Critical:
		return BandCritical
	case score >= w.Thresholds.High:
		return BandHigh
	case score >= w.Thresholds.Moderate:
		return BandModerate
	default:
		return BandLow
	}
}
