package analytics

import (
	"math"
	"sort"
	"time"

	"hnl-console/internal/models"
)

// PortalRisk classifies one portal from its event aggregates.
func PortalRisk(eventCount, severeCount int, active bool) (int, string) {
	score := eventCount + severeCount*3
	if active {
		score += 5
	}
	switch {
	case score >= 10:
		return score, "CRITICAL"
	case score >= 5:
		return score, "HIGH"
	default:
		return score, "LOW"
	}
}

// DisturbanceBar is one location's normalized disturbance reading.
type DisturbanceBar struct {
	Norm   float64
	Bars   int // 1-20
	Bucket string
}

// ScaleDisturbance compresses raw indicators onto a common scale so large
// population densities do not crush small distortion levels, then
// normalizes across the set.
func ScaleDisturbance(indicators []float64) []DisturbanceBar {
	if len(indicators) == 0 {
		return nil
	}

	scores := make([]float64, len(indicators))
	for i, raw := range indicators {
		switch {
		case raw <= 0:
			scores[i] = 1
		case raw <= 10:
			scores[i] = raw
		default:
			scores[i] = math.Log10(raw) * 10
		}
	}

	minScore, maxScore := scores[0], scores[0]
	for _, v := range scores[1:] {
		minScore = math.Min(minScore, v)
		maxScore = math.Max(maxScore, v)
	}
	span := maxScore - minScore

	bars := make([]DisturbanceBar, len(scores))
	for i, v := range scores {
		norm := 0.5
		if span > 0 {
			norm = (v - minScore) / span
		}
		bars[i] = DisturbanceBar{
			Norm:   norm,
			Bars:   1 + int(norm*19),
			Bucket: disturbanceBucket(norm),
		}
	}
	return bars
}

func disturbanceBucket(norm float64) string {
	switch {
	case norm >= 0.75:
		return "CRITICAL"
	case norm >= 0.5:
		return "HIGH"
	case norm >= 0.25:
		return "MEDIUM"
	default:
		return "NORMAL"
	}
}

// Hotzone is a location ranked by sighting count.
type Hotzone struct {
	Name  string
	Count int
}

// Hotzones ranks location names by occurrence, most frequent first.
func Hotzones(locations []string) []Hotzone {
	counts := make(map[string]int)
	for _, name := range locations {
		counts[name]++
	}
	zones := make([]Hotzone, 0, len(counts))
	for name, n := range counts {
		zones = append(zones, Hotzone{Name: name, Count: n})
	}
	sort.Slice(zones, func(i, j int) bool {
		if zones[i].Count != zones[j].Count {
			return zones[i].Count > zones[j].Count
		}
		return zones[i].Name < zones[j].Name
	})
	return zones
}

// ExposureMinutes is the whole-minute span between two sighting timestamps.
func ExposureMinutes(start, end *time.Time) int {
	if start == nil || end == nil || end.Before(*start) {
		return 0
	}
	return int(end.Sub(*start) / time.Minute)
}

// AssessEntity recommends a response from sighting volume and threat level.
func AssessEntity(sightings int, threat models.ThreatLevel) (int, string) {
	score := sightings * 3
	if threat == models.ThreatCritical {
		score += 10
	}
	if score >= 10 {
		return score, "Dispatch Full Response"
	}
	return score, "Hold Containment"
}
