package models

import "time"

type Outcome string
type Severity string

const (
	OutcomeContained    Outcome = "Contained"
	OutcomeOngoing      Outcome = "Ongoing"
	OutcomeCatastrophic Outcome = "Catastrophic"

	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

// Event is an anomaly incident. Archived events stay readable by ID;
// ThreatScore/ThreatBand are persisted by the recompute pass.
type Event struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Date        time.Time `gorm:"type:date;not null"`
	Time        string    `gorm:"size:8"`
	Description string    `gorm:"type:text"`
	Outcome     Outcome   `gorm:"type:varchar(20);not null"`
	Severity    Severity  `gorm:"type:varchar(20);not null"`

	LocationID *uint
	Location   *Location
	PortalID   *uint
	Portal     *Portal

	Archived      bool   `gorm:"not null;default:false"`
	ArchiveReason string `gorm:"type:text"`
	ArchivedAt    *time.Time

	ThreatScore int    `gorm:"not null;default:0"`
	ThreatBand  string `gorm:"size:16"`
}
