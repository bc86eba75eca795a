package models

import "time"

// EntityAppearance records one timed sighting of an entity during an event.
type EntityAppearance struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	EntityID uint `gorm:"not null;index"`
	Entity   Entity
	EventID  uint `gorm:"not null;index"`
	Event    Event

	StartTime *time.Time
	EndTime   *time.Time
}

// EventEntity is the event<->entity junction.
type EventEntity struct {
	EventID  uint `gorm:"primaryKey;autoIncrement:false"`
	EntityID uint `gorm:"primaryKey;autoIncrement:false"`

	Event  Event
	Entity Entity
}

// EventArtifact is the event<->artifact junction.
type EventArtifact struct {
	EventID    uint `gorm:"primaryKey;autoIncrement:false"`
	ArtifactID uint `gorm:"primaryKey;autoIncrement:false"`

	Event    Event
	Artifact Artifact
}

// VictimRecord is the weak entity keyed by event + per-event sequence.
type VictimRecord struct {
	EventID uint `gorm:"primaryKey;autoIncrement:false"`
	Seq     uint `gorm:"primaryKey;autoIncrement:false"`

	PersonID uint `gorm:"not null;index"`
	Person   Person
	Event    Event

	InjurySeverity InjurySeverity `gorm:"type:varchar(20);not null"`
}
