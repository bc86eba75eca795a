package models

import "time"

type PersonRole string
type PersonStatus string
type InjurySeverity string

const (
	RoleResearcher     PersonRole = "Researcher"
	RoleAgent          PersonRole = "Agent"
	RoleVictim         PersonRole = "Victim"
	RolePsychicSubject PersonRole = "Psychic_Subject"

	PersonActive   PersonStatus = "Active"
	PersonDeceased PersonStatus = "Deceased"
	PersonMissing  PersonStatus = "Missing"

	InjuryMinor    InjurySeverity = "Minor"
	InjuryModerate InjurySeverity = "Moderate"
	InjurySevere   InjurySeverity = "Severe"
	InjuryFatal    InjurySeverity = "Fatal"
)

type Person struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name         string       `gorm:"size:255;not null"`
	Role         PersonRole   `gorm:"type:varchar(30);not null"`
	Age          *int
	Status       PersonStatus `gorm:"type:varchar(20);not null"`
	Affiliation  string       `gorm:"size:255"`
	KnownAliases string       `gorm:"size:255"`

	SupervisorID *uint
	Supervisor   *Person `gorm:"foreignKey:SupervisorID"`

	Archived      bool   `gorm:"not null;default:false"`
	ArchiveReason string `gorm:"type:text"`
	ArchivedAt    *time.Time
}

// Role subclass tables.

type Researcher struct {
	PersonID uint `gorm:"primaryKey;autoIncrement:false"`
	Person   Person

	ClearanceLevel string `gorm:"size:32"`
}

type Agent struct {
	PersonID uint `gorm:"primaryKey;autoIncrement:false"`
	Person   Person

	SuccessRate *float64 // 0-100
}

type Victim struct {
	PersonID uint `gorm:"primaryKey;autoIncrement:false"`
	Person   Person

	InjurySeverity InjurySeverity `gorm:"type:varchar(20)"`
}

type PsychicSubject struct {
	PersonID uint `gorm:"primaryKey;autoIncrement:false"`
	Person   Person

	AbilityType  string `gorm:"size:100"`
	PowerLevel   int    // 0-100
	ControlScore int    // 0-100
}
