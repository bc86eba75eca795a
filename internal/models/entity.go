package models

import "time"

type Species string
type ThreatLevel string

const (
	SpeciesMonster        Species = "Monster"
	SpeciesShadowCreature Species = "Shadow_Creature"
	SpeciesMindEntity     Species = "Mind_Entity"

	ThreatLow      ThreatLevel = "Low"
	ThreatMedium   ThreatLevel = "Medium"
	ThreatHigh     ThreatLevel = "High"
	ThreatCritical ThreatLevel = "Critical"
)

type Entity struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name          string      `gorm:"size:255;not null"`
	Species       Species     `gorm:"type:varchar(30);not null"`
	ThreatLevel   ThreatLevel `gorm:"type:varchar(20);not null"`
	OriginWorld   WorldType   `gorm:"type:varchar(20);not null"`
	FirstSighting *time.Time  `gorm:"type:date"`
}

// Species subclass tables, one row per entity of that species.

type Monster struct {
	EntityID uint `gorm:"primaryKey;autoIncrement:false"`
	Entity   Entity

	AggressionIndex int
}

type ShadowCreature struct {
	EntityID uint `gorm:"primaryKey;autoIncrement:false"`
	Entity   Entity

	CorruptionLevel   int
	ManifestationType string `gorm:"size:100"`
}

type MindEntity struct {
	EntityID uint `gorm:"primaryKey;autoIncrement:false"`
	Entity   Entity

	InfluenceRange        int
	CognitiveLinkStrength int
}
