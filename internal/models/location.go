package models

import "time"

type WorldType string

const (
	WorldNormal     WorldType = "Normal"
	WorldUpsideDown WorldType = "UpsideDown"
)

type Location struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name        string    `gorm:"size:255;not null"`
	WorldType   WorldType `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text"`
	RiskLevel   int       // 1-10 baseline risk when no subclass indicator exists
}

type SurfaceLocation struct {
	LocationID uint `gorm:"primaryKey;autoIncrement:false"`
	Location   Location

	PopulationDensity int
}

type UpsideDownLocation struct {
	LocationID uint `gorm:"primaryKey;autoIncrement:false"`
	Location   Location

	DistortionLevel int // 1-10
}
