package models

import "time"

// DTSSnapshot is one persisted global recompute result.
type DTSSnapshot struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Score int    `gorm:"not null"`
	Band  string `gorm:"size:16;not null"`

	EventCount  int
	EntityCount int
	PortalCount int
	VictimCount int
}
