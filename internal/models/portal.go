package models

import "time"

type PortalStatus string

const (
	PortalActive PortalStatus = "Active"
	PortalClosed PortalStatus = "Closed"
)

type Portal struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name   string       `gorm:"size:255"`
	Status PortalStatus `gorm:"type:varchar(20);not null"`

	OriginID      *uint
	Origin        *Location `gorm:"foreignKey:OriginID"`
	DestinationID *uint
	Destination   *Location `gorm:"foreignKey:DestinationID"`

	DiscoveredOn *time.Time `gorm:"type:date"`

	LinksToID *uint
	LinksTo   *Portal `gorm:"foreignKey:LinksToID"`

	CoordinateX *float64
	CoordinateY *float64

	ThreatScore int    `gorm:"not null;default:0"`
	ThreatBand  string `gorm:"size:16"`
}
