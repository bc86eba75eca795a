package models

import "time"

type ArtifactType string

const (
	ArtifactBiological ArtifactType = "Biological"
	ArtifactMetallic   ArtifactType = "Metallic"
	ArtifactOrganic    ArtifactType = "Organic"
	ArtifactUnknown    ArtifactType = "Unknown"
)

type Artifact struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name         string       `gorm:"size:255;not null"`
	Type         ArtifactType `gorm:"type:varchar(20);not null"`
	AnomalyLevel int          // 1-10

	FoundAtID *uint
	FoundAt   *Location `gorm:"foreignKey:FoundAtID"`
}
