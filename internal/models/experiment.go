package models

import "time"

type Confidentiality string

const (
	ConfidentialityLow    Confidentiality = "Low"
	ConfidentialityMedium Confidentiality = "Medium"
	ConfidentialityHigh   Confidentiality = "High"
)

type Experiment struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Purpose         string          `gorm:"type:text;not null"`
	Confidentiality Confidentiality `gorm:"type:varchar(10);not null"`
	Result          string          `gorm:"type:text"`
	Date            time.Time       `gorm:"type:date;not null"`

	ConductedByID *uint
	ConductedBy   *Person `gorm:"foreignKey:ConductedByID"`
}
