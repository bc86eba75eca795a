package models

import "time"

type Verdict string

const (
	VerdictTrue    Verdict = "True"
	VerdictFalse   Verdict = "False"
	VerdictUnclear Verdict = "Unclear"
)

type Report struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Date time.Time `gorm:"type:date;not null"`

	AuthoredByID uint `gorm:"not null"`
	AuthoredBy   Person `gorm:"foreignKey:AuthoredByID"`

	VerifiedByID *uint
	VerifiedBy   *Person `gorm:"foreignKey:VerifiedByID"`

	DocumentsArtifactID *uint
	DocumentsArtifact   *Artifact `gorm:"foreignKey:DocumentsArtifactID"`

	Detail *ReportDetail `gorm:"foreignKey:ReportID"`
}

type ReportDetail struct {
	ReportID uint `gorm:"primaryKey;autoIncrement:false"`

	Summary string  `gorm:"type:text"`
	Verdict Verdict `gorm:"type:varchar(10);not null"`
}
