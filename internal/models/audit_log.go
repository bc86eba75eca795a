package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Ref string `gorm:"size:36;uniqueIndex"`

	OperatorID uint
	Operator   Operator

	Entity   string `gorm:"size:50;not null"` // "event", "portal", "artifact"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "archive", "recompute"
	Details  string `gorm:"type:text"`
}
