package models

import "gorm.io/gorm"

type OperatorRole string

const (
	OperatorAdmin   OperatorRole = "admin"
	OperatorAnalyst OperatorRole = "analyst"
	OperatorViewer  OperatorRole = "viewer"
)

// Operator is a console / ops API account.
type Operator struct {
	gorm.Model
	Username     string       `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string       `gorm:"not null"`
	Role         OperatorRole `gorm:"type:varchar(20);not null"`
}
