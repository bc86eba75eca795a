package database

import (
	"hnl-console/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAuditLog appends one journal record. Best effort: mutations never
// fail because the journal write did.
func CreateAuditLog(db *gorm.DB, operatorID uint, entity string, entityID uint, action, details string) {
	if db == nil {
		return
	}
	record := models.AuditLog{
		Ref:        uuid.NewString(),
		OperatorID: operatorID,
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
	}
	_ = db.Create(&record).Error
}
