package handlers

import (
	"net/http"

	"hnl-console/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	err := h.Store.DB().
		Preload("Operator").
		Order("created_at desc").
		Limit(200).
		Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
