package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hnl-console/internal/analytics"
	"hnl-console/internal/store"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handlers) scoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *Handlers) GlobalScore(c *gin.Context) {
	res, err := h.Engine.ScoreGlobal()
	if err != nil {
		h.scoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handlers) EventScore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.Engine.ScoreEvent(id)
	if err != nil {
		h.scoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handlers) PortalScore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.Engine.ScorePortal(id)
	if err != nil {
		h.scoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handlers) PortalStability(c *gin.Context) {
	rows, err := h.Store.PortalStability()
	if err != nil {
		h.scoreError(c, err)
		return
	}

	type portalRisk struct {
		store.PortalStabilityRow
		RiskScore int
		RiskLevel string
	}
	out := make([]portalRisk, len(rows))
	for i, row := range rows {
		score, level := analytics.PortalRisk(row.EventCount, row.SevereCount, row.Status == "Active")
		out[i] = portalRisk{PortalStabilityRow: row, RiskScore: score, RiskLevel: level}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) Timeline(c *gin.Context) {
	events, err := h.Store.ListEventsChronological()
	if err != nil {
		h.scoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handlers) Disturbance(c *gin.Context) {
	rows, err := h.Store.DisturbanceIndicators()
	if err != nil {
		h.scoreError(c, err)
		return
	}

	indicators := make([]float64, len(rows))
	for i, r := range rows {
		indicators[i] = r.Indicator
	}
	bars := analytics.ScaleDisturbance(indicators)

	type disturbance struct {
		store.DisturbanceRow
		analytics.DisturbanceBar
	}
	out := make([]disturbance, len(rows))
	for i := range rows {
		out[i] = disturbance{DisturbanceRow: rows[i], DisturbanceBar: bars[i]}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing q parameter"})
		return
	}
	res, err := h.Store.GlobalSearch(query)
	if err != nil {
		h.scoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handlers) LatestSnapshot(c *gin.Context) {
	snap, err := h.Store.LatestSnapshot()
	if err != nil {
		h.scoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
