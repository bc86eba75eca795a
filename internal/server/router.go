package server

import (
	"net/http"

	"hnl-console/internal/analytics"
	"hnl-console/internal/config"
	"hnl-console/internal/handlers"
	"hnl-console/internal/middleware"
	"hnl-console/internal/models"
	"hnl-console/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg *config.Config, st *store.Store, engine *analytics.Engine) *gin.Engine {
	r := gin.Default()

	sessStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("hnl_session", sessStore))

	h := &handlers.Handlers{Store: st, Engine: engine}

	// AUTH
	r.POST("/api/login", h.Login)
	r.POST("/api/logout", h.Logout)

	auth := r.Group("/api")
	auth.Use(middleware.RequireAuth())

	// SCORES
	auth.GET("/dts", h.GlobalScore)
	auth.GET("/dts/events/:id", h.EventScore)
	auth.GET("/dts/portals/:id", h.PortalScore)
	auth.GET("/dts/snapshot", h.LatestSnapshot)

	// DASHBOARDS
	auth.GET("/dashboards/portal-stability", h.PortalStability)
	auth.GET("/dashboards/timeline", h.Timeline)
	auth.GET("/dashboards/disturbance", h.Disturbance)

	// SEARCH
	auth.GET("/search", h.Search)

	// AUDIT — admins and viewers only
	auth.GET("/audit",
		middleware.RequireRole(models.OperatorAdmin, models.OperatorViewer),
		h.ListAuditLogs,
	)

	// METRICS
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
