// Package handlers serves the read-only ops API. All writes happen through
// the interactive console; the API exposes dashboards, scores and the audit
// journal.
package handlers

import (
	"net/http"
	"strings"

	"hnl-console/internal/analytics"
	"hnl-console/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Handlers struct {
	Store  *store.Store
	Engine *analytics.Engine
}

type loginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	form.Username = strings.TrimSpace(form.Username)

	op, err := h.Store.GetOperatorByUsername(form.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(form.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("operator_id", op.ID)
	sess.Set("role", string(op.Role))
	_ = sess.Save()

	c.JSON(http.StatusOK, gin.H{"username": op.Username, "role": op.Role})
}

func (h *Handlers) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
