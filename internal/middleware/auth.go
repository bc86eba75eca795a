package middleware

import (
	"net/http"

	"hnl-console/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		operatorID := sess.Get("operator_id")
		if operatorID == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...models.OperatorRole) gin.HandlerFunc {
	roleSet := map[models.OperatorRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleVal := sess.Get("role")
		roleStr, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		role := models.OperatorRole(roleStr)

		if _, ok := roleSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}
