package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akhhatar/e-voting-project/domain"
)

// CasbinMW enforces role-based route policies after authentication.
type CasbinMW struct {
	policySvc domain.PolicyService
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(policySvc domain.PolicyService) *CasbinMW {
	return &CasbinMW{policySvc: policySvc}
}

// Enforce returns the casbin authorization middleware. Policies key on
// "role_<role>" so an admin token cannot cast a vote and a voter token
// cannot reach the admin surface.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		role, roleExists := c.Get("role")
		if !roleExists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		path := c.Request.URL.Path
		method := c.Request.Method

		allowed, err := mw.policySvc.CheckPermission("role_"+role.(string), path, method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}
