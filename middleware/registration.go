package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scentshop/store"
)

// StartRoute is where unregistered visitors are sent
const StartRoute = "/start"

// RegistrationGate blocks storefront routes for unregistered visitors
// outside the grace period and points them at the registration route.
func RegistrationGate(s *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := s.CheckRegistration()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check registration"})
			c.Abort()
			return
		}

		if status.Redirect {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "registration required",
				"redirect": StartRoute,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
