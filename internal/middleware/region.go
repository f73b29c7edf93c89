package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zeldean/DBD-Project/internal/models"
)

const (
	HeaderRegion = "x-region"

	contextRegion = "region"
)

// RequireRegion resolves the x-region header. Every region-scoped route
// sits behind this; nothing downstream runs without a valid region.
func RequireRegion() gin.HandlerFunc {
	return func(c *gin.Context) {
		region := c.GetHeader(HeaderRegion)
		if !models.ValidRegion(region) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid x-region header"})
			return
		}
		c.Set(contextRegion, region)
		c.Next()
	}
}

// Region returns the region resolved for this request.
func Region(c *gin.Context) string {
	return c.GetString(contextRegion)
}
