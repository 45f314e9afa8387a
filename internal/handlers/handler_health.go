package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// healthCheck is the liveness probe; it sits outside /api/v1 and is not tracked.
func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
