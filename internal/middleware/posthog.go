package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/abase_form_kit/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful API calls. Anonymous callers are
// reported under their request id so form usage is still counted.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] || strings.HasPrefix(c.Request.URL.Path, "/swagger/") {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := EventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		distinctID, authenticated := GetUserIDFromContext(c)
		if !authenticated {
			distinctID = c.Writer.Header().Get(RequestIDHeader)
			props["$process_person_profile"] = false
		}
		if distinctID == "" {
			return
		}

		posthogClient.Enqueue(distinctID, eventName, props)
	}
}

// EventName turns a route pattern such as "/api/v1/cep/:cep" into "api_v1_cep_cep".
func EventName(route string) string {
	route = strings.TrimPrefix(route, "/")
	route = strings.ReplaceAll(route, ":", "")
	return strings.ReplaceAll(route, "/", "_")
}
