package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SystemThemeHeader is the client hint browsers send for prefers-color-scheme.
const SystemThemeHeader = "Sec-CH-Prefers-Color-Scheme"

// preferenceHandler handles the per-user UI preferences.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvcFacade
}

// RegisterPreferenceRoutes registers the preference routes. The group must
// already run AuthMiddleware.
func RegisterPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.PreferenceSvcFacade) {
	h := &preferenceHandler{preferenceService: preferenceService}

	prefs := rg.Group("/preferences", acceptSystemTheme)
	{
		prefs.GET("", h.getPreferences)
		prefs.PUT("", h.updatePreferences)
		prefs.DELETE("", h.resetPreferences)
		prefs.POST("/theme/toggle", h.toggleTheme)
		prefs.POST("/sidebar/toggle", h.toggleSidebar)
	}
}

// acceptSystemTheme asks the browser for the colour-scheme hint; it is only
// sent to origins that request it.
func acceptSystemTheme(c *gin.Context) {
	c.Header("Accept-CH", SystemThemeHeader)
	c.Next()
}

// systemTheme reads the client's colour scheme from the query or the client hint.
func systemTheme(c *gin.Context) domain.Theme {
	raw := c.Query("system_theme")
	if raw == "" {
		raw = strings.Trim(c.GetHeader(SystemThemeHeader), `" `)
	}
	t, _ := domain.ParseTheme(strings.ToLower(raw))
	return t
}

// preferenceRequest pulls the user id and system theme shared by every route.
func (h *preferenceHandler) preferenceRequest(c *gin.Context) (*slog.Logger, string, domain.Theme, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return logger, "", "", false
	}
	return logger, userID, systemTheme(c), true
}

func (h *preferenceHandler) respond(c *gin.Context, logger *slog.Logger, prefs *domain.Preferences, err error, action string) {
	if err != nil {
		respondError(c, logger, err, action)
		return
	}
	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// getPreferences godoc
// @Summary Get UI preferences
// @Description Returns the user's theme and sidebar state. Without a stored theme the client's system theme is used.
// @Tags preferences
// @Produce  json
// @Param   system_theme query string false "Client colour scheme" Enums(light, dark)
// @Success 200 {object} dto.PreferencesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load preferences"
// @Security BearerAuth
// @Router /preferences [get]
func (h *preferenceHandler) getPreferences(c *gin.Context) {
	logger, userID, sys, ok := h.preferenceRequest(c)
	if !ok {
		return
	}
	prefs, err := h.preferenceService.Load(c.Request.Context(), userID, sys)
	h.respond(c, logger, prefs, err, "load preferences")
}

// updatePreferences godoc
// @Summary Update UI preferences
// @Description Changes any subset of theme and sidebar state.
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   request body dto.UpdatePreferencesRequest true "Preferences to change"
// @Param   system_theme query string false "Client colour scheme" Enums(light, dark)
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update preferences"
// @Security BearerAuth
// @Router /preferences [put]
func (h *preferenceHandler) updatePreferences(c *gin.Context) {
	logger, userID, sys, ok := h.preferenceRequest(c)
	if !ok {
		return
	}
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePreferences", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	prefs, err := h.preferenceService.Update(c.Request.Context(), userID, req, sys)
	h.respond(c, logger, prefs, err, "update preferences")
}

// resetPreferences godoc
// @Summary Reset UI preferences
// @Description Forgets the stored values; the theme follows the system again.
// @Tags preferences
// @Produce  json
// @Param   system_theme query string false "Client colour scheme" Enums(light, dark)
// @Success 200 {object} dto.PreferencesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to reset preferences"
// @Security BearerAuth
// @Router /preferences [delete]
func (h *preferenceHandler) resetPreferences(c *gin.Context) {
	logger, userID, sys, ok := h.preferenceRequest(c)
	if !ok {
		return
	}
	prefs, err := h.preferenceService.Reset(c.Request.Context(), userID, sys)
	h.respond(c, logger, prefs, err, "reset preferences")
}

// toggleTheme godoc
// @Summary Toggle the theme
// @Description Switches between light and dark and stores the choice.
// @Tags preferences
// @Produce  json
// @Param   system_theme query string false "Client colour scheme" Enums(light, dark)
// @Success 200 {object} dto.PreferencesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to toggle theme"
// @Security BearerAuth
// @Router /preferences/theme/toggle [post]
func (h *preferenceHandler) toggleTheme(c *gin.Context) {
	logger, userID, sys, ok := h.preferenceRequest(c)
	if !ok {
		return
	}
	prefs, err := h.preferenceService.ToggleTheme(c.Request.Context(), userID, sys)
	h.respond(c, logger, prefs, err, "toggle theme")
}

// toggleSidebar godoc
// @Summary Toggle the sidebar
// @Description Collapses or expands the sidebar and stores the state.
// @Tags preferences
// @Produce  json
// @Param   system_theme query string false "Client colour scheme" Enums(light, dark)
// @Success 200 {object} dto.PreferencesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to toggle sidebar"
// @Security BearerAuth
// @Router /preferences/sidebar/toggle [post]
func (h *preferenceHandler) toggleSidebar(c *gin.Context) {
	logger, userID, sys, ok := h.preferenceRequest(c)
	if !ok {
		return
	}
	prefs, err := h.preferenceService.ToggleSidebar(c.Request.Context(), userID, sys)
	h.respond(c, logger, prefs, err, "toggle sidebar")
}
