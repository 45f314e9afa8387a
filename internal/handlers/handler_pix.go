package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/middleware"
	"github.com/gin-gonic/gin"
)

type pixHandler struct {
	pixService portssvc.PixSvcFacade
}

// RegisterPixRoutes registers the PIX key validation route.
func RegisterPixRoutes(rg *gin.RouterGroup, pixService portssvc.PixSvcFacade) {
	h := &pixHandler{pixService: pixService}
	rg.POST("/pix/validate", h.validateKey)
}

// validateKey godoc
// @Summary Validate a PIX key
// @Description Checks a key against the chosen type, or detects the type when none is given. An invalid key is reported in the body, not as an error status.
// @Tags pix
// @Accept  json
// @Produce  json
// @Param   request body dto.PixValidateRequest true "PIX key"
// @Success 200 {object} dto.PixValidateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /pix/validate [post]
func (h *pixHandler) validateKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PixValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PixValidate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.pixService.ValidateKey(req))
}
