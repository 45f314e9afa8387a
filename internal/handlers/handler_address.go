package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/middleware"
	"github.com/gin-gonic/gin"
)

// addressHandler handles CEP lookups and address autofill.
type addressHandler struct {
	addressService portssvc.AddressSvcFacade
}

// RegisterAddressRoutes registers the CEP routes. extra middleware, such as
// a rate limiter, runs before every CEP handler.
func RegisterAddressRoutes(rg *gin.RouterGroup, addressService portssvc.AddressSvcFacade, extra ...gin.HandlerFunc) {
	h := &addressHandler{addressService: addressService}

	cep := rg.Group("/cep", extra...)
	{
		cep.GET("/:cep", h.lookupCEP)
		cep.POST("/autofill", h.autofill)
	}
}

// lookupCEP godoc
// @Summary Look up a CEP
// @Description Resolves a Brazilian postal code, masked or not, to a street address.
// @Tags address
// @Produce  json
// @Param   cep path string true "CEP, e.g. 01310100 or 01310-100"
// @Success 200 {object} dto.AddressResponse
// @Failure 400 {object} map[string]string "Invalid CEP"
// @Failure 404 {object} map[string]string "CEP not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "CEP directory unavailable"
// @Router /cep/{cep} [get]
func (h *addressHandler) lookupCEP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cep := c.Param("cep")
	logger = logger.With(slog.String("cep", cep))

	addr, err := h.addressService.LookupCEP(c.Request.Context(), cep)
	if err != nil {
		respondError(c, logger, err, "look up CEP")
		return
	}

	logger.Info("CEP resolved", slog.String("city", addr.City), slog.String("uf", addr.State))
	c.JSON(http.StatusOK, dto.ToAddressResponse(*addr))
}

// autofill godoc
// @Summary Autofill address fields from a CEP
// @Description Fills the street, neighbourhood, city and state fields that are still empty. Lookup failures come back as an advisory message with status 200.
// @Tags address
// @Accept  json
// @Produce  json
// @Param   request body dto.AutofillRequest true "CEP and current address fields"
// @Success 200 {object} dto.AutofillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /cep/autofill [post]
func (h *addressHandler) autofill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AutofillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Autofill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.addressService.Autofill(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "autofill address")
		return
	}
	c.JSON(http.StatusOK, resp)
}
