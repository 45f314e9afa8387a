package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/middleware"
	"github.com/SscSPs/abase_form_kit/internal/utils/brl"
	"github.com/gin-gonic/gin"
)

// maxFragmentBytes caps HTML fragments accepted by the render endpoint.
const maxFragmentBytes = 1 << 20

// moneyHandler handles the money codec endpoints.
type moneyHandler struct {
	moneyService portssvc.MoneySvcFacade
}

func newMoneyHandler(ms portssvc.MoneySvcFacade) *moneyHandler {
	return &moneyHandler{moneyService: ms}
}

// RegisterMoneyRoutes registers the money codec, render and form routes.
func RegisterMoneyRoutes(rg *gin.RouterGroup, moneyService portssvc.MoneySvcFacade) {
	h := newMoneyHandler(moneyService)

	money := rg.Group("/money")
	{
		money.POST("/parse", h.parseMoney)
		money.POST("/field", h.applyFieldEvent)
	}
	rg.POST("/render/money", h.renderMoney)
	rg.POST("/forms/normalize", middleware.NormalizeMoneyForm(moneyService), h.normalizeForm)
}

// parseMoney godoc
// @Summary Parse a BRL amount
// @Description Reads free-form text such as "R$ 1.234,56", "1234,56" or "1234.56" and returns every rendering of the amount. Unreadable text is zero.
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseMoneyRequest true "Text to parse"
// @Success 200 {object} dto.MoneyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /money/parse [post]
func (h *moneyHandler) parseMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ParseMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	strategy := h.moneyService.DefaultStrategy()
	if req.Strategy != "" {
		var err error
		if strategy, err = brl.ParseStrategy(req.Strategy); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, h.moneyService.ParseValue(req.Value, strategy))
}

// applyFieldEvent godoc
// @Summary Apply an event to a masked money field
// @Description Replays focus, input, blur or submit on a field using the chosen strategy and returns the new field state.
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.MoneyFieldEventRequest true "Field state and event"
// @Success 200 {object} dto.MoneyFieldEventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /money/field [post]
func (h *moneyHandler) applyFieldEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MoneyFieldEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MoneyFieldEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.moneyService.ApplyFieldEvent(req)
	if err != nil {
		respondError(c, logger, err, "apply field event")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// renderMoney godoc
// @Summary Format money inside an HTML fragment
// @Description Formats elements marked data-brl-text or data-money-text and binds inputs marked data-money="brl".
// @Tags money
// @Accept  html
// @Produce  html
// @Param   fragment body string true "HTML fragment"
// @Success 200 {string} string "Rewritten fragment"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 413 {object} map[string]string "Fragment too large"
// @Router /render/money [post]
func (h *moneyHandler) renderMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxFragmentBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = apperrors.NewAppError(http.StatusRequestEntityTooLarge, "Fragment too large", err)
		} else {
			err = apperrors.NewAppError(http.StatusBadRequest, "Failed to read fragment", err)
		}
		respondError(c, logger, err, "read fragment")
		return
	}
	if strings.TrimSpace(string(body)) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty fragment"})
		return
	}

	out, err := h.moneyService.RenderFragment(string(body))
	if err != nil {
		respondError(c, logger, err, "render fragment")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// normalizeForm godoc
// @Summary Normalize money fields of a form
// @Description Rewrites the fields listed in money_fields to canonical text, as done before any form handler runs.
// @Tags money
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   money_fields formData []string true "Names of the money fields" collectionFormat(multi)
// @Success 200 {object} dto.NormalizeFormResponse
// @Failure 400 {object} map[string]string "Invalid form"
// @Router /forms/normalize [post]
func (h *moneyHandler) normalizeForm(c *gin.Context) {
	fields := make(map[string]string, len(c.Request.PostForm))
	for name, values := range c.Request.PostForm {
		if name == "money_fields" || len(values) == 0 {
			continue
		}
		fields[name] = values[0]
	}

	normalized := middleware.NormalizedMoneyFields(c)
	if normalized == nil {
		normalized = []string{}
	}
	c.JSON(http.StatusOK, dto.NormalizeFormResponse{Fields: fields, Normalized: normalized})
}
