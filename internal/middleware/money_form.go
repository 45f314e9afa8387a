package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

const normalizedFieldsKey = "normalizedMoneyFields"

// NormalizeMoneyForm rewrites the named money fields of a posted form to
// canonical text ("1234.56") before the handler reads them, so handlers
// never see "R$ 1.234,56". Without explicit fields the form's own
// money_fields values name them.
func NormalizeMoneyForm(moneySvc services.MoneyFormSvc, fields ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Failed to parse form", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid form body"})
			return
		}

		names := fields
		if len(names) == 0 {
			names = c.Request.PostForm["money_fields"]
		}

		normalized := moneySvc.NormalizeFormValues(c.Request.PostForm, names)
		// Form holds the body values first, then the query's.
		query := c.Request.URL.Query()
		for _, name := range normalized {
			values := append([]string{}, c.Request.PostForm[name]...)
			c.Request.Form[name] = append(values, query[name]...)
		}
		c.Set(normalizedFieldsKey, normalized)
		if len(normalized) > 0 {
			GetLoggerFromCtx(c.Request.Context()).Debug("Money fields normalized", slog.Any("fields", normalized))
		}

		c.Next()
	}
}

// NormalizedMoneyFields returns the field names NormalizeMoneyForm rewrote for this request.
func NormalizedMoneyFields(c *gin.Context) []string {
	v, _ := c.Get(normalizedFieldsKey)
	names, _ := v.([]string)
	return names
}
