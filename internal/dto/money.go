package dto

import "github.com/SscSPs/abase_form_kit/internal/utils/brl"

// ParseMoneyRequest carries a free-form amount typed by a user.
type ParseMoneyRequest struct {
	Value    string `json:"value"`
	Strategy string `json:"strategy" binding:"omitempty,oneof=blur digits"`
}

// MoneyResponse shows one amount in every rendering the UI and server use.
type MoneyResponse struct {
	Cents     int64  `json:"cents"`
	Canonical string `json:"canonical"` // "1234.56"
	Display   string `json:"display"`   // "R$ 1.234,56"
	Editable  string `json:"editable"`  // "1234,56"
	Strategy  string `json:"strategy"`
}

// ToMoneyResponse renders amount for the response body.
func ToMoneyResponse(amount brl.Amount, strategy brl.Strategy) MoneyResponse {
	return MoneyResponse{
		Cents:     amount.Cents(),
		Canonical: brl.FormatCanonical(amount),
		Display:   brl.FormatDisplay(amount),
		Editable:  brl.FormatEditable(amount),
		Strategy:  strategy.String(),
	}
}

// MoneyFieldEvent names a transition of a masked input.
type MoneyFieldEvent string

const (
	MoneyFieldFocus  MoneyFieldEvent = "focus"
	MoneyFieldInput  MoneyFieldEvent = "input"
	MoneyFieldBlur   MoneyFieldEvent = "blur"
	MoneyFieldSubmit MoneyFieldEvent = "submit"
)

// MoneyFieldEventRequest replays one event against a field's current value.
type MoneyFieldEventRequest struct {
	Strategy string          `json:"strategy" binding:"required,oneof=blur digits"`
	Value    string          `json:"value"`                            // value before the event
	Raw      string          `json:"raw" binding:"omitempty,brlmoney"` // canonical value recorded on the last blur
	Event    MoneyFieldEvent `json:"event" binding:"required,oneof=focus input blur submit"`
	Text     string          `json:"text"` // typed text, only for input events
}

// MoneyFieldEventResponse is the field state after the event.
type MoneyFieldEventResponse struct {
	Value     string `json:"value"`
	Raw       string `json:"raw"`
	Cents     int64  `json:"cents"`
	Canonical string `json:"canonical"`
}

// NormalizeFormResponse lists the posted form after money fields were rewritten.
type NormalizeFormResponse struct {
	Fields     map[string]string `json:"fields"`
	Normalized []string          `json:"normalized"`
}
