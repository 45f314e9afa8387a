package services

import (
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/utils/brl"
)

// MoneyCodecSvc converts amounts between their textual forms.
type MoneyCodecSvc interface {
	// DefaultStrategy is the policy applied to fields that do not choose one.
	DefaultStrategy() brl.Strategy

	// ParseValue reads value with the given strategy. It never fails.
	ParseValue(value string, strategy brl.Strategy) dto.MoneyResponse

	// ApplyFieldEvent replays one focus/input/blur/submit event on a field.
	ApplyFieldEvent(req dto.MoneyFieldEventRequest) (*dto.MoneyFieldEventResponse, error)
}

// MoneyFormSvc rewrites money fields at the submission and display boundaries.
type MoneyFormSvc interface {
	// NormalizeFormValues rewrites the named fields of a posted form to the
	// canonical form in place and returns the names it rewrote.
	NormalizeFormValues(values map[string][]string, fields []string) []string

	// RenderFragment formats money text and inputs inside an HTML fragment.
	RenderFragment(fragment string) (string, error)
}

// MoneySvcFacade combines all money-related service interfaces
type MoneySvcFacade interface {
	MoneyCodecSvc
	MoneyFormSvc
}
