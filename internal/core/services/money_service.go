package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/render/htmlmask"
	"github.com/SscSPs/abase_form_kit/internal/utils/brl"
)

type moneyService struct {
	defaultStrategy brl.Strategy
	rewriter        *htmlmask.Rewriter
}

// NewMoneyService creates the money codec service. defaultStrategy applies to
// requests and inputs that do not name a strategy.
func NewMoneyService(defaultStrategy brl.Strategy) portssvc.MoneySvcFacade {
	return &moneyService{
		defaultStrategy: defaultStrategy,
		rewriter:        htmlmask.NewRewriter(defaultStrategy),
	}
}

var _ portssvc.MoneySvcFacade = (*moneyService)(nil)

func (s *moneyService) DefaultStrategy() brl.Strategy {
	return s.defaultStrategy
}

func (s *moneyService) ParseValue(value string, strategy brl.Strategy) dto.MoneyResponse {
	var amount brl.Amount
	if strategy == brl.StrategyDigitAccumulation {
		amount = brl.ParseDigits(value)
	} else {
		amount = brl.Parse(value)
	}
	return dto.ToMoneyResponse(amount, strategy)
}

func (s *moneyService) ApplyFieldEvent(req dto.MoneyFieldEventRequest) (*dto.MoneyFieldEventResponse, error) {
	strategy, err := brl.ParseStrategy(req.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	f := brl.RestoreField(strategy, req.Value, req.Raw)
	switch req.Event {
	case dto.MoneyFieldFocus:
		f.Focus()
	case dto.MoneyFieldInput:
		f.Input(req.Text)
	case dto.MoneyFieldBlur:
		f.Blur()
	case dto.MoneyFieldSubmit:
		f.Submit()
	default:
		return nil, fmt.Errorf("%w: unknown field event %q", apperrors.ErrValidation, req.Event)
	}

	amount := f.Amount()
	return &dto.MoneyFieldEventResponse{
		Value:     f.Value(),
		Raw:       f.Raw(),
		Cents:     amount.Cents(),
		Canonical: brl.FormatCanonical(amount),
	}, nil
}

func (s *moneyService) NormalizeFormValues(values map[string][]string, fields []string) []string {
	var normalized []string
	seen := make(map[string]bool, len(fields))
	for _, name := range splitFieldNames(fields) {
		vs, ok := values[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		for i, v := range vs {
			vs[i] = brl.FormatCanonical(brl.Parse(v))
		}
		normalized = append(normalized, name)
	}
	return normalized
}

func (s *moneyService) RenderFragment(fragment string) (string, error) {
	out, err := s.rewriter.Rewrite(fragment)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return out, nil
}

// splitFieldNames accepts both repeated names and comma separated lists.
func splitFieldNames(fields []string) []string {
	var out []string
	for _, f := range fields {
		for _, name := range strings.Split(f, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
