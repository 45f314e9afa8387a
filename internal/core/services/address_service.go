package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	portsrepo "github.com/SscSPs/abase_form_kit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/utils/brdocs"
)

// Advisory texts shown under the CEP field.
const (
	MsgCEPFound    = "CEP encontrado! Campos preenchidos automaticamente."
	MsgCEPNotFound = "CEP não encontrado. Preencha manualmente."
	MsgCEPFailed   = "Erro ao buscar CEP. Preencha manualmente."
)

type addressService struct {
	BaseService
	directory portsrepo.AddressDirectory
}

func NewAddressService(directory portsrepo.AddressDirectory) portssvc.AddressSvcFacade {
	return &addressService{BaseService: BaseService{component: "address"}, directory: directory}
}

var _ portssvc.AddressSvcFacade = (*addressService)(nil)

func (s *addressService) LookupCEP(ctx context.Context, cep string) (*domain.Address, error) {
	digits := brdocs.Digits(cep)
	if !brdocs.ValidCEP(digits) {
		return nil, fmt.Errorf("%w: CEP must have %d digits", apperrors.ErrValidation, brdocs.CEPLength)
	}

	addr, err := s.directory.LookupCEP(ctx, digits)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "CEP lookup failed", slog.String("cep", digits))
		}
		return nil, fmt.Errorf("failed to look up CEP %s: %w", digits, err)
	}
	return &addr, nil
}

func (s *addressService) Autofill(ctx context.Context, req dto.AutofillRequest) (*dto.AutofillResponse, error) {
	form := req.ToAddressForm()
	resp := &dto.AutofillResponse{
		CEP:      brdocs.MaskCEP(req.CEP),
		Filled:   []string{},
		Feedback: dto.FeedbackInfo,
	}

	if !brdocs.ValidCEP(req.CEP) {
		fillResponseFields(resp, form)
		return resp, nil
	}

	addr, err := s.LookupCEP(ctx, req.CEP)
	switch {
	case err == nil:
		for _, f := range form.Fill(*addr) {
			resp.Filled = append(resp.Filled, string(f))
		}
		resp.CEP = addr.CEP
		resp.Found = true
		resp.Feedback = dto.FeedbackSuccess
		resp.Message = MsgCEPFound
	case errors.Is(err, apperrors.ErrNotFound):
		resp.Feedback = dto.FeedbackError
		resp.Message = MsgCEPNotFound
	case errors.Is(err, context.Canceled):
		return nil, err
	default:
		resp.Feedback = dto.FeedbackError
		resp.Message = MsgCEPFailed
	}

	fillResponseFields(resp, form)
	s.LogDebug(ctx, "CEP autofill finished",
		slog.String("cep", resp.CEP),
		slog.Bool("found", resp.Found),
		slog.Any("filled", resp.Filled))
	return resp, nil
}

func fillResponseFields(resp *dto.AutofillResponse, form domain.AddressForm) {
	resp.Street = form.Values[domain.FieldStreet]
	resp.Neighborhood = form.Values[domain.FieldNeighborhood]
	resp.City = form.Values[domain.FieldCity]
	resp.State = form.Values[domain.FieldState]
}
