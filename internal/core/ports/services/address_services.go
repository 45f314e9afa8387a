package services

import (
	"context"

	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	"github.com/SscSPs/abase_form_kit/internal/dto"
)

// AddressReaderSvc defines CEP lookups.
type AddressReaderSvc interface {
	// LookupCEP resolves a CEP, masked or not, to an address.
	LookupCEP(ctx context.Context, cep string) (*domain.Address, error)
}

// AddressAutofillSvc fills the address fields of a form from its CEP.
type AddressAutofillSvc interface {
	// Autofill never fails because of the directory: lookup problems come back
	// as advisory feedback in the response.
	Autofill(ctx context.Context, req dto.AutofillRequest) (*dto.AutofillResponse, error)
}

// AddressSvcFacade combines all address-related service interfaces
type AddressSvcFacade interface {
	AddressReaderSvc
	AddressAutofillSvc
}
