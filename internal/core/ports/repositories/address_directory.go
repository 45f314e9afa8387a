package repositories

import (
	"context"

	"github.com/SscSPs/abase_form_kit/internal/core/domain"
)

// AddressDirectory resolves a CEP to a street address using an external directory.
type AddressDirectory interface {
	// LookupCEP expects exactly eight digits. It returns apperrors.ErrNotFound for
	// unknown CEPs and apperrors.ErrUpstream when the directory cannot be reached.
	LookupCEP(ctx context.Context, cep string) (domain.Address, error)
}
