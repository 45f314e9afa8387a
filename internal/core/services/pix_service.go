package services

import (
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/SscSPs/abase_form_kit/internal/utils/brdocs"
)

type pixService struct{}

func NewPixService() portssvc.PixSvcFacade {
	return &pixService{}
}

var _ portssvc.PixSvcFacade = (*pixService)(nil)

// ValidateKey checks the key against the chosen type, or detects the type
// when none was chosen.
func (s *pixService) ValidateKey(req dto.PixValidateRequest) dto.PixValidateResponse {
	typ, chosen := brdocs.ParsePixKeyType(req.Type)

	var valid bool
	if chosen {
		valid = brdocs.ValidatePixKey(typ, req.Key)
	} else {
		typ, valid = brdocs.DetectPixKey(req.Key)
	}

	return dto.PixValidateResponse{
		Valid:       valid,
		Type:        string(typ),
		Placeholder: typ.Placeholder(),
		Hint:        typ.Hint(),
		Message:     brdocs.PixValidationMessage(typ, valid),
	}
}
