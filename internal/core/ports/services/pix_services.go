package services

import "github.com/SscSPs/abase_form_kit/internal/dto"

// PixSvcFacade validates PIX keys.
type PixSvcFacade interface {
	ValidateKey(req dto.PixValidateRequest) dto.PixValidateResponse
}
