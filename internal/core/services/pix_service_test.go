package services_test

import (
	"testing"

	"github.com/SscSPs/abase_form_kit/internal/core/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestPixService_ValidateKey(t *testing.T) {
	svc := services.NewPixService()

	resp := svc.ValidateKey(dto.PixValidateRequest{Type: "CPF", Key: "529.982.247-25"})
	assert.True(t, resp.Valid)
	assert.Equal(t, "CPF", resp.Type)
	assert.Equal(t, "Chave PIX válida", resp.Message)
	assert.NotEmpty(t, resp.Placeholder)

	resp = svc.ValidateKey(dto.PixValidateRequest{Type: "TELEFONE", Key: "123"})
	assert.False(t, resp.Valid)
	assert.Equal(t, "Formato inválido para TELEFONE", resp.Message)

	resp = svc.ValidateKey(dto.PixValidateRequest{Key: "socio@abase.org.br"})
	assert.True(t, resp.Valid)
	assert.Equal(t, "EMAIL", resp.Type)

	resp = svc.ValidateKey(dto.PixValidateRequest{Key: "???"})
	assert.False(t, resp.Valid)
	assert.Empty(t, resp.Type)
	assert.Contains(t, resp.Message, "Chave PIX inválida")
}
