package dto

// PixValidateRequest checks a PIX key, optionally against a chosen key type.
type PixValidateRequest struct {
	Type string `json:"type" binding:"omitempty,oneof=CPF CNPJ EMAIL TELEFONE ALEATORIA"`
	Key  string `json:"key" binding:"required"`
}

// PixValidateResponse reports the outcome and the hints the form displays.
type PixValidateResponse struct {
	Valid       bool   `json:"valid"`
	Type        string `json:"type,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Message     string `json:"message"`
}
