package brdocs

import (
	"fmt"
	"regexp"
	"strings"
)

// PixKeyType is the kind of key registered with a PIX account.
type PixKeyType string

const (
	PixCPF       PixKeyType = "CPF"
	PixCNPJ      PixKeyType = "CNPJ"
	PixEmail     PixKeyType = "EMAIL"
	PixPhone     PixKeyType = "TELEFONE"
	PixRandomKey PixKeyType = "ALEATORIA"
)

// PixKeyTypes lists every supported type in display order.
var PixKeyTypes = []PixKeyType{PixCPF, PixCNPJ, PixEmail, PixPhone, PixRandomKey}

var (
	emailRE     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRE     = regexp.MustCompile(`^\+?\d{10,15}$`)
	uuidLikeRE  = regexp.MustCompile(`(?i)^[0-9a-f]{32}$|^[0-9a-f-]{36}$`)
	randomKeyRE = regexp.MustCompile(`(?i)^[a-f0-9-]{32,}$`)
)

var pixPlaceholders = map[PixKeyType]string{
	PixCPF:       "000.000.000-00",
	PixCNPJ:      "00.000.000/0000-00",
	PixEmail:     "usuario@email.com",
	PixPhone:     "(11) 99999-9999",
	PixRandomKey: "chave-uuid-aleatoria",
}

var pixHints = map[PixKeyType]string{
	PixCPF:       "Digite o CPF do associado (mesmo usado na identificação)",
	PixCNPJ:      "Digite o CNPJ da empresa/organização",
	PixEmail:     "Digite o e-mail cadastrado como chave PIX",
	PixPhone:     "Digite o telefone com DDD cadastrado como chave PIX",
	PixRandomKey: "Digite a chave aleatória gerada pelo banco",
}

// ParsePixKeyType accepts a type name in any case.
func ParsePixKeyType(s string) (PixKeyType, bool) {
	t := PixKeyType(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := pixPlaceholders[t]
	return t, ok
}

// Placeholder is the input placeholder shown for the key type.
func (t PixKeyType) Placeholder() string { return pixPlaceholders[t] }

// Hint is the helper text shown under the key input.
func (t PixKeyType) Hint() string { return pixHints[t] }

// ValidatePixKey checks key against the format of an explicitly chosen type.
func ValidatePixKey(t PixKeyType, key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	switch t {
	case PixCPF:
		return ValidCPF(key)
	case PixCNPJ:
		return ValidCNPJ(key)
	case PixEmail:
		return emailRE.MatchString(key)
	case PixPhone:
		n := len(Digits(key))
		return n >= 10 && n <= 11
	case PixRandomKey:
		return randomKeyRE.MatchString(key)
	default:
		return false
	}
}

// DetectPixKey guesses the type of a key entered without one. It accepts an
// e-mail, a phone number, a CPF, a CNPJ or a uuid-like random key.
func DetectPixKey(key string) (PixKeyType, bool) {
	v := strings.TrimSpace(key)
	if v == "" {
		return "", false
	}
	if emailRE.MatchString(v) {
		return PixEmail, true
	}
	// Check digits win over the phone pattern: an 11-digit number that is a
	// valid CPF is read as a CPF.
	switch {
	case ValidCPF(v):
		return PixCPF, true
	case ValidCNPJ(v):
		return PixCNPJ, true
	case phoneRE.MatchString(v):
		return PixPhone, true
	case uuidLikeRE.MatchString(v):
		return PixRandomKey, true
	}
	return "", false
}

// PixValidationMessage is the advisory shown next to the key field.
func PixValidationMessage(t PixKeyType, valid bool) string {
	if valid {
		return "Chave PIX válida"
	}
	if t == "" {
		return "Chave PIX inválida (CPF/CNPJ, e-mail, celular ou chave aleatória)."
	}
	return fmt.Sprintf("Formato inválido para %s", t)
}
