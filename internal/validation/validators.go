// Package validation registers the Brazilian-document binding tags used by request DTOs.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/abase_form_kit/internal/utils/brdocs"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register installs the cpf, cnpj, cep, pixkey and brlmoney tags on v.
func Register(v *validator.Validate) error {
	validations := map[string]validator.Func{
		"cpf":      isCPF,
		"cnpj":     isCNPJ,
		"cep":      isCEP,
		"pixkey":   isPixKey,
		"brlmoney": isCanonicalMoney,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the tags on gin's default binding validator. It is
// safe to call more than once.
func RegisterWithGin() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("gin binding engine is %T, not *validator.Validate", binding.Validator.Engine())
			return
		}
		err = Register(v)
	})
	return err
}

func isCPF(fl validator.FieldLevel) bool {
	return brdocs.ValidCPF(fl.Field().String())
}

func isCNPJ(fl validator.FieldLevel) bool {
	return brdocs.ValidCNPJ(fl.Field().String())
}

func isCEP(fl validator.FieldLevel) bool {
	return brdocs.ValidCEP(fl.Field().String())
}

// isPixKey accepts any key whose type can be detected.
func isPixKey(fl validator.FieldLevel) bool {
	_, ok := brdocs.DetectPixKey(fl.Field().String())
	return ok
}

// isCanonicalMoney accepts "<digits>.<two digits>", optionally negative.
func isCanonicalMoney(fl validator.FieldLevel) bool {
	s := strings.TrimPrefix(fl.Field().String(), "-")
	dot := strings.IndexByte(s, '.')
	if dot < 1 || len(s)-dot-1 != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == dot {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
