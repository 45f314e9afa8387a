package domain

// Address is the street address the CEP directory returns for a postal code.
type Address struct {
	CEP          string `json:"cep"`          // Masked, e.g. "01310-100"
	Street       string `json:"street"`       // logradouro
	Complement   string `json:"complement"`   // Nullable
	Neighborhood string `json:"neighborhood"` // bairro
	City         string `json:"city"`         // localidade
	State        string `json:"state"`        // UF, two letters
}

// AddressField names one of the form fields the autofill may write.
type AddressField string

const (
	FieldStreet       AddressField = "endereco"
	FieldNeighborhood AddressField = "bairro"
	FieldCity         AddressField = "cidade"
	FieldState        AddressField = "uf"
)

// AddressFields lists the fillable fields in the order they appear on the form.
var AddressFields = []AddressField{FieldStreet, FieldNeighborhood, FieldCity, FieldState}

// AddressForm is the current content of the address fields on a registration form.
type AddressForm struct {
	CEP    string
	Values map[AddressField]string
}

// value returns the address component that belongs in field f.
func (a Address) value(f AddressField) string {
	switch f {
	case FieldStreet:
		return a.Street
	case FieldNeighborhood:
		return a.Neighborhood
	case FieldCity:
		return a.City
	case FieldState:
		return a.State
	}
	return ""
}

// Fill copies components of addr into fields that are still blank and
// returns the names of the fields it wrote. Fields the user already typed
// into are never overwritten.
func (f *AddressForm) Fill(addr Address) []AddressField {
	if f.Values == nil {
		f.Values = make(map[AddressField]string, len(AddressFields))
	}
	var filled []AddressField
	for _, field := range AddressFields {
		v := addr.value(field)
		if v == "" || !isBlank(f.Values[field]) {
			continue
		}
		f.Values[field] = v
		filled = append(filled, field)
	}
	return filled
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}
