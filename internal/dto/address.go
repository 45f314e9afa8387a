package dto

import "github.com/SscSPs/abase_form_kit/internal/core/domain"

// AddressResponse is returned by the CEP lookup endpoint.
type AddressResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"endereco"`
	Complement   string `json:"complemento,omitempty"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"uf"`
}

// ToAddressResponse converts a domain.Address to AddressResponse DTO
func ToAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{
		CEP:          a.CEP,
		Street:       a.Street,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

// AutofillRequest carries the CEP and whatever the user already typed in the address fields.
type AutofillRequest struct {
	CEP          string `json:"cep" binding:"required,cep"`
	Street       string `json:"endereco"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"uf"`
}

// ToAddressForm converts the request into the domain form model.
func (r AutofillRequest) ToAddressForm() domain.AddressForm {
	return domain.AddressForm{
		CEP: r.CEP,
		Values: map[domain.AddressField]string{
			domain.FieldStreet:       r.Street,
			domain.FieldNeighborhood: r.Neighborhood,
			domain.FieldCity:         r.City,
			domain.FieldState:        r.State,
		},
	}
}

// FeedbackType mirrors the colour of the advisory text under the CEP field.
type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackError   FeedbackType = "error"
	FeedbackInfo    FeedbackType = "info"
)

// AutofillResponse is the form after autofill plus the advisory to show.
type AutofillResponse struct {
	CEP          string       `json:"cep"`
	Found        bool         `json:"found"`
	Street       string       `json:"endereco"`
	Neighborhood string       `json:"bairro"`
	City         string       `json:"cidade"`
	State        string       `json:"uf"`
	Filled       []string     `json:"filled"`
	Feedback     FeedbackType `json:"feedback"`
	Message      string       `json:"message"`
}
