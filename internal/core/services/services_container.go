package services

import (
	portsrepo "github.com/SscSPs/abase_form_kit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/platform/config"
	"github.com/SscSPs/abase_form_kit/internal/utils/brl"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	strategy, err := brl.ParseStrategy(cfg.MoneyDefaultStrategy)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Money:      NewMoneyService(strategy),
		Address:    NewAddressService(repos.AddressDirectory),
		Preference: NewPreferenceService(repos.PreferenceRepo),
		Pix:        NewPixService(),
	}, nil
}
