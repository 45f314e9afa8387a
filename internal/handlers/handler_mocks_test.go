package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock AddressService ---
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) LookupCEP(ctx context.Context, cep string) (*domain.Address, error) {
	args := m.Called(ctx, cep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockAddressService) Autofill(ctx context.Context, req dto.AutofillRequest) (*dto.AutofillResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AutofillResponse), args.Error(1)
}

var _ portssvc.AddressSvcFacade = (*MockAddressService)(nil)

// --- Mock PreferenceService ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) prefs(args mock.Arguments) (*domain.Preferences, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preferences), args.Error(1)
}

func (m *MockPreferenceService) Load(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error) {
	return m.prefs(m.Called(ctx, userID, systemTheme))
}

func (m *MockPreferenceService) SetTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.Preferences, error) {
	return m.prefs(m.Called(ctx, userID, theme))
}

func (m *MockPreferenceService) ToggleTheme(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error) {
	return m.prefs(m.Called(ctx, userID, systemTheme))
}

func (m *MockPreferenceService) SetSidebarCollapsed(ctx context.Context, userID string, collapsed bool, systemTheme domain.Theme) (*domain.Preferences, error) {
	return m.prefs(m.Called(ctx, userID, collapsed, systemTheme))
}

func (m *MockPreferenceService) ToggleSidebar(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error) {
	return m.prefs(m.Called(ctx, userID, systemTheme))
}

func (m *MockPreferenceService) Update(ctx context.Context, userID string, req dto.UpdatePreferencesRequest, systemTheme domain.Theme) (*domain.Preferences, error) {
	return m.prefs(m.Called(ctx, userID, req, systemTheme))
}

func (m *MockPreferenceService) Reset(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error) {
	return m.prefs(m.Called(ctx, userID, systemTheme))
}

var _ portssvc.PreferenceSvcFacade = (*MockPreferenceService)(nil)

// generateTestToken creates a signed JWT for testing.
func generateTestToken(secret, issuer, userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		panic("Failed to sign test token: " + err.Error())
	}
	return signed
}
