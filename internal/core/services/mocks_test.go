package services_test

import (
	"context"

	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetPreference(ctx context.Context, userID, key string) (string, error) {
	args := m.Called(ctx, userID, key)
	return args.String(0), args.Error(1)
}

func (m *MockPreferenceRepository) SetPreference(ctx context.Context, userID, key, value string) error {
	args := m.Called(ctx, userID, key, value)
	return args.Error(0)
}

func (m *MockPreferenceRepository) SetPreferences(ctx context.Context, userID string, values map[string]string) error {
	args := m.Called(ctx, userID, values)
	return args.Error(0)
}

func (m *MockPreferenceRepository) RemovePreference(ctx context.Context, userID, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}

// --- Mock AddressDirectory ---
type MockAddressDirectory struct {
	mock.Mock
}

func (m *MockAddressDirectory) LookupCEP(ctx context.Context, cep string) (domain.Address, error) {
	args := m.Called(ctx, cep)
	return args.Get(0).(domain.Address), args.Error(1)
}

// --- Mock AddressReaderSvc ---
type MockAddressReader struct {
	mock.Mock
}

func (m *MockAddressReader) LookupCEP(ctx context.Context, cep string) (*domain.Address, error) {
	args := m.Called(ctx, cep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
