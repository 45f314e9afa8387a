package services

import (
	"context"

	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	"github.com/SscSPs/abase_form_kit/internal/dto"
)

// PreferenceReaderSvc defines read operations for UI preferences
type PreferenceReaderSvc interface {
	// Load returns a user's preferences. systemTheme is the client's colour
	// scheme, used when the user never chose a theme; empty means light.
	Load(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error)
}

// PreferenceWriterSvc defines write operations for UI preferences.
// Every method returns the preferences as they are after the change.
type PreferenceWriterSvc interface {
	SetTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.Preferences, error)
	ToggleTheme(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error)
	SetSidebarCollapsed(ctx context.Context, userID string, collapsed bool, systemTheme domain.Theme) (*domain.Preferences, error)
	ToggleSidebar(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error)

	// Update applies any subset of the preferences in a single write.
	Update(ctx context.Context, userID string, req dto.UpdatePreferencesRequest, systemTheme domain.Theme) (*domain.Preferences, error)

	// Reset forgets the stored values so the theme follows the system again.
	Reset(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error)
}

// PreferenceSvcFacade combines all preference-related service interfaces
type PreferenceSvcFacade interface {
	PreferenceReaderSvc
	PreferenceWriterSvc
}
