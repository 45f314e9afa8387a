package repositories

import "context"

// PreferenceReader defines read operations for persisted UI preferences.
type PreferenceReader interface {
	// GetPreference returns the stored value, or apperrors.ErrNotFound when the key was never set.
	GetPreference(ctx context.Context, userID, key string) (string, error)
}

// PreferenceWriter defines write operations for persisted UI preferences.
type PreferenceWriter interface {
	// SetPreference stores value under key, replacing any previous value.
	SetPreference(ctx context.Context, userID, key, value string) error

	// SetPreferences stores several keys at once; either all are written or none.
	SetPreferences(ctx context.Context, userID string, values map[string]string) error

	// RemovePreference deletes key. Removing a missing key is not an error.
	RemovePreference(ctx context.Context, userID, key string) error
}

// PreferenceRepositoryFacade combines all preference-related repository interfaces
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
