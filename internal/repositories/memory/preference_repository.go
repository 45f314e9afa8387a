// Package memory holds in-process repository implementations, used when no
// database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	portsrepo "github.com/SscSPs/abase_form_kit/internal/core/ports/repositories"
)

type prefKey struct {
	userID string
	key    string
}

// PreferenceRepository keeps preferences in a map guarded by a mutex.
type PreferenceRepository struct {
	mu     sync.RWMutex
	values map[prefKey]string
}

var _ portsrepo.PreferenceRepositoryFacade = (*PreferenceRepository)(nil)

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{values: make(map[prefKey]string)}
}

func (r *PreferenceRepository) GetPreference(_ context.Context, userID, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[prefKey{userID, key}]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (r *PreferenceRepository) SetPreference(_ context.Context, userID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[prefKey{userID, key}] = value
	return nil
}

func (r *PreferenceRepository) SetPreferences(_ context.Context, userID string, values map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range values {
		r.values[prefKey{userID, k}] = v
	}
	return nil
}

func (r *PreferenceRepository) RemovePreference(_ context.Context, userID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, prefKey{userID, key})
	return nil
}
