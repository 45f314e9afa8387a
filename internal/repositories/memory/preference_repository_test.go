package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	"github.com/SscSPs/abase_form_kit/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPreferenceRepository()

	_, err := repo.GetPreference(ctx, "u1", "theme")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SetPreference(ctx, "u1", "theme", "dark"))
	v, err := repo.GetPreference(ctx, "u1", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	_, err = repo.GetPreference(ctx, "u2", "theme")
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "preferences are per user")

	require.NoError(t, repo.SetPreferences(ctx, "u1", map[string]string{"theme": "light", "sidebar_collapsed": "true"}))
	v, _ = repo.GetPreference(ctx, "u1", "theme")
	assert.Equal(t, "light", v)
	v, _ = repo.GetPreference(ctx, "u1", "sidebar_collapsed")
	assert.Equal(t, "true", v)

	require.NoError(t, repo.RemovePreference(ctx, "u1", "theme"))
	require.NoError(t, repo.RemovePreference(ctx, "u1", "theme"), "removing twice is fine")
	_, err = repo.GetPreference(ctx, "u1", "theme")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
