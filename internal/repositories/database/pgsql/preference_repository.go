package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	portsrepo "github.com/SscSPs/abase_form_kit/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPreferenceRepository struct {
	BaseRepository
}

// newPgxPreferenceRepository creates a new repository for UI preference data.
func newPgxPreferenceRepository(pool *pgxpool.Pool) *PgxPreferenceRepository {
	return &PgxPreferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PreferenceRepositoryFacade = (*PgxPreferenceRepository)(nil)
var _ portsrepo.TransactionManager = (*PgxPreferenceRepository)(nil)

const upsertPreferenceQuery = `
	INSERT INTO ui_preferences (user_id, pref_key, pref_value, updated_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, pref_key) DO UPDATE SET
		pref_value = EXCLUDED.pref_value,
		updated_at = EXCLUDED.updated_at;
`

// GetPreference retrieves a single preference value.
func (r *PgxPreferenceRepository) GetPreference(ctx context.Context, userID, key string) (string, error) {
	query := `
		SELECT pref_value
		FROM ui_preferences
		WHERE user_id = $1 AND pref_key = $2;
	`
	var value string
	err := r.Pool.QueryRow(ctx, query, userID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to get preference %s for user %s: %w", key, userID, err)
	}
	return value, nil
}

// SetPreference inserts or replaces a preference value.
func (r *PgxPreferenceRepository) SetPreference(ctx context.Context, userID, key, value string) error {
	_, err := r.Pool.Exec(ctx, upsertPreferenceQuery, userID, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set preference %s for user %s: %w", key, userID, err)
	}
	return nil
}

// SetPreferences writes all values in a single transaction.
func (r *PgxPreferenceRepository) SetPreferences(ctx context.Context, userID string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	return r.WithTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		now := time.Now()
		for key, value := range values {
			batch.Queue(upsertPreferenceQuery, userID, key, value, now)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to set preferences for user %s: %w", userID, err)
		}
		return nil
	})
}

// RemovePreference deletes a preference; a missing row is not an error.
func (r *PgxPreferenceRepository) RemovePreference(ctx context.Context, userID, key string) error {
	query := `DELETE FROM ui_preferences WHERE user_id = $1 AND pref_key = $2;`
	if _, err := r.Pool.Exec(ctx, query, userID, key); err != nil {
		return fmt.Errorf("failed to remove preference %s for user %s: %w", key, userID, err)
	}
	return nil
}
