package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/apperrors"
	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	portsrepo "github.com/SscSPs/abase_form_kit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/dto"
)

type preferenceService struct {
	BaseService
	prefRepo portsrepo.PreferenceRepositoryFacade
	now      func() time.Time
}

// PreferenceServiceOption is a functional option for configuring the preference service
type PreferenceServiceOption func(*preferenceService)

// WithPreferenceClock overrides the clock used for Preferences.LoadedAt.
func WithPreferenceClock(now func() time.Time) PreferenceServiceOption {
	return func(s *preferenceService) {
		s.now = now
	}
}

func NewPreferenceService(prefRepo portsrepo.PreferenceRepositoryFacade, options ...PreferenceServiceOption) portssvc.PreferenceSvcFacade {
	svc := &preferenceService{
		BaseService: BaseService{component: "preferences"},
		prefRepo:    prefRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PreferenceSvcFacade = (*preferenceService)(nil)

func (s *preferenceService) Load(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}

	prefs := &domain.Preferences{UserID: userID, Theme: domain.ThemeLight, LoadedAt: s.now()}
	if t, ok := domain.ParseTheme(string(systemTheme)); ok {
		prefs.Theme = t
	}

	stored, found, err := s.get(ctx, userID, domain.PrefKeyTheme)
	if err != nil {
		return nil, err
	}
	if found {
		if t, ok := domain.ParseTheme(stored); ok {
			prefs.Theme = t
			prefs.ThemeExplicit = true
		} else {
			s.LogWarn(ctx, "Ignoring invalid stored theme", slog.String("user_id", userID), slog.String("theme", stored))
		}
	}

	stored, found, err = s.get(ctx, userID, domain.PrefKeySidebarCollapsed)
	if err != nil {
		return nil, err
	}
	if found {
		collapsed, perr := strconv.ParseBool(stored)
		if perr != nil {
			s.LogWarn(ctx, "Ignoring invalid stored sidebar state", slog.String("user_id", userID), slog.String("value", stored))
		}
		prefs.SidebarCollapsed = collapsed
	}

	return prefs, nil
}

func (s *preferenceService) SetTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.Preferences, error) {
	if _, ok := domain.ParseTheme(string(theme)); !ok {
		return nil, fmt.Errorf("%w: unknown theme %q", apperrors.ErrValidation, theme)
	}
	if err := s.set(ctx, userID, map[string]string{domain.PrefKeyTheme: string(theme)}); err != nil {
		return nil, err
	}
	return s.Load(ctx, userID, theme)
}

func (s *preferenceService) ToggleTheme(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error) {
	current, err := s.Load(ctx, userID, systemTheme)
	if err != nil {
		return nil, err
	}
	return s.SetTheme(ctx, userID, current.Theme.Toggle())
}

func (s *preferenceService) SetSidebarCollapsed(ctx context.Context, userID string, collapsed bool, systemTheme domain.Theme) (*domain.Preferences, error) {
	if err := s.set(ctx, userID, map[string]string{domain.PrefKeySidebarCollapsed: strconv.FormatBool(collapsed)}); err != nil {
		return nil, err
	}
	return s.Load(ctx, userID, systemTheme)
}

func (s *preferenceService) ToggleSidebar(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error) {
	current, err := s.Load(ctx, userID, systemTheme)
	if err != nil {
		return nil, err
	}
	return s.SetSidebarCollapsed(ctx, userID, !current.SidebarCollapsed, systemTheme)
}

func (s *preferenceService) Update(ctx context.Context, userID string, req dto.UpdatePreferencesRequest, systemTheme domain.Theme) (*domain.Preferences, error) {
	values := make(map[string]string, 2)
	if req.Theme != nil {
		theme, ok := domain.ParseTheme(*req.Theme)
		if !ok {
			return nil, fmt.Errorf("%w: unknown theme %q", apperrors.ErrValidation, *req.Theme)
		}
		values[domain.PrefKeyTheme] = string(theme)
	}
	if req.SidebarCollapsed != nil {
		values[domain.PrefKeySidebarCollapsed] = strconv.FormatBool(*req.SidebarCollapsed)
	}
	if len(values) > 0 {
		if err := s.set(ctx, userID, values); err != nil {
			return nil, err
		}
	}
	return s.Load(ctx, userID, systemTheme)
}

func (s *preferenceService) Reset(ctx context.Context, userID string, systemTheme domain.Theme) (*domain.Preferences, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	for _, key := range []string{domain.PrefKeyTheme, domain.PrefKeySidebarCollapsed} {
		if err := s.prefRepo.RemovePreference(ctx, userID, key); err != nil {
			s.LogError(ctx, err, "Failed to remove preference", slog.String("user_id", userID), slog.String("key", key))
			return nil, fmt.Errorf("failed to reset preferences in service: %w", err)
		}
	}
	s.LogInfo(ctx, "Preferences reset", slog.String("user_id", userID))
	return s.Load(ctx, userID, systemTheme)
}

func (s *preferenceService) get(ctx context.Context, userID, key string) (string, bool, error) {
	v, err := s.prefRepo.GetPreference(ctx, userID, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to read preference", slog.String("user_id", userID), slog.String("key", key))
		return "", false, fmt.Errorf("failed to load preferences in service: %w", err)
	}
	return v, true, nil
}

func (s *preferenceService) set(ctx context.Context, userID string, values map[string]string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	var err error
	if len(values) == 1 {
		for k, v := range values {
			err = s.prefRepo.SetPreference(ctx, userID, k, v)
		}
	} else {
		err = s.prefRepo.SetPreferences(ctx, userID, values)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to save preferences", slog.String("user_id", userID))
		return fmt.Errorf("failed to save preferences in service: %w", err)
	}
	return nil
}
