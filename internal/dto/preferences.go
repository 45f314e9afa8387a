package dto

import (
	"github.com/SscSPs/abase_form_kit/internal/core/domain"
)

// UpdatePreferencesRequest changes any subset of the UI preferences.
type UpdatePreferencesRequest struct {
	Theme            *string `json:"theme" binding:"omitempty,oneof=light dark"`
	SidebarCollapsed *bool   `json:"sidebarCollapsed"`
}

// PreferencesResponse defines the data returned for a user's UI preferences.
type PreferencesResponse struct {
	Theme            domain.Theme `json:"theme"`
	ThemeColor       string       `json:"themeColor"`
	ThemeExplicit    bool         `json:"themeExplicit"`
	SidebarCollapsed bool         `json:"sidebarCollapsed"`
}

// ToPreferencesResponse converts domain.Preferences to PreferencesResponse DTO
func ToPreferencesResponse(p *domain.Preferences) PreferencesResponse {
	return PreferencesResponse{
		Theme:            p.Theme,
		ThemeColor:       p.Theme.Color(),
		ThemeExplicit:    p.ThemeExplicit,
		SidebarCollapsed: p.SidebarCollapsed,
	}
}
