package domain

import "time"

// Theme is the colour scheme of the UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preference keys as persisted in the store.
const (
	PrefKeyTheme            = "theme"
	PrefKeySidebarCollapsed = "sidebar_collapsed"
)

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Color is the meta theme-color used by mobile browsers.
func (t Theme) Color() string {
	if t == ThemeDark {
		return "#0f172a"
	}
	return "#ffffff"
}

// Preferences is the UI state remembered for a user.
type Preferences struct {
	UserID           string    `json:"userID"`
	Theme            Theme     `json:"theme"`
	ThemeExplicit    bool      `json:"themeExplicit"` // false when Theme follows the system setting
	SidebarCollapsed bool      `json:"sidebarCollapsed"`
	LoadedAt         time.Time `json:"loadedAt"`
}
