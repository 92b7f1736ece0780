package webui

import "strings"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// normalizeTheme maps configuration to a theme name known to app.css.
func normalizeTheme(name string) string {
	if strings.EqualFold(strings.TrimSpace(name), ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}
