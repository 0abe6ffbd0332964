package domain

const (
	PreferenceCurrentTheme = "current_theme"
	DefaultThemeID         = "light"
)

type Theme struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Stylesheet string `json:"stylesheet"`
	Dark       bool   `json:"dark"`
}

type Preference struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// View describes a screen of the desktop client reachable from its menu.
// API is the path this service exposes for the view; views without one are
// handled by the desktop client alone.
type View struct {
	Route   string `json:"route"`
	Title   string `json:"title"`
	Section string `json:"section"`
	Icon    string `json:"icon,omitempty"`
	API     string `json:"api,omitempty"`
}
