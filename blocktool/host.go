package blocktool

// Host is the narrow slice of the editor's API a tool actually touches:
// style class lookup and translation. Everything else the host exposes is
// deliberately out of reach.
type Host interface {
	// BlockStyle returns the class every block container carries.
	BlockStyle() string
	// InputStyle returns the class every editable region carries.
	InputStyle() string
	// SettingsButtonStyle returns the class of a settings control.
	SettingsButtonStyle() string
	// ActiveSettingsButtonStyle returns the class marking the selected
	// settings control.
	ActiveSettingsButtonStyle() string
	// Translate resolves a UI string through the host's i18n layer.
	Translate(s string) string
}

// DefaultHost implements Host with the editor's conventional class names
// and identity translation. Useful in tests and headless pipelines.
type DefaultHost struct{}

func (DefaultHost) BlockStyle() string                { return "cdx-block" }
func (DefaultHost) InputStyle() string                { return "cdx-input" }
func (DefaultHost) SettingsButtonStyle() string       { return "cdx-settings-button" }
func (DefaultHost) ActiveSettingsButtonStyle() string { return "cdx-settings-button--active" }
func (DefaultHost) Translate(s string) string         { return s }
