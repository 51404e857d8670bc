package mdcallout

import "fmt"

// CalloutStyle controls how block tools render to markdown.
type CalloutStyle string

const (
	// CalloutGitHub renders blocks as GitHub callouts: > [!WARNING].
	CalloutGitHub CalloutStyle = "github"
	// CalloutBold renders blocks as blockquotes with a bold label prefix.
	// Titles do not survive this style.
	CalloutBold CalloutStyle = "bold"
	// CalloutNone renders blocks as plain blockquotes. Labels and titles
	// do not survive.
	CalloutNone CalloutStyle = "none"
)

// ExportConfig holds exporter options.
type ExportConfig struct {
	CalloutStyle CalloutStyle `json:"calloutStyle,omitempty"`
}

func (c ExportConfig) applyDefaults() ExportConfig {
	if c.CalloutStyle == "" {
		c.CalloutStyle = CalloutGitHub
	}
	return c
}

// Validate checks that config values are valid.
func (c ExportConfig) Validate() error {
	if c.CalloutStyle != CalloutGitHub && c.CalloutStyle != CalloutBold && c.CalloutStyle != CalloutNone {
		return fmt.Errorf("invalid calloutStyle %q", c.CalloutStyle)
	}
	return nil
}

// CalloutDetection controls which callout syntaxes the importer
// reconstructs into block payloads.
type CalloutDetection string

const (
	DetectGitHub CalloutDetection = "github"
	DetectBold   CalloutDetection = "bold"
	DetectAll    CalloutDetection = "all"
	DetectNone   CalloutDetection = "none"
)

// ImportConfig holds importer options.
type ImportConfig struct {
	CalloutDetection CalloutDetection `json:"calloutDetection,omitempty"`
	// DefaultAlertType is used when a callout label does not map to a
	// recognized alert type.
	DefaultAlertType string `json:"defaultAlertType,omitempty"`
}

func (c ImportConfig) applyDefaults() ImportConfig {
	if c.CalloutDetection == "" {
		c.CalloutDetection = DetectAll
	}
	if c.DefaultAlertType == "" {
		c.DefaultAlertType = "info"
	}
	return c
}

// Validate checks that config values are valid.
func (c ImportConfig) Validate() error {
	if c.CalloutDetection != DetectGitHub && c.CalloutDetection != DetectBold && c.CalloutDetection != DetectAll && c.CalloutDetection != DetectNone {
		return fmt.Errorf("invalid calloutDetection %q", c.CalloutDetection)
	}
	if c.DefaultAlertType == "" {
		return fmt.Errorf("defaultAlertType must be non-empty")
	}
	return nil
}
