package blocktool

// WarningType categorizes non-fatal issues.
type WarningType string

const (
	WarningMissingRegion  WarningType = "missing_region"
	WarningUnknownType    WarningType = "unknown_type"
	WarningUnknownBlock   WarningType = "unknown_block"
	WarningMalformedData  WarningType = "malformed_data"
	WarningDroppedFeature WarningType = "dropped_feature"
)

// Warning represents a non-fatal issue encountered while reading a view or
// a document back into data.
type Warning struct {
	Type    WarningType `json:"type"`
	Block   string      `json:"block,omitempty"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
}

// SaveResult holds the payload produced by Save plus any degradations that
// occurred while reading the view.
type SaveResult struct {
	Data     Data      `json:"data"`
	Warnings []Warning `json:"warnings,omitempty"`
}
