package mdcallout

import "github.com/editorkit/blocktools/blocktool"

// Result holds the output of a document -> markdown export.
type Result struct {
	Markdown string              `json:"markdown"`
	Warnings []blocktool.Warning `json:"warnings,omitempty"`
}

// ImportResult holds the output of a markdown -> document import.
type ImportResult struct {
	Document blocktool.Document  `json:"document"`
	Warnings []blocktool.Warning `json:"warnings,omitempty"`
}
