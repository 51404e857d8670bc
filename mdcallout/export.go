package mdcallout

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/editorkit/blocktools/blocktool"
)

// paragraphData is the payload of the host's stock paragraph block.
type paragraphData struct {
	Text string `json:"text"`
}

// Fields implements blocktool.Data.
func (d paragraphData) Fields() map[string]string {
	return map[string]string{"text": d.Text}
}

// Exporter renders a block document to GFM markdown. Warning, Success and
// Alert blocks become blockquote callouts; paragraph blocks become plain
// paragraphs.
type Exporter struct {
	config ExportConfig
}

// NewExporter creates an Exporter with the given config.
func NewExporter(config ExportConfig) (*Exporter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Exporter{config: cfg}, nil
}

type exportState struct {
	config   ExportConfig
	warnings []blocktool.Warning
}

// Convert renders a document to markdown. Unknown block types and
// malformed payloads degrade with warnings; Convert fails only on
// impossible inputs, never on content.
func (e *Exporter) Convert(doc blocktool.Document) (Result, error) {
	s := &exportState{config: e.config}

	var sb strings.Builder
	for _, block := range doc.Blocks {
		sb.WriteString(s.convertBlock(block))
	}

	markdown := strings.TrimRight(sb.String(), "\n")
	if markdown != "" {
		markdown += "\n"
	}

	return Result{Markdown: markdown, Warnings: s.warnings}, nil
}

func (s *exportState) addWarning(warnType blocktool.WarningType, block, message string) {
	s.warnings = append(s.warnings, blocktool.Warning{
		Type:    warnType,
		Block:   block,
		Message: message,
	})
}

func (s *exportState) convertBlock(block blocktool.Block) string {
	switch block.Type {
	case "warning", "success":
		var data blocktool.SimpleData
		s.unmarshalPayload(block, &data)
		return s.callout(strings.ToUpper(block.Type), data.Title, data.Message)

	case "alert":
		var data blocktool.TypedData
		s.unmarshalPayload(block, &data)
		label := strings.ToUpper(data.Type)
		if label == "" {
			label = "INFO"
		}
		return s.callout(label, "", data.Message)

	case "paragraph":
		var data paragraphData
		s.unmarshalPayload(block, &data)
		text := htmlToMarkdown(data.Text)
		if text == "" {
			return ""
		}
		return text + "\n\n"

	default:
		s.addWarning(
			blocktool.WarningUnknownBlock,
			block.Type,
			fmt.Sprintf("unsupported block type %q, skipped", block.Type),
		)
		return ""
	}
}

func (s *exportState) unmarshalPayload(block blocktool.Block, target any) {
	if len(block.Data) == 0 {
		return
	}
	if err := json.Unmarshal(block.Data, target); err != nil {
		s.addWarning(
			blocktool.WarningMalformedData,
			block.Type,
			fmt.Sprintf("malformed %s payload, using empty fields", block.Type),
		)
	}
}

// callout renders one block as a blockquote in the configured style.
func (s *exportState) callout(label, title, message string) string {
	title = htmlToMarkdown(title)
	message = htmlToMarkdown(message)

	switch s.config.CalloutStyle {
	case CalloutBold:
		if title != "" {
			s.addWarning(
				blocktool.WarningDroppedFeature,
				strings.ToLower(label),
				"bold callout style cannot carry a title, dropped",
			)
		}
		body := fmt.Sprintf("**%s**: %s", titleCase(label), message)
		return quote(strings.TrimRight(body, " ")) + "\n\n"

	case CalloutNone:
		if title != "" {
			s.addWarning(
				blocktool.WarningDroppedFeature,
				strings.ToLower(label),
				"plain blockquote style cannot carry a title, dropped",
			)
		}
		if strings.TrimSpace(message) == "" {
			return ""
		}
		return quote(message) + "\n\n"

	default: // CalloutGitHub
		lines := []string{fmt.Sprintf("[!%s]", label)}
		if title != "" {
			lines = append(lines, fmt.Sprintf("**%s**", title))
		}
		if message != "" {
			lines = append(lines, message)
		}
		return quote(strings.Join(lines, "\n")) + "\n\n"
	}
}

// quote prefixes every line of content with the blockquote marker.
func quote(content string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	quoted := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			quoted = append(quoted, ">")
			continue
		}
		quoted = append(quoted, "> "+line)
	}
	return strings.Join(quoted, "\n")
}

func titleCase(label string) string {
	if label == "" {
		return ""
	}
	lower := strings.ToLower(label)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
