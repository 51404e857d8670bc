package mdcallout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/editorkit/blocktools/blocktool"
)

var calloutLabelPattern = regexp.MustCompile(`^\[!([A-Za-z]+)(?::\s*([^\]]+))?\]`)

// Importer parses GFM markdown back into a block document. Blockquote
// callouts are reconstructed into Warning, Success and Alert payloads;
// remaining content becomes paragraph blocks.
//
// The mapping is lossy where the markdown form is: an alert of type
// "warning" exports to the same callout as a warning block and imports as
// the latter.
type Importer struct {
	config ImportConfig
	parser goldmark.Markdown
}

// NewImporter creates an Importer with the given config.
func NewImporter(config ImportConfig) (*Importer, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Importer{
		config: cfg,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

type importState struct {
	config     ImportConfig
	source     []byte
	alertTypes map[string]string
	warnings   []blocktool.Warning
}

// Convert parses a markdown document and returns the reconstructed block
// list. Unknown constructs degrade to paragraph text with warnings.
func (i *Importer) Convert(markdown string) (ImportResult, error) {
	s := &importState{
		config:     i.config,
		source:     []byte(markdown),
		alertTypes: blocktool.DefaultConfig().TypeColors,
	}

	root := i.parser.Parser().Parse(text.NewReader(s.source))

	var doc blocktool.Document
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		block, ok, err := s.convertBlockNode(child)
		if err != nil {
			return ImportResult{}, err
		}
		if ok {
			doc.Blocks = append(doc.Blocks, block)
		}
	}

	return ImportResult{Document: doc, Warnings: s.warnings}, nil
}

func (s *importState) addWarning(warnType blocktool.WarningType, block, message string) {
	s.warnings = append(s.warnings, blocktool.Warning{
		Type:    warnType,
		Block:   block,
		Message: message,
	})
}

func (s *importState) convertBlockNode(node ast.Node) (blocktool.Block, bool, error) {
	switch typed := node.(type) {
	case *ast.Paragraph:
		return s.paragraphBlock(s.inlineHTML(typed))

	case *ast.TextBlock:
		return s.paragraphBlock(s.inlineHTML(typed))

	case *ast.Blockquote:
		return s.convertBlockquote(typed)

	case *ast.Heading:
		// Headings have no block-tool counterpart; keep the text bold.
		content := s.inlineHTML(typed)
		if content == "" {
			return blocktool.Block{}, false, nil
		}
		s.addWarning(
			blocktool.WarningDroppedFeature,
			"paragraph",
			fmt.Sprintf("heading level %d demoted to bold paragraph", typed.Level),
		)
		return s.paragraphBlock("<b>" + content + "</b>")

	case *ast.ThematicBreak:
		s.addWarning(blocktool.WarningDroppedFeature, "", "thematic break dropped")
		return blocktool.Block{}, false, nil

	default:
		content := strings.TrimSpace(s.plainText(node))
		if content == "" {
			return blocktool.Block{}, false, nil
		}
		s.addWarning(
			blocktool.WarningUnknownBlock,
			node.Kind().String(),
			fmt.Sprintf("unsupported markdown block node %s kept as plain text", node.Kind()),
		)
		return s.paragraphBlock(content)
	}
}

func (s *importState) paragraphBlock(content string) (blocktool.Block, bool, error) {
	if content == "" {
		return blocktool.Block{}, false, nil
	}
	block, err := blocktool.NewBlock("paragraph", paragraphData{Text: content})
	if err != nil {
		return blocktool.Block{}, false, err
	}
	return block, true, nil
}

func (s *importState) convertBlockquote(node *ast.Blockquote) (blocktool.Block, bool, error) {
	paragraphs := s.blockquoteParagraphs(node)
	if len(paragraphs) == 0 {
		return blocktool.Block{}, false, nil
	}

	first := paragraphs[0]
	if match, ok := s.detectCallout(first); ok {
		return s.calloutBlock(match, paragraphs[1:])
	}

	// Plain blockquote: no block tool owns it, flatten to a paragraph.
	s.addWarning(
		blocktool.WarningDroppedFeature,
		"paragraph",
		"blockquote without callout marker flattened to paragraph",
	)
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if content := s.inlineHTML(p); content != "" {
			parts = append(parts, content)
		}
	}
	return s.paragraphBlock(strings.Join(parts, "<br>"))
}

// blockquoteParagraphs returns the blockquote's paragraph-like children.
func (s *importState) blockquoteParagraphs(node *ast.Blockquote) []ast.Node {
	var paragraphs []ast.Node
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			paragraphs = append(paragraphs, child)
		default:
			s.addWarning(
				blocktool.WarningDroppedFeature,
				child.Kind().String(),
				fmt.Sprintf("%s inside callout flattened to text", child.Kind()),
			)
			paragraphs = append(paragraphs, child)
		}
	}
	return paragraphs
}

// calloutMatch carries a detected callout marker: its label, an optional
// title embedded in the label, and the first inline node of the content
// that follows the marker.
type calloutMatch struct {
	label      string
	labelTitle string
	start      ast.Node
	trimColon  bool
}

// detectCallout inspects the first paragraph of a blockquote. Detection
// matches against the paragraph's plain text, so the inline parser's
// splitting of the label across text nodes does not matter.
func (s *importState) detectCallout(paragraph ast.Node) (calloutMatch, bool) {
	detection := s.config.CalloutDetection
	if detection == DetectNone || paragraph.FirstChild() == nil {
		return calloutMatch{}, false
	}

	if detection == DetectGitHub || detection == DetectAll {
		raw := strings.TrimSpace(s.plainText(paragraph))
		if match := calloutLabelPattern.FindStringSubmatch(raw); match != nil {
			return calloutMatch{
				label:      match[1],
				labelTitle: strings.TrimSpace(match[2]),
				start:      s.skipFirstLine(paragraph),
			}, true
		}
	}

	if detection == DetectBold || detection == DetectAll {
		first := paragraph.FirstChild()
		if emphasis, ok := first.(*ast.Emphasis); ok && emphasis.Level >= 2 {
			label := strings.TrimSpace(s.plainText(emphasis))
			if s.isKnownLabel(label) {
				if next, ok := s.consumeLabelColon(first.NextSibling()); ok {
					return calloutMatch{label: label, start: next, trimColon: true}, true
				}
			}
		}
	}

	return calloutMatch{}, false
}

// skipFirstLine returns the first inline node after the paragraph's first
// line break, or nil when the paragraph is a single line.
func (s *importState) skipFirstLine(paragraph ast.Node) ast.Node {
	for child := paragraph.FirstChild(); child != nil; child = child.NextSibling() {
		if text, ok := child.(*ast.Text); ok && (text.SoftLineBreak() || text.HardLineBreak()) {
			return child.NextSibling()
		}
	}
	return nil
}

// isKnownLabel restricts bold detection to labels a block tool can own,
// so ordinary bold text never turns into a callout.
func (s *importState) isKnownLabel(label string) bool {
	lower := strings.ToLower(label)
	if lower == "warning" || lower == "success" {
		return true
	}
	_, ok := s.alertTypes[lower]
	return ok
}

// consumeLabelColon requires the ": " separator after a bold label and
// returns the node holding the remaining text.
func (s *importState) consumeLabelColon(node ast.Node) (ast.Node, bool) {
	textNode, ok := node.(*ast.Text)
	if !ok {
		return nil, false
	}
	value := string(textNode.Value(s.source))
	if !strings.HasPrefix(value, ":") {
		return nil, false
	}
	// The colon is part of the text node; the caller trims it from the
	// rendered message.
	return node, true
}

func (s *importState) calloutBlock(match calloutMatch, rest []ast.Node) (blocktool.Block, bool, error) {
	blockType, alertType := blockTypeForLabel(match.label)
	start := match.start

	title := match.labelTitle
	if blockType != "alert" && title == "" {
		if emphasis, ok := start.(*ast.Emphasis); ok && emphasis.Level >= 2 {
			title = s.inlineHTML(emphasis)
			start = start.NextSibling()
		}
	}

	firstLine := s.inlineHTMLFrom(start)
	if match.trimColon {
		firstLine = strings.TrimSpace(strings.TrimPrefix(firstLine, ":"))
	}

	parts := make([]string, 0, len(rest)+1)
	if firstLine != "" {
		parts = append(parts, firstLine)
	}
	for _, p := range rest {
		if content := s.inlineHTML(p); content != "" {
			parts = append(parts, content)
		}
	}
	message := strings.Join(parts, "<br>")

	var (
		block blocktool.Block
		err   error
	)
	if blockType == "alert" {
		if match.labelTitle != "" {
			s.addWarning(
				blocktool.WarningDroppedFeature,
				"alert",
				"alert blocks carry no title, label title dropped",
			)
		}
		if _, ok := s.alertTypes[alertType]; !ok {
			s.addWarning(
				blocktool.WarningUnknownType,
				"alert",
				fmt.Sprintf("unrecognized callout label %q, using default type", match.label),
			)
			alertType = s.config.DefaultAlertType
		}
		block, err = blocktool.NewBlock("alert", blocktool.TypedData{Type: alertType, Message: message})
	} else {
		block, err = blocktool.NewBlock(blockType, blocktool.SimpleData{Title: title, Message: message})
	}
	if err != nil {
		return blocktool.Block{}, false, err
	}
	return block, true, nil
}

// blockTypeForLabel maps a callout label to the owning block type; labels
// without a dedicated tool become typed alerts.
func blockTypeForLabel(label string) (string, string) {
	switch strings.ToUpper(label) {
	case "WARNING":
		return "warning", ""
	case "SUCCESS":
		return "success", ""
	default:
		return "alert", strings.ToLower(label)
	}
}
