package mdcallout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editorkit/blocktools/blocktool"
)

func newTestExporter(t testing.TB, cfg ExportConfig) *Exporter {
	t.Helper()

	exporter, err := NewExporter(cfg)
	require.NoError(t, err)

	return exporter
}

func testDocument(blocks ...blocktool.Block) blocktool.Document {
	return blocktool.Document{Blocks: blocks}
}

func rawBlock(blockType, data string) blocktool.Block {
	return blocktool.Block{Type: blockType, Data: json.RawMessage(data)}
}

func TestExportWarningGitHubStyle(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	doc := testDocument(rawBlock("warning", `{"title":"Watch out","message":"The <b>cable</b> is live"}`))

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	want := "> [!WARNING]\n> **Watch out**\n> The **cable** is live\n"
	assert.Equal(t, want, result.Markdown)
	assert.Empty(t, result.Warnings)
}

func TestExportSuccessWithoutTitle(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	doc := testDocument(rawBlock("success", `{"title":"","message":"Deployed"}`))

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "> [!SUCCESS]\n> Deployed\n", result.Markdown)
}

func TestExportAlert(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	doc := testDocument(rawBlock("alert", `{"type":"danger","message":"Do not deploy"}`))

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "> [!DANGER]\n> Do not deploy\n", result.Markdown)
}

func TestExportAlertWithoutTypeFallsBackToInfo(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	doc := testDocument(rawBlock("alert", `{"message":"x"}`))

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "> [!INFO]\n> x\n", result.Markdown)
}

func TestExportParagraphAndInlineMarkup(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	doc := testDocument(rawBlock("paragraph", `{"text":"see <a href=\"https://example.com\">docs</a> and <code>go vet</code>"}`))

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "see [docs](https://example.com) and `go vet`\n", result.Markdown)
}

func TestExportHardBreakBecomesBackslash(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	doc := testDocument(rawBlock("warning", `{"title":"","message":"first<br>second"}`))

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "> [!WARNING]\n> first\\\n> second\n", result.Markdown)
}

func TestExportBoldStyleDropsTitle(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{CalloutStyle: CalloutBold})
	doc := testDocument(rawBlock("warning", `{"title":"T","message":"m"}`))

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "> **Warning**: m\n", result.Markdown)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, blocktool.WarningDroppedFeature, result.Warnings[0].Type)
}

func TestExportNoneStyleSkipsEmptyBlocks(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{CalloutStyle: CalloutNone})
	doc := testDocument(
		rawBlock("warning", `{"title":"","message":""}`),
		rawBlock("alert", `{"type":"info","message":"still here"}`),
	)

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "> still here\n", result.Markdown)
}

func TestExportUnknownBlockSkippedWithWarning(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	doc := testDocument(
		rawBlock("table", `{"rows":[]}`),
		rawBlock("warning", `{"title":"","message":"kept"}`),
	)

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "> [!WARNING]\n> kept\n", result.Markdown)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, blocktool.WarningUnknownBlock, result.Warnings[0].Type)
	assert.Equal(t, "table", result.Warnings[0].Block)
}

func TestExportMalformedPayloadDegrades(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	doc := testDocument(rawBlock("warning", `{"title":`))

	result, err := exporter.Convert(doc)
	require.NoError(t, err)

	assert.Equal(t, "> [!WARNING]\n", result.Markdown)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, blocktool.WarningMalformedData, result.Warnings[0].Type)
}

func TestExportEmptyDocument(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})

	result, err := exporter.Convert(blocktool.Document{})
	require.NoError(t, err)

	assert.Equal(t, "", result.Markdown)
}

func TestExportConfigValidate(t *testing.T) {
	_, err := NewExporter(ExportConfig{CalloutStyle: "fancy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid calloutStyle "fancy"`)
}

func TestHTMLToMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "plain", want: "plain"},
		{name: "bold", input: "<b>x</b>", want: "**x**"},
		{name: "strong", input: "<strong>x</strong>", want: "**x**"},
		{name: "italic", input: "a <i>b</i>", want: "a *b*"},
		{name: "code", input: "<code>go</code>", want: "`go`"},
		{name: "strike", input: "<s>gone</s>", want: "~~gone~~"},
		{name: "link", input: `<a href="https://x.test">t</a>`, want: "[t](https://x.test)"},
		{name: "link without href", input: "<a>t</a>", want: "[t]()"},
		{name: "unknown tag dropped", input: "<mark>kept</mark>", want: "kept"},
		{name: "nested", input: "<b>a <i>b</i></b>", want: "**a *b***"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, htmlToMarkdown(tc.input))
		})
	}
}
