package mdcallout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Export and import are structurally paired: a document built from the
// block tools' payloads survives the trip through GitHub-callout markdown.
func TestGitHubRoundTrip(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	importer := newTestImporter(t, ImportConfig{CalloutDetection: DetectGitHub})

	doc := testDocument(
		rawBlock("warning", `{"title":"Watch out","message":"The <b>cable</b> is live"}`),
		rawBlock("success", `{"title":"","message":"Deployed to production"}`),
		rawBlock("alert", `{"type":"danger","message":"Do <i>not</i> deploy"}`),
		rawBlock("paragraph", `{"text":"ordinary prose"}`),
	)

	exported, err := exporter.Convert(doc)
	require.NoError(t, err)
	require.Empty(t, exported.Warnings)

	imported, err := importer.Convert(exported.Markdown)
	require.NoError(t, err)
	require.Empty(t, imported.Warnings)

	require.Len(t, imported.Document.Blocks, len(doc.Blocks))
	for i, block := range imported.Document.Blocks {
		assert.Equal(t, doc.Blocks[i].Type, block.Type, "block %d type", i)
		assert.JSONEq(t, string(doc.Blocks[i].Data), string(block.Data), "block %d payload", i)
	}
}

// An alert typed "warning" exports to the same callout as a warning block;
// the importer resolves the ambiguity in favor of the dedicated tool. The
// lossiness is deliberate and pinned here.
func TestRoundTripAlertWarningCollapsesToWarningBlock(t *testing.T) {
	exporter := newTestExporter(t, ExportConfig{})
	importer := newTestImporter(t, ImportConfig{})

	doc := testDocument(rawBlock("alert", `{"type":"warning","message":"m"}`))

	exported, err := exporter.Convert(doc)
	require.NoError(t, err)

	imported, err := importer.Convert(exported.Markdown)
	require.NoError(t, err)

	require.Len(t, imported.Document.Blocks, 1)
	assert.Equal(t, "warning", imported.Document.Blocks[0].Type)
}
