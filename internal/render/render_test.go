package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiclex/crux-invoice/internal/assemble"
	"github.com/aiclex/crux-invoice/internal/config"
	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/registry"
	"github.com/aiclex/crux-invoice/internal/render"
)

func sampleDocument(t *testing.T) *model.Document {
	t.Helper()

	assembler := assemble.New(config.Default().Company)
	doc, err := assembler.Assemble(model.InvoiceRequest{
		Number: "INV-2026-042",
		Date:   "18-01-2026",
		Client: model.Party{
			Name:    "ACME SKILLING PVT LTD",
			GSTIN:   "27AABCU9603R1ZM",
			Address: "Plot 12, Andheri East, Mumbai - 400069, Maharashtra",
		},
		Items: registry.DefaultRows(),
		Supporting: &model.Dataset{
			Columns: []string{"Candidate", "Score", "Result"},
			Rows:    [][]string{{"A Kumar", "78", "PASS"}, {"B Rao", "41", "FAIL"}},
		},
	})
	require.NoError(t, err)
	return doc
}

func TestRender_ProducesPDF(t *testing.T) {
	out, err := render.New().Render(sampleDocument(t))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF-", string(out[:5]))
}

func TestRender_NilDocument(t *testing.T) {
	_, err := render.New().Render(nil)
	require.Error(t, err)
}

func TestVerify_AcceptsRenderedOutput(t *testing.T) {
	out, err := render.New().Render(sampleDocument(t))
	require.NoError(t, err)
	require.NoError(t, render.Verify(out))
}

func TestVerify_RejectsGarbage(t *testing.T) {
	assert.Error(t, render.Verify(nil))
	assert.Error(t, render.Verify([]byte("not a pdf")))
}
