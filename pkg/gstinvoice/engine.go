package gstinvoice

import (
	"github.com/aiclex/crux-invoice/internal/assemble"
	"github.com/aiclex/crux-invoice/internal/config"
	"github.com/aiclex/crux-invoice/internal/render"
	"github.com/aiclex/crux-invoice/internal/words"
)

// Engine assembles and renders invoices for one seller profile
type Engine struct {
	assembler *assemble.Assembler
	renderer  *render.Renderer
}

// NewEngine creates an engine. A nil config uses the built-in seller
// profile.
func NewEngine(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{
		assembler: assemble.New(cfg.Company),
		renderer:  render.New(),
	}
}

// Assemble builds the printable document for a request
func (e *Engine) Assemble(req InvoiceRequest) (*Document, error) {
	return e.assembler.Assemble(req)
}

// Render draws an assembled document as PDF bytes
func (e *Engine) Render(doc *Document) ([]byte, error) {
	return e.renderer.Render(doc)
}

// RenderRequest assembles and renders in one step
func (e *Engine) RenderRequest(req InvoiceRequest) ([]byte, error) {
	doc, err := e.assembler.Assemble(req)
	if err != nil {
		return nil, err
	}
	return e.renderer.Render(doc)
}

// Verify validates rendered PDF bytes
func (e *Engine) Verify(pdf []byte) error {
	return render.Verify(pdf)
}

// AmountInWords spells a rupee amount out in words
func AmountInWords(amount string) string {
	return words.FromString(amount)
}

// LoadConfig reads a seller configuration file; an empty path falls
// back to the default search locations.
func LoadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}
