package render

import (
	"bytes"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/aiclex/crux-invoice/internal/model"
)

// Verify validates rendered PDF bytes against the PDF specification
func Verify(data []byte) error {
	if len(data) == 0 {
		return model.NewAssemblyError("pdf", "empty pdf output", nil)
	}

	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return model.NewAssemblyError("pdf", "pdf validation failed", err)
	}
	return nil
}

// VerifyFile validates a PDF file on disk
func VerifyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.NewAssemblyError("pdf", "cannot read pdf file", err)
	}
	return Verify(data)
}
