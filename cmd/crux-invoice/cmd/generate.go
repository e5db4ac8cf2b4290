package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aiclex/crux-invoice/internal/assemble"
	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/registry"
	"github.com/aiclex/crux-invoice/internal/render"
)

var (
	outputFile     string
	supportingFile string
	clientsFile    string
	seedDefaults   bool
	verifyPDF      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [request.json]",
	Short: "Assemble an invoice from a request file",
	Long: `Assemble an invoice document from a JSON request, read from the
given file or from stdin when the argument is "-".

The request names the client, the line items and any advance received.
When a client directory is supplied with --clients and the request
carries only a client name, the party details and default items come
from the directory record.

Examples:
  crux-invoice generate request.json
  crux-invoice generate request.json -f table
  crux-invoice generate request.json -f pdf -o invoice.pdf --verify
  crux-invoice generate request.json --supporting candidates.csv -f pdf
  cat request.json | crux-invoice generate -`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout, or <number>.pdf for -f pdf)")
	generateCmd.Flags().StringVar(&supportingFile, "supporting", "", "CSV file rendered as appendix pages")
	generateCmd.Flags().StringVar(&clientsFile, "clients", "", "Client directory CSV file")
	generateCmd.Flags().BoolVar(&seedDefaults, "seed-defaults", false, "Fill missing items from the standard catalog")
	generateCmd.Flags().BoolVar(&verifyPDF, "verify", false, "Validate the generated PDF")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := readRequest(args[0])
	if err != nil {
		return err
	}

	if clientsFile != "" {
		dir, err := registry.LoadCSV(clientsFile)
		if err != nil {
			return err
		}
		if known, ok := dir.Lookup(req.Client.Name); ok {
			printVerbose("Client %q found in directory\n", known.Name)
			if req.Client.GSTIN == "" && req.Client.Address == "" {
				req.Client = known.Party()
			}
			if len(req.Items) == 0 {
				req.Items = known.Rows()
			}
		}
	}

	if seedDefaults && len(req.Items) == 0 {
		req.Items = registry.DefaultRows()
	}

	if supportingFile != "" {
		ds, err := readSupporting(supportingFile)
		if err != nil {
			return err
		}
		req.Supporting = ds
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := assemble.New(cfg.Company).Assemble(req)
	if err != nil {
		return err
	}

	printVerbose("Assembled %d sections, regime %s\n", len(doc.Sections), doc.Tax.Regime)

	switch strings.ToLower(outputFormat) {
	case "json":
		return writeJSON(doc)
	case "table":
		return writeTable(doc)
	case "pdf":
		return writePDF(doc)
	default:
		return fmt.Errorf("unsupported output format %q (json, table, pdf)", outputFormat)
	}
}

func readRequest(path string) (model.InvoiceRequest, error) {
	var req model.InvoiceRequest

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return req, fmt.Errorf("cannot read request: %w", err)
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("cannot parse request: %w", err)
	}
	return req, nil
}

// readSupporting loads an appendix dataset from CSV. The first row is
// the column header.
func readSupporting(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read supporting file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse supporting file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("supporting file %s is empty", path)
	}

	return &model.Dataset{Columns: records[0], Rows: records[1:]}, nil
}

func outputWriter() (io.WriteCloser, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	return os.Create(outputFile)
}

func writeJSON(doc *model.Document) error {
	w, err := outputWriter()
	if err != nil {
		return err
	}
	if w != os.Stdout {
		defer w.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeTable(doc *model.Document) error {
	w, err := outputWriter()
	if err != nil {
		return err
	}
	if w != os.Stdout {
		defer w.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, section := range doc.Sections {
		switch section.Kind {
		case model.SectionTitle, model.SectionWords:
			for _, line := range section.Lines {
				fmt.Fprintln(tw, line)
			}
		case model.SectionItems:
			fmt.Fprintln(tw, strings.Join(section.Table.Columns, "\t"))
			for _, row := range section.Table.Rows {
				fmt.Fprintln(tw, strings.Join(row, "\t"))
			}
		case model.SectionTotals:
			for _, line := range section.Totals {
				fmt.Fprintf(tw, "%s\t%s\n", line.Label, line.Amount)
			}
		}
	}

	return tw.Flush()
}

func writePDF(doc *model.Document) error {
	pdf, err := render.New().Render(doc)
	if err != nil {
		return err
	}

	if verifyPDF {
		if err := render.Verify(pdf); err != nil {
			return err
		}
		printVerbose("PDF validated\n")
	}

	path := outputFile
	if path == "" {
		path = doc.Number + ".pdf"
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d bytes)\n", path, len(pdf))
	return nil
}
