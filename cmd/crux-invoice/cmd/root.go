package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiclex/crux-invoice/internal/config"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "crux-invoice",
	Short: "Assemble and render GST tax invoices",
	Long: `Crux Invoice builds printable GST tax invoices from structured
requests: it prices the line items, resolves the CGST/SGST versus IGST
levy from the jurisdiction codes and lays the document out section by
section, ready for PDF output.

Examples:
  # Build a document from a request file
  crux-invoice generate request.json

  # Render a PDF with an appendix from an Excel export
  crux-invoice generate request.json -f pdf --supporting candidates.csv -o invoice.pdf

  # Spell an amount out in words
  crux-invoice words 1817.20

  # List the clients in a directory file
  crux-invoice clients clients.csv`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Seller config file (default: crux-invoice.yaml in ., ./config, /etc/crux-invoice)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table, pdf)")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
