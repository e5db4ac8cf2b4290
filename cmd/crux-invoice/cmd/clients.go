package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aiclex/crux-invoice/internal/registry"
	"github.com/aiclex/crux-invoice/internal/tax"
)

var clientsCmd = &cobra.Command{
	Use:   "clients <file.csv>",
	Short: "List the clients in a directory file",
	Long: `Read a client directory CSV file and list its records with the
jurisdiction code derived from each GSTIN. Loading doubles as a
validation pass: malformed files are reported with their line number.

Examples:
  crux-invoice clients clients.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runClients,
}

func init() {
	rootCmd.AddCommand(clientsCmd)
}

func runClients(cmd *cobra.Command, args []string) error {
	dir, err := registry.LoadCSV(args[0])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGSTIN\tSTATE\tEMAIL")

	for _, name := range dir.Names() {
		c, _ := dir.Lookup(name)
		state := tax.StateCode(c.GSTIN)
		if state == "" {
			state = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c.GSTIN, state, c.Email)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d clients\n", dir.Len())
	return nil
}
