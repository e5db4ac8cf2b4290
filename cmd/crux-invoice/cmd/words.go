package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiclex/crux-invoice/internal/money"
	"github.com/aiclex/crux-invoice/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words <amount>",
	Short: "Spell a rupee amount out in words",
	Long: `Spell a rupee amount out in words using Indian number grouping.

Examples:
  crux-invoice words 1817.20
  crux-invoice words 150000`,
	Args: cobra.ExactArgs(1),
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	amount, err := money.FromString(args[0])
	if err != nil {
		return fmt.Errorf("%q is not a numeric amount", args[0])
	}

	fmt.Println(words.Rupees(amount))
	return nil
}
