package cmd

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/constbot/internal/query"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <query...>",
	Short: "Answer a single query and exit",
	Long: `Load the document, answer one query and print the result to standard output.
All arguments are joined with spaces into the query, e.g.

  constbot ask Article 21A`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, store, err := setup(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), query.Answer(strings.Join(args, " "), store))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
