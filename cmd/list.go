package cmd

import (
	"encoding/json"

	"github.com/itsmostafa/constbot/internal/render"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the extracted articles",
	Long:  `Load the document and print every extracted article number with its heading, in numeric order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, store, err := setup(cmd)
		if err != nil {
			return err
		}

		if listJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(store.Entries())
		}

		render.FormatList(cmd.OutOrStdout(), store.Entries())
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print full article texts as JSON")
	rootCmd.AddCommand(listCmd)
}
