package cmd

import (
	"bufio"
	"strings"

	"github.com/itsmostafa/constbot/internal/query"
	"github.com/itsmostafa/constbot/internal/render"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Answer queries interactively",
	Long:  `Load the document once, then answer queries read line by line from standard input until "exit", "quit" or end of input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, store, err := setup(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		resolver := query.NewResolver(store)
		render.FormatHeader(out, cfg.Document.Path, store.Len())

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			render.FormatPrompt(out)
			if !scanner.Scan() {
				break
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			render.FormatAnswer(out, resolver.Answer(line))
		}

		render.FormatGoodbye(out)
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
