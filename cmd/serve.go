package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmostafa/constbot/internal/query"
	"github.com/itsmostafa/constbot/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat API over HTTP",
	Long: `Load the document once, then serve POST /chat until interrupted.

The endpoint accepts {"message": "..."} and returns {"response": "..."}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, store, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(query.NewResolver(store), log)
		return srv.ListenAndServe(ctx, cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config, default 127.0.0.1:5000)")
	rootCmd.AddCommand(serveCmd)
}
