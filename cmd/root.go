package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/itsmostafa/constbot/internal/articles"
	"github.com/itsmostafa/constbot/internal/config"
	"github.com/itsmostafa/constbot/internal/logging"
	"github.com/itsmostafa/constbot/internal/pdftext"
	"github.com/itsmostafa/constbot/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFile string
	pdfPath    string
	startPage  int
	backend    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "constbot",
	Short: "Look up articles of the Constitution of India",
	Long: `constbot extracts the numbered articles of the Constitution of India from
its official PDF and answers lookups such as "Article 21" or "21A" with the
article text, verbatim.

Only article numbers are understood; questions about topics are answered
with "The document does not contain this information."`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("constbot %s\n", version.String()))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", os.Getenv("CONSTBOT_CONFIG"), "Path to a YAML config file")
	flags.StringVar(&pdfPath, "pdf", "", "Path to the constitution PDF (overrides config)")
	flags.IntVar(&startPage, "start-page", -1, "Zero-based index of the first page to scan (overrides config)")
	flags.StringVar(&backend, "backend", "", "Text extraction backend: native, pdftotext (overrides config)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration: file and environment first, then
// any flags the user set explicitly. The result is validated once, after all
// overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Read(configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("pdf") {
		cfg.Document.Path = pdfPath
	}
	if flags.Changed("start-page") {
		cfg.Document.StartPage = startPage
	}
	if flags.Changed("backend") {
		cfg.Document.Backend = pdftext.Backend(backend)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	// only serve defines --addr
	if flags.Changed("addr") {
		cfg.Server.Addr = serveAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadStore reads the document named by cfg. Any failure here is fatal for
// the calling command.
func loadStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*articles.Store, error) {
	log.Info().
		Str("path", cfg.Document.Path).
		Str("backend", string(cfg.Document.Backend)).
		Int("start_page", cfg.Document.StartPage).
		Msg("loading document")

	opts := cfg.ExtractOptions()
	opts.Logger = &log

	store, err := articles.LoadArticles(ctx, cfg.Document.Path, cfg.Document.Backend, opts)
	if err != nil {
		return nil, err
	}

	log.Info().Int("articles", store.Len()).Msg("ready")
	return store, nil
}

// setup loads config, builds the logger and loads the store.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, *articles.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	store, err := loadStore(cmd.Context(), cfg, log)
	if err != nil {
		return nil, log, nil, err
	}
	return cfg, log, store, nil
}
