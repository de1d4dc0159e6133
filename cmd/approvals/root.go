package main

import (
	"context"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/five82/approvals/internal/app"
	"github.com/five82/approvals/internal/config"
	"github.com/five82/approvals/internal/notify"
	"github.com/five82/approvals/internal/sessions"
	"github.com/five82/approvals/internal/state"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	sourceFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var (
		flags     globalFlags
		prefsPath string
		poll      int
	)

	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "Browse access-request sessions",
		Long: "approvals lists access-request sessions from the sessions API (or a JSON file)\n" +
			"and lets you filter, sort, page through, inspect and export them.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:  flags.configPath,
				PrefsPath:   prefsPath,
				SourceFile:  flags.sourceFile,
				PollSeconds: poll,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file path (default ~/.config/approvals/config.toml)")
	pf.StringVar(&flags.sourceFile, "source", "", "read requests from a JSON file instead of the API")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log refresh details to stderr")

	cmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file path (default ~/.config/approvals/prefs.toml)")
	cmd.Flags().IntVar(&poll, "poll", 0, "refresh every N seconds (0 disables)")

	cmd.AddCommand(newListCmd(&flags), newExportCmd(&flags))
	return cmd
}

// headless bundles what the non-interactive subcommands need.
type headless struct {
	cfg    config.Config
	store  *state.Store
	logger *log.Logger
}

// loadHeadless reads config, fetches the records once and returns them
// normalized.
func loadHeadless(ctx context.Context, flags *globalFlags, stderr io.Writer) (headless, error) {
	cfg, err := app.LoadConfig(app.Options{ConfigPath: flags.configPath, SourceFile: flags.sourceFile})
	if err != nil {
		return headless{}, err
	}
	repo, err := app.NewRepository(cfg)
	if err != nil {
		return headless{}, err
	}

	logger := log.New(stderr, "approvals: ", 0)
	refresher := &app.Refresher{Repo: repo, Store: &state.Store{}}
	if flags.verbose {
		refresher.Logger = logger
	}
	if _, err := refresher.Refresh(ctx); err != nil {
		return headless{}, err
	}
	return headless{cfg: cfg, store: refresher.Store, logger: logger}, nil
}

func (h headless) records() []sessions.Record {
	return h.store.Snapshot().Records
}

func (h headless) sink() notify.Sink {
	return notify.LogSink{Logger: h.logger}
}
