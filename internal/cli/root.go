package cli

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kamar-Folarin/github-analyzer/internal/db"
	apperrors "github.com/Kamar-Folarin/github-analyzer/internal/errors"
	"github.com/Kamar-Folarin/github-analyzer/internal/history"
)

// Version is set at build time
var Version = "dev"

type app struct {
	v        *viper.Viper
	cfgFile  string
	verbose  bool
	noColor  bool
	settings *Settings
	logger   *logrus.Logger
	printer  *Printer
}

// NewRootCommand builds the analyzer command tree
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "analyzer",
		Short: "Analyze the public activity of a GitHub user",
		Long: `analyzer fetches a GitHub user's profile and public repositories,
summarizes stars, forks and languages, and charts daily commit activity
of the most recently pushed repositories.

Configuration is read from .analyzer.yaml, ANALYZER_* environment
variables and flags, in increasing order of precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.analyzer.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.String("api-url", "", "GitHub API base URL")
	flags.String("history-backend", "", "recent-search storage: postgres, redis or none")

	_ = a.v.BindPFlag("github.api_base_url", flags.Lookup("api-url"))
	_ = a.v.BindPFlag("history.backend", flags.Lookup("history-backend"))

	rootCmd.AddCommand(newSearchCommand(a))
	rootCmd.AddCommand(newHistoryCommand(a))

	return rootCmd
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		NewPrinter(os.Stdout, os.Stderr, true).Error("%s", apperrors.MessageOf(err))
		return 1
	}
	return 0
}

func (a *app) init(cmd *cobra.Command) error {
	settings, err := loadSettings(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings

	a.logger = logrus.New()
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if a.verbose {
		level = logrus.DebugLevel
	}
	a.logger.SetLevel(level)

	a.printer = NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), settings.Output.Colors && !a.noColor)
	return nil
}

// openHistory returns the recent-search list of the configured backend. An
// unreachable backend degrades to an in-memory list.
func (a *app) openHistory(ctx context.Context) (*history.RecentSearches, io.Closer) {
	store, err := db.OpenHistoryStore(ctx, a.settings.History.Backend, db.StoreOptions{
		PostgresURL:     a.settings.History.DatabaseURL,
		RedisURL:        a.settings.History.RedisURL,
		MigrateAttempts: 1,
	})
	if err != nil {
		a.logger.WithError(err).WithField("backend", a.settings.History.Backend).Warn("History backend unavailable")
		a.printer.Warning("Search history is not persisted: %v", err)
		store = nil
	}

	recent := history.NewRecentSearches(store, a.settings.historyConfig(), a.logger)
	_ = recent.Load(ctx)

	if store == nil {
		return recent, nopCloser{}
	}
	return recent, store
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
