package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"edease/pkg/assistant"
	"edease/pkg/config"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "edease",
	Short: "An AI-assisted timetable builder for educators",
	Long: `edease builds a weekly timetable from plain-English commands such as
"add Science at 10 AM on Monday" or "add short break at 10 AM everyday",
and exports it to CSV or ICS.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}
		setupLogger()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// setupLogger routes slog to stderr, at debug level with --verbose or LOG_LEVEL
func setupLogger() {
	level := slog.LevelWarn
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := level.UnmarshalText([]byte(lvl)); err != nil {
			level = slog.LevelWarn
		}
	}
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// openSession restores the saved session wired to the configured model
func openSession() (*assistant.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return assistant.Open(cfg.APIKey(), cfg.ModelName())
}
