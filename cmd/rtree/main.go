// Command rtree builds R-trees from CSV point files and inspects how their
// nodes split.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crystalix007/quadratic-rtree/rtree"
)

const levelTrace slog.Level = -8

// options are the flags shared by every subcommand.
type options struct {
	minFill    int
	maxFill    int
	dimensions int
	logLevel   string

	logger *slog.Logger
}

func (o *options) config() rtree.Config {
	return rtree.Config{
		MinFill:    o.minFill,
		MaxFill:    o.maxFill,
		Dimensions: o.dimensions,
		Logger:     o.logger,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := rtree.DefaultConfig()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "rtree",
		Short: "Build and inspect quadratic-split R-trees",
		Long: `rtree loads points from CSV (one point per row, one column per axis and an
optional trailing label) into an R-tree and reports how the nodes split.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(opts.logLevel)
			if err != nil {
				return err
			}

			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.minFill, "min-fill", defaults.MinFill, "Minimum entries per non-root node")
	flags.IntVar(&opts.maxFill, "max-fill", defaults.MaxFill, "Maximum entries per node")
	flags.IntVar(&opts.dimensions, "dims", defaults.Dimensions, "Number of coordinate columns per row")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		newBuildCmd(opts),
		newQueryCmd(opts),
		newSplitCmd(opts),
	)

	return rootCmd
}

// parseLevel maps a level name onto a slog level.
func parseLevel(lvl string) (slog.Level, error) {
	switch strings.ToUpper(lvl) {
	case "TRACE":
		return levelTrace, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", lvl)
	}
}
