// Package cmd implements the minigrep command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes, as in grep.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// ErrNoMatch is returned by the search command when no line matched.
var ErrNoMatch = errors.New("no lines matched")

// globalOptions holds the flags shared by every subcommand.
type globalOptions struct {
	cfgFile string
	verbose bool

	logger *zap.Logger
}

func newRootCmd(g *globalOptions) *cobra.Command {
	flags := &grepOptions{}

	rootCmd := &cobra.Command{
		Use:   "minigrep [flags] PATTERN [PATH...]",
		Short: "minigrep - print lines matching a greedy pattern",
		Long: `minigrep searches standard input or the given files for lines matching
PATTERN. Repetitions are greedy and never give characters back, so a.*b does
not match "axxb". Files ending in .zst or .gz are decompressed.

A pattern that is also a subcommand name is searched for after "--":
  minigrep -- init notes.txt`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			g.logger = newLogger(cmd.ErrOrStderr(), g.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrep(cmd, args, flags, g)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.cfgFile, "config", "", "Config file (default .minigrep.yaml when present)")
	rootCmd.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "Enable debug logging")
	flags.register(rootCmd)

	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newInitCmd(g))

	return rootCmd
}

// newLogger logs warnings as JSON, or everything in console format when
// verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	level := zap.WarnLevel
	if verbose {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
		level = zap.DebugLevel
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

// Run executes the command line in args and returns the exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	g := &globalOptions{}
	rootCmd := newRootCmd(g)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if g.logger != nil {
		_ = g.logger.Sync()
	}

	switch {
	case err == nil:
		return ExitMatch
	case errors.Is(err, ErrNoMatch):
		return ExitNoMatch
	default:
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return ExitError
	}
}
