package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coregx/minire"
	"github.com/coregx/minire/internal/grep"
)

type grepOptions struct {
	recursive    bool
	onlyMatching bool
	lineNumbers  bool
	count        bool
	color        bool
	json         bool
	strict       bool
	noPrefilter  bool
	jobs         int
}

func (o *grepOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&o.recursive, "recursive", "r", false, "Search directories recursively")
	f.BoolVarP(&o.onlyMatching, "only-matching", "o", false, "Print only the matched parts of a line")
	f.BoolVarP(&o.lineNumbers, "line-number", "n", false, "Prefix each line with its line number")
	f.BoolVarP(&o.count, "count", "c", false, "Print the number of matching lines per input")
	f.BoolVar(&o.color, "color", false, "Highlight matches")
	f.BoolVar(&o.json, "json", false, "Print matches as JSON, one object per line")
	f.BoolVar(&o.strict, "strict", false, "Reject unterminated '[' and '('")
	f.BoolVar(&o.noPrefilter, "no-prefilter", false, "Disable literal prefiltering")
	f.IntVarP(&o.jobs, "jobs", "j", 0, "Number of files searched concurrently (default from config, else GOMAXPROCS)")
}

// merge overrides config with the flags set on the command line.
func (o *grepOptions) merge(cmd *cobra.Command, config grep.Config) grep.Config {
	f := cmd.Flags()
	if f.Changed("color") {
		config.Color = o.color
	}
	if f.Changed("json") {
		config.JSON = o.json
	}
	if f.Changed("line-number") {
		config.LineNumbers = o.lineNumbers
	}
	if f.Changed("strict") {
		config.Strict = o.strict
	}
	if f.Changed("no-prefilter") {
		config.Prefilter = !o.noPrefilter
	}
	if f.Changed("jobs") {
		config.Jobs = o.jobs
	}
	return config
}

func loadConfig(cfgFile string) (grep.Config, error) {
	if cfgFile == "" {
		return grep.LoadConfig(grep.DefaultConfigFile, true)
	}
	return grep.LoadConfig(cfgFile, false)
}

func runGrep(cmd *cobra.Command, args []string, flags *grepOptions, g *globalOptions) error {
	config, err := loadConfig(g.cfgFile)
	if err != nil {
		return err
	}
	config = flags.merge(cmd, config)
	if config.Jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", config.Jobs)
	}

	pattern := args[0]
	re, err := minire.CompileWithConfig(pattern, config.RegexConfig())
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	g.logger.Debug("compiled pattern",
		zap.String("pattern", pattern),
		zap.Stringer("strategy", re.Strategy()))

	searcher := grep.New(re, grep.Options{
		Recursive:    flags.recursive,
		OnlyMatching: flags.onlyMatching,
		LineNumbers:  config.LineNumbers,
		CountOnly:    flags.count,
		Color:        config.Color,
		JSON:         config.JSON,
		Jobs:         config.Jobs,
	}, g.logger)

	summary, err := searcher.Run(cmd.Context(), args[1:], cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if !summary.Matched() {
		return ErrNoMatch
	}
	return nil
}
