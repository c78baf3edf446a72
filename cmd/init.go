package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coregx/minire/internal/grep"
)

// newInitCmd: minigrep init
func newInitCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := g.cfgFile
			if path == "" {
				path = grep.DefaultConfigFile
			}
			if err := grep.WriteConfig(path, grep.DefaultConfig()); err != nil {
				g.logger.Error("Error initializing config file", zap.String("path", path), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
			return nil
		},
	}
}
