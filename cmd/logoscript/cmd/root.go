package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/logoscript/internal/config"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:     "logoscript",
	Short:   "A turtle-drawing scripting language interpreter",
	Version: Version,
	Long: `logoscript runs programs in a small Logo-like scripting language:
lexer, recursive-descent parser, and a tree-walking evaluator with
turtle-drawing built-ins.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}
