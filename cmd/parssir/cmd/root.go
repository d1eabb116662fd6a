package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SatinWukerORIG/parssir"
	"github.com/SatinWukerORIG/parssir/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "parssir",
	Short: "Parssir - infix expression parser",
	Long: `Parssir converts infix arithmetic expressions into binary
expression trees that encode operator precedence and associativity,
without evaluating them.

Commands:
  parse    - parse an expression and print its tree
  tokens   - dump the classified token stream of an expression
  version  - show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}

// buildEngine assembles an engine from the optional config file and the
// global flags
func buildEngine() (*parssir.Engine, error) {
	var opts parssir.Options
	logLevel := ""

	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		opts = cfg.Options()
		logLevel = cfg.LogLevel
	}

	logger, err := buildLogger(logLevel)
	if err != nil {
		return nil, err
	}
	opts.Logger = logger

	return parssir.NewEngine(opts)
}

// buildLogger creates the CLI logger. --verbose wins over the config
// file level; without either the engine stays quiet.
func buildLogger(level string) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	if strings.TrimSpace(level) == "" {
		return zap.NewNop(), nil
	}

	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = parsed
	return cfg.Build()
}
