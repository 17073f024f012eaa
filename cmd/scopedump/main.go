package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/funvibe/receivers/internal/config"
	"github.com/funvibe/receivers/internal/modules"
	"github.com/funvibe/receivers/internal/scopes"
	"github.com/funvibe/receivers/internal/symbols"
)

var (
	flagModule string
	flagConfig string
	flagColor  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "scopedump",
	Short:         "Inspect receiver scopes of a declaration module",
	Long:          "Loads class declarations from YAML and prints the members visible through class qualifiers, implicit receivers and companion objects.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagModule, "module", "m", "", "declaration file or directory (required)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "options file (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "override color mode: auto|always|never")
	_ = rootCmd.MarkPersistentFlagRequired("module")

	rootCmd.AddCommand(qualifierCmd)
	rootCmd.AddCommand(companionsCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(allCmd)
}

// env is what every subcommand works against.
type env struct {
	opts         *config.Options
	logger       *slog.Logger
	module       *modules.Module
	scopeSession *scopes.ScopeSession
	out          *printer
}

func setup(cmd *cobra.Command) (*env, error) {
	opts := config.DefaultOptions()
	if flagConfig != "" {
		loaded, err := config.LoadOptions(flagConfig)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}
	if flagColor != "" {
		opts.Color = flagColor
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	level, _ := config.ParseLevel(opts.LogLevel)
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	mod, err := modules.NewLoader(modules.WithLoaderLogger(logger)).Load(flagModule)
	if err != nil {
		return nil, err
	}
	return &env{
		opts:         opts,
		logger:       logger,
		module:       mod,
		scopeSession: scopes.NewScopeSession(scopes.WithScopeLogger(logger)),
		out:          newPrinter(cmd.OutOrStdout(), useColor(opts.Color, cmd.OutOrStdout())),
	}, nil
}

// useColor resolves the color mode; auto colors only a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (e *env) class(name string) (*symbols.ClassSymbol, error) {
	class, ok := e.module.Class(name)
	if !ok {
		return nil, fmt.Errorf("class %s is not declared in module %s", name, e.module.Name)
	}
	return class, nil
}

func (e *env) finish() {
	if e.opts.Metrics {
		e.out.metrics()
	}
}
