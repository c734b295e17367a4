package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/dicekeys/internal/config"
	"github.com/katalvlaran/dicekeys/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by sub-commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	output     string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "dicekeys",
		Short: "Inspect DiceKey grids: validate, canonicalise, identify, encode, compare",
		Long: `dicekeys works on the 75-character text form of a DiceKey (letter, digit and
orientation for each of the 25 dice in row-major order). The 50-character form
without orientations is accepted where orientation is not needed.

Nothing is read from or written to disk except the optional --config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text or json (overrides config)")

	root.AddCommand(
		a.validateCmd(),
		a.showCmd(),
		a.canonicalCmd(),
		a.idCmd(),
		a.numberCmd(),
		a.fromNumberCmd(),
		a.compareCmd(),
		a.randomCmd(),
	)

	return root
}

// setup resolves configuration and the logger once flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("configuration loaded",
		zap.String("output", cfg.Output),
		zap.Int("workers", cfg.Workers))

	return nil
}

// emit writes v as JSON or calls text for the text form.
func (a *app) emit(cmd *cobra.Command, v any, text func()) error {
	if a.cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}

		return nil
	}
	text()

	return nil
}
