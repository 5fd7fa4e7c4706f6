package main

import (
	"io"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"
)

const (
	serviceName = "floatkeys"

	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagTrials    = "trials"
	flagSamples   = "samples"
	flagSeed      = "seed"
	flagFullRange = "full-range"
)

type app struct {
	cfg        Config
	configPath string
	log        logger.Logger
	logStarted bool
}

// setup merges the config file under any flag reported by changed and starts
// the logger.
func (a *app) setup(changed func(name string) bool) error {
	if a.configPath != "" {
		if err := applyConfigFile(a.configPath, &a.cfg, changed); err != nil {
			return err
		}
	}
	logger.New(a.cfg.LogLevel)
	a.logStarted = true
	a.log = logger.Sugar.WithServiceName(serviceName)
	return nil
}

// close flushes the logger. It is a no-op if setup never got that far.
func (a *app) close() {
	if !a.logStarted {
		return
	}
	logger.OnExit()
	a.logStarted = false
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "floatkeys",
		Short:        "Order preserving float64 keys",
		Long:         `floatkeys encodes float64 values as 8 byte keys whose byte order matches numeric order`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// encode reads its own flags so that negative values parse.
			if cmd.DisableFlagParsing {
				return nil
			}
			return a.setup(cmd.Flags().Changed)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, flagConfig, "", "TOML file with defaults for the flags below.")
	rootCmd.PersistentFlags().StringVar(&a.cfg.LogLevel, flagLogLevel, defaultLogLevel, "Log level (DEBUG, INFO, NOOP, ...).")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDemoCmd(a),
		newCheckCmd(a),
	)
	return rootCmd
}

// run executes the command line in args and releases the logger on every
// exit path.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{cfg: DefaultConfig()}
	defer a.close()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
