package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/safing/xerand/config"
	"github.com/safing/xerand/info"
	"github.com/safing/xerand/log"
	"github.com/safing/xerand/rng"
)

type mainFlags struct {
	ConfigFile string
	LogLevel   string
	Metrics    bool
	LogColor   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command line with the given arguments. Generated data goes to stdout, everything else to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	info.Set("xerand", "0.1.0", "AGPL")

	flagMain := &mainFlags{}
	cmdMain := newMainCommand(flagMain)
	cmdMain.SetArgs(args)
	cmdMain.SetOut(stdout)
	cmdMain.SetErr(stderr)

	defer func() {
		if flagMain.Metrics {
			rng.WriteMetrics(stderr)
		}
		log.Shutdown()
	}()

	return cmdMain.Execute()
}

func newMainCommand(flagMain *mainFlags) *cobra.Command {
	cmdMain := &cobra.Command{
		Use:           "xerand",
		Short:         "Reproducible random bit streams from hash chains, combined with XOR",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(flagMain, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}

	cmdMain.PersistentFlags().StringVarP(&flagMain.ConfigFile, "config", "c", "", "JSON config file to load")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log", "", "set log level to [trace|debug|info|warning|error|critical]")
	cmdMain.PersistentFlags().BoolVar(&flagMain.LogColor, "log-color", false, "color log lines by severity")
	cmdMain.PersistentFlags().BoolVar(&flagMain.Metrics, "metrics", false, "print generator metrics to stderr when done")

	cmdMain.AddCommand(
		newStreamCommand(),
		newSampleCommand(),
		newCheckCommand(),
		newAlgorithmsCommand(),
		newVersionCommand(),
		newConfigCommand(),
	)
	return cmdMain
}

func setup(flagMain *mainFlags, stderr io.Writer) error {
	if err := registerOptions(); err != nil {
		return err
	}

	if flagMain.ConfigFile != "" {
		if err := config.LoadConfig(flagMain.ConfigFile); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	levelName := flagMain.LogLevel
	if levelName == "" {
		levelName = cfgLogLevel()
	}
	level := log.ParseLevel(levelName)
	if level == 0 {
		return fmt.Errorf("invalid log level %q", levelName)
	}
	log.SetLogLevel(level)
	log.SetOutput(stderr)
	log.SetColor(flagMain.LogColor)

	return log.Start()
}
