package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safing/xerand/log"
	"github.com/safing/xerand/rng"
)

var errCheckFailed = errors.New("uniformity check failed")

func newCheckCommand() *cobra.Command {
	var (
		sf      sourceFlags
		samples int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a chi-squared uniformity check on the generated bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("samples") {
				samples = int(cfgCheckSamples())
			}
			src, err := sf.build()
			if err != nil {
				return err
			}

			report, err := rng.UniformityCheck(src, samples)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)

			if !report.Passed {
				log.Warningf("xerand: %s", report)
				return errCheckFailed
			}
			return nil
		},
	}

	sf.register(cmd)
	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "number of bytes to draw (default from config)")
	return cmd
}
