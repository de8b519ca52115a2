package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/safing/xerand/crypto/hash"
	"github.com/safing/xerand/info"
)

func newAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported hash algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDIGEST BITS\tSECURITY\t")
			for _, alg := range hash.Algorithms() {
				name := alg.Name()
				if alg == hash.Default {
					name += " (default)"
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t\n", name, alg.DigestBits(), alg.SecurityStrength())
			}
			_ = tw.Flush()
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info.FullVersion())
		},
	}
}
