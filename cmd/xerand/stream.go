package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/safing/xerand/log"
	"github.com/safing/xerand/rng"
)

const streamBlockSize = 4096

func newStreamCommand() *cobra.Command {
	var (
		sf       sourceFlags
		size     int64
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Write raw random bytes to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("%w: --bytes must not be negative", rng.ErrInvalidArgument)
			}
			src, err := sf.build()
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			written, err := copyBlocks(out, rng.NewReader(src), size, func() {
				if progress {
					fmt.Fprint(cmd.ErrOrStderr(), ".")
				}
			})
			if progress {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return err
			}

			log.Infof("xerand: streamed %d bytes", written)
			return nil
		},
	}

	sf.register(cmd)
	cmd.Flags().Int64VarP(&size, "bytes", "n", 1<<20, "number of bytes to write")
	cmd.Flags().BoolVar(&progress, "progress", false, "print a dot to stderr for every block written")
	return cmd
}

// copyBlocks copies size bytes from r to w in blocks, calling tick after each block.
func copyBlocks(w io.Writer, r io.Reader, size int64, tick func()) (int64, error) {
	var written int64
	for written < size {
		block := int64(streamBlockSize)
		if size-written < block {
			block = size - written
		}
		n, err := io.CopyN(w, r, block)
		written += n
		if err != nil {
			return written, err
		}
		tick()
	}
	return written, nil
}
