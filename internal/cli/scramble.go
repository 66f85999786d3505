package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"limpet/internal/scramble"
)

func newScrambleCommand() *cobra.Command {
	var (
		output string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "scramble INPUT...",
		Short: "Shuffle records from multiple inputs into one FASTA",
		Long: `Read one or more FASTA/FASTQ files (plain or .gz), load every record
into memory, shuffle the global order, and write a single FASTA. Each
output header begins with a new sequential accession (scramble_00001),
followed by src=<original accession> and file=<source file>, and finally
the original header text.

The whole input set is held in memory; for very large datasets consider
running in batches.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := newRNG(cmd.Flags().Changed("seed"), seed)

			wrote, err := scramble.Run(args, output, rng)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d sequences to %s\n", wrote, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output FASTA path (gzipped if it ends with .gz)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed for reproducibility")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
