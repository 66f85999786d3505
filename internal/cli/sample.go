package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"limpet/internal/sample"
)

func newSampleCommand() *cobra.Command {
	var (
		input  string
		output string
		n      int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Randomly sample n records from an input, keeping original format",
		Long: `Randomly pick n raw records from a FASTA or FASTQ input (optionally
.gz) using reservoir sampling, and write them unmodified in the same
logical format. Reservoir sampling keeps memory at O(n) and needs only
one pass, so no prior record count is required. If the output path ends
with .gz the output is gzipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("-n must be greater than 0")
			}
			rng := newRNG(cmd.Flags().Changed("seed"), seed)

			kept, seen, err := sample.Run(input, output, n, rng)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Sampled %d records (from %d seen) into %s\n", kept, seen, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (FASTA/FASTQ; optionally .gz)")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "number of records to sample")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; format matches the input, gzipped if it ends with .gz")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed for reproducibility")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
