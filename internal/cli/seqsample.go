package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"limpet/internal/interval"
)

func newSeqSampleCommand() *cobra.Command {
	var (
		reference string
		output    string
		n         int
		minLen    int
		maxLen    int
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:     "seq-sample",
		Aliases: []string{"seq_sample"},
		Short:   "Sample random intervals from a reference and write FASTA",
		Long: `Draw n random sub-intervals from a reference (FASTA/FASTQ, optionally
.gz). Each draw picks a length uniformly between --min and --max, then a
position uniformly across all reference sequences that can fit it, so
longer sequences are proportionally more likely to be hit. Intervals
containing a run of more than two 'N' bases are rejected and redrawn.
Output headers record the source accession and 1-based inclusive
coordinates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case n <= 0:
				return fmt.Errorf("-n must be greater than 0")
			case minLen <= 0:
				return fmt.Errorf("--min must be greater than 0")
			case minLen > maxLen:
				return fmt.Errorf("--min must be <= --max")
			}
			rng := newRNG(cmd.Flags().Changed("seed"), seed)

			wrote, err := interval.Run(reference, output, interval.Params{N: n, Min: minLen, Max: maxLen}, rng)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d sequences to %s\n", wrote, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reference, "reference", "r", "", "reference file (FASTA/FASTQ; optionally .gz)")
	cmd.Flags().IntVarP(&n, "n", "n", 0, "number of intervals to sample")
	cmd.Flags().IntVar(&minLen, "min", 0, "minimum interval length (inclusive)")
	cmd.Flags().IntVar(&maxLen, "max", 0, "maximum interval length (inclusive)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output FASTA path (gzipped if it ends with .gz)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed for reproducibility")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
