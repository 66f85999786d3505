package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"limpet/internal/seqio"
)

func newStripCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Strip FASTA headers to accession-only",
		Long: `Reduce each header of a FASTA input (optionally .gz) to just the
accession, the first whitespace-separated token. Sequence content is
unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contigs, err := seqio.ReadSequences(input)
			if err != nil {
				return err
			}

			records := make([]seqio.FastaRecord, len(contigs))
			for i, c := range contigs {
				records[i] = seqio.FastaRecord{Header: c.Name, Seq: c.Seq}
			}
			if err := seqio.WriteFastaFile(output, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d sequences to %s\n", len(records), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input FASTA (optionally .gz)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output FASTA path (gzipped if it ends with .gz)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
