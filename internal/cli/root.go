// Package cli wires the limpet subcommands. All parameter validation
// happens here; the sampling packages receive validated values and an
// explicit RNG.
package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"
)

var version = "dev"

// NewRootCommand builds the limpet command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "limpet",
		Short: "Randomized sampling utilities for FASTA/FASTQ files",
		Long: `limpet ingests FASTA and FASTQ files (plain or gzip-compressed) and
performs randomized subsetting or reordering of their records.

Subcommands:
  sample      reservoir-sample n records, keeping the original format
  seq-sample  draw random intervals from a reference, weighted by position
  scramble    shuffle records from many inputs into one FASTA with provenance
  strip       reduce FASTA headers to the accession token only

Every command that draws random numbers accepts --seed; the same seed
and input reproduce byte-identical output.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newSampleCommand(),
		newSeqSampleCommand(),
		newScrambleCommand(),
		newStripCommand(),
	)
	return root
}

// newRNG builds the single random stream for one invocation. With a
// seed the stream is a PCG seeded from it; otherwise it is seeded from
// the OS via the auto-seeded global source.
func newRNG(seeded bool, seed uint64) *rand.Rand {
	if seeded {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
