// limpet is a command-line toolkit for randomized sampling and
// reordering of FASTA/FASTQ sequence files.
package main

import (
	"os"

	"limpet/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
