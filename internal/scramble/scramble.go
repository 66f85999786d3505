// Package scramble loads records from multiple inputs, randomizes
// their global order, and rewrites headers with sequential accessions
// while keeping provenance (original accession, source file, original
// header).
package scramble

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"limpet/internal/seqio"
)

var (
	// ErrNoInputs is returned for an empty input path list.
	ErrNoInputs = errors.New("no input files provided")
	// ErrNoSequences is returned when the inputs yield no records at all.
	ErrNoSequences = errors.New("no sequences found in provided inputs")
)

// Record is a parsed contig tagged with the base name of the file it
// came from.
type Record struct {
	Name   string
	Header string
	Seq    []byte
	File   string
}

// Load reads every record from every path, in path order, tagging each
// with its source file name.
func Load(paths []string) ([]Record, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	var all []Record
	for _, path := range paths {
		contigs, err := seqio.ReadSequences(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		base := filepath.Base(path)
		for _, c := range contigs {
			all = append(all, Record{Name: c.Name, Header: c.Header, Seq: c.Seq, File: base})
		}
	}
	if len(all) == 0 {
		return nil, ErrNoSequences
	}
	return all, nil
}

// Scramble applies one uniform random permutation (Fisher-Yates) to the
// records and rewrites each header as
//
//	scramble_00001 src=<orig accession> file=<source file> | <original header>
//
// with accessions zero-padded, sequential and 1-indexed.
func Scramble(records []Record, rng *rand.Rand) []seqio.FastaRecord {
	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	out := make([]seqio.FastaRecord, len(records))
	for i, rec := range records {
		out[i] = seqio.FastaRecord{
			Header: fmt.Sprintf("scramble_%05d src=%s file=%s | %s", i+1, rec.Name, rec.File, rec.Header),
			Seq:    rec.Seq,
		}
	}
	return out
}

// Run loads all inputs, scrambles them, and writes one wrapped FASTA to
// the output path. Returns the number of records written.
func Run(inputs []string, output string, rng *rand.Rand) (int, error) {
	records, err := Load(inputs)
	if err != nil {
		return 0, err
	}

	out := Scramble(records, rng)

	if err := seqio.WriteFastaFile(output, out); err != nil {
		return 0, err
	}
	return len(out), nil
}
