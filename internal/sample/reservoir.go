// Package sample picks a uniform random subset of records from a
// FASTA/FASTQ stream using reservoir sampling, preserving the original
// record bytes and the input's logical format.
package sample

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"limpet/internal/seqio"
)

// ErrInvalidCount is returned when the requested sample size is not positive.
var ErrInvalidCount = errors.New("sample count must be greater than 0")

// RawReader yields raw record byte spans. Implemented by
// seqio.RawFastaReader and seqio.RawFastqReader.
type RawReader interface {
	Next() ([]byte, error)
}

// Reservoir streams records from r and keeps a uniform random sample of
// up to n of them (Algorithm R): the k-th record seen replaces a random
// reservoir slot with probability n/k. Memory stays O(n) regardless of
// input size. The reservoir is shuffled before returning so output
// order carries no trace of input arrival order. Returns the sampled
// records and the total number of records seen.
func Reservoir(r RawReader, n int, rng *rand.Rand) ([][]byte, int, error) {
	if n <= 0 {
		return nil, 0, ErrInvalidCount
	}

	reservoir := make([][]byte, 0, n)
	seen := 0
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, seen, err
		}
		seen++
		if len(reservoir) < n {
			reservoir = append(reservoir, rec)
		} else if j := rng.IntN(seen); j < n {
			reservoir[j] = rec
		}
	}

	if len(reservoir) == 0 {
		return nil, 0, seqio.ErrNoRecords
	}

	rng.Shuffle(len(reservoir), func(i, j int) {
		reservoir[i], reservoir[j] = reservoir[j], reservoir[i]
	})

	return reservoir, seen, nil
}

// Run samples n records from the input file and writes them unmodified
// to the output file, in the input's own format. The output is gzipped
// when its path ends in .gz. Returns how many records were kept and how
// many were seen.
func Run(input, output string, n int, rng *rand.Rand) (kept, seen int, err error) {
	if n <= 0 {
		return 0, 0, ErrInvalidCount
	}

	format, err := seqio.DetectFormat(input)
	if err != nil {
		return 0, 0, err
	}

	rc, err := seqio.Open(input)
	if err != nil {
		return 0, 0, err
	}
	defer rc.Close() //nolint:errcheck // read-only handle

	var reader RawReader
	switch format {
	case seqio.FormatFastq:
		reader = seqio.NewRawFastqReader(rc)
	default:
		reader = seqio.NewRawFastaReader(rc)
	}

	records, seen, err := Reservoir(reader, n, rng)
	if err != nil {
		return 0, seen, fmt.Errorf("sampling %s: %w", input, err)
	}

	wc, err := seqio.Create(output)
	if err != nil {
		return 0, seen, err
	}
	for _, rec := range records {
		if _, err := wc.Write(rec); err != nil {
			_ = wc.Close()
			return 0, seen, err
		}
	}
	if err := wc.Close(); err != nil {
		return 0, seen, err
	}

	return len(records), seen, nil
}
