// Package interval extracts random sub-intervals from a set of
// reference sequences, weighted so that every valid start position
// across the whole reference is equally likely.
package interval

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"limpet/internal/seqio"
)

var (
	// ErrInvalidParams is returned for a non-positive count, a zero
	// minimum length, or min > max.
	ErrInvalidParams = errors.New("invalid sampling parameters")
	// ErrNoEligibleSequences is returned when no reference sequence can
	// yield an interval of the requested lengths.
	ErrNoEligibleSequences = errors.New("no eligible sequences")
)

// maxRejects bounds consecutive rejected draws (unfittable length or an
// ambiguous-base run) before sampling gives up. Rejections re-randomize
// length, contig and position, so hitting the cap means the parameter
// combination cannot produce acceptable intervals.
const maxRejects = 10000

// maxAmbiguousRun is the longest run of 'N' bases allowed in an
// accepted interval.
const maxAmbiguousRun = 2

// Params configures interval sampling.
type Params struct {
	N   int // number of intervals to draw
	Min int // minimum interval length, inclusive
	Max int // maximum interval length, inclusive
}

func (p Params) validate() error {
	switch {
	case p.N <= 0:
		return fmt.Errorf("%w: n must be greater than 0", ErrInvalidParams)
	case p.Min <= 0:
		return fmt.Errorf("%w: min must be greater than 0", ErrInvalidParams)
	case p.Min > p.Max:
		return fmt.Errorf("%w: min must be <= max", ErrInvalidParams)
	}
	return nil
}

// hasLongNRun reports whether seq contains a run of 'N' longer than maxRun.
func hasLongNRun(seq []byte, maxRun int) bool {
	run := 0
	for _, b := range seq {
		if b == 'N' {
			run++
			if run > maxRun {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// Sample draws p.N random intervals from the reference contigs. Each
// draw picks a length uniformly in [Min, Max], then a contig weighted
// by its count of valid start offsets for that length, then a uniform
// start offset. Intervals containing a run of more than two 'N' bases
// are rejected and the whole draw is retried. Headers carry the source
// accession and 1-based inclusive coordinates.
func Sample(contigs []seqio.Contig, p Params, rng *rand.Rand) ([]seqio.FastaRecord, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	eligible := false
	for _, c := range contigs {
		if len(c.Seq) >= p.Min {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, fmt.Errorf("%w: no reference sequence is at least %d bp long", ErrNoEligibleSequences, p.Min)
	}

	out := make([]seqio.FastaRecord, 0, p.N)
	weights := make([]uint64, len(contigs))
	rejects := 0

	for len(out) < p.N {
		if rejects >= maxRejects {
			return nil, fmt.Errorf("%w: gave up after %d rejected draws", ErrNoEligibleSequences, rejects)
		}

		length := p.Min + rng.IntN(p.Max-p.Min+1)

		// Weights are the number of valid zero-based start offsets per
		// contig for this length; too-short contigs weigh 0.
		var total uint64
		for i, c := range contigs {
			if len(c.Seq) >= length {
				weights[i] = uint64(len(c.Seq) - length + 1)
				total += weights[i]
			} else {
				weights[i] = 0
			}
		}
		if total == 0 {
			// No contig fits this length; redraw.
			rejects++
			continue
		}

		pick := rng.Uint64N(total)
		chosen := 0
		for i, w := range weights {
			if w == 0 {
				continue
			}
			if pick < w {
				chosen = i
				break
			}
			pick -= w
		}

		c := &contigs[chosen]
		start := rng.IntN(len(c.Seq) - length + 1)
		end := start + length
		slice := c.Seq[start:end]

		if hasLongNRun(slice, maxAmbiguousRun) {
			rejects++
			continue
		}
		rejects = 0

		header := fmt.Sprintf("seq%06d src=%s range=%d..%d len=%d",
			len(out)+1, c.Name, start+1, end, length)
		out = append(out, seqio.FastaRecord{
			Header: header,
			Seq:    append([]byte(nil), slice...),
		})
	}

	return out, nil
}

// Run loads the reference, samples p.N intervals, and writes them as
// wrapped FASTA to the output path. Returns the number of records written.
func Run(reference, output string, p Params, rng *rand.Rand) (int, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	contigs, err := seqio.ReadSequences(reference)
	if err != nil {
		return 0, err
	}

	records, err := Sample(contigs, p, rng)
	if err != nil {
		return 0, fmt.Errorf("sampling %s: %w", reference, err)
	}

	if err := seqio.WriteFastaFile(output, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
