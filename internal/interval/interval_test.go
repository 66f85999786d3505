package interval

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limpet/internal/seqio"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

var headerRe = regexp.MustCompile(`^seq(\d{6}) src=(\S+) range=(\d+)\.\.(\d+) len=(\d+)$`)

func refContigs() []seqio.Contig {
	return []seqio.Contig{
		{Name: "chrA", Header: "chrA", Seq: []byte(strings.Repeat("ACGT", 250))},   // 1000 bp
		{Name: "chrB", Header: "chrB desc", Seq: []byte(strings.Repeat("GT", 50))}, // 100 bp
	}
}

func TestSampleLengthsAndCoordinates(t *testing.T) {
	p := Params{N: 50, Min: 10, Max: 30}
	records, err := Sample(refContigs(), p, testRNG(11))
	require.NoError(t, err)
	require.Len(t, records, 50)

	lengths := map[string]int{"chrA": 1000, "chrB": 100}
	for i, rec := range records {
		m := headerRe.FindStringSubmatch(rec.Header)
		require.NotNil(t, m, "header %q does not match the expected layout", rec.Header)

		idx, _ := strconv.Atoi(m[1])
		start, _ := strconv.Atoi(m[3])
		end, _ := strconv.Atoi(m[4])
		length, _ := strconv.Atoi(m[5])

		assert.Equal(t, i+1, idx)
		assert.GreaterOrEqual(t, length, p.Min)
		assert.LessOrEqual(t, length, p.Max)
		assert.Equal(t, length, end-start+1, "range must be 1-based inclusive")
		assert.Equal(t, length, len(rec.Seq))
		assert.GreaterOrEqual(t, start, 1)
		assert.LessOrEqual(t, end, lengths[m[2]])
	}
}

func TestSampleSingleContigScenario(t *testing.T) {
	// One 20 bp contig, min=max=5: both intervals come from chrA with
	// valid coordinates inside 1..20.
	contigs := []seqio.Contig{{Name: "chrA", Header: "chrA", Seq: []byte("ACGTACGTACGTACGTACGT")}}
	records, err := Sample(contigs, Params{N: 2, Min: 5, Max: 5}, testRNG(123))
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, rec := range records {
		m := headerRe.FindStringSubmatch(rec.Header)
		require.NotNil(t, m)
		assert.Equal(t, "chrA", m[2])
		start, _ := strconv.Atoi(m[3])
		end, _ := strconv.Atoi(m[4])
		assert.GreaterOrEqual(t, start, 1)
		assert.LessOrEqual(t, end, 20)
		assert.Equal(t, 5, end-start+1)
		assert.Len(t, rec.Seq, 5)
	}
}

func TestSampleRejectsLongNRuns(t *testing.T) {
	// chrN is long but unusable past its NNN block edges; sampled
	// intervals must never contain more than two consecutive Ns.
	contigs := []seqio.Contig{
		{Name: "chrN", Header: "chrN", Seq: []byte("ACGT" + strings.Repeat("N", 40) + "ACGTACGTACGT")},
		{Name: "chrC", Header: "chrC", Seq: []byte(strings.Repeat("ACGTNN", 30))},
	}
	records, err := Sample(contigs, Params{N: 30, Min: 4, Max: 8}, testRNG(7))
	require.NoError(t, err)

	for _, rec := range records {
		assert.NotContains(t, string(rec.Seq), "NNN")
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	p := Params{N: 20, Min: 5, Max: 15}
	a, err := Sample(refContigs(), p, testRNG(99))
	require.NoError(t, err)
	b, err := Sample(refContigs(), p, testRNG(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleWeightsFavorLongContigs(t *testing.T) {
	// chrA has ~10x the usable start positions of chrB, so with a fixed
	// seed the draw counts should lean heavily toward chrA.
	records, err := Sample(refContigs(), Params{N: 200, Min: 10, Max: 10}, testRNG(5))
	require.NoError(t, err)

	fromA := 0
	for _, rec := range records {
		if strings.Contains(rec.Header, "src=chrA") {
			fromA++
		}
	}
	assert.Greater(t, fromA, 140, "expected most intervals from the long contig, got %d/200", fromA)
}

func TestSampleNoEligibleSequences(t *testing.T) {
	contigs := []seqio.Contig{{Name: "tiny", Header: "tiny", Seq: []byte("ACGT")}}
	_, err := Sample(contigs, Params{N: 1, Min: 10, Max: 20}, testRNG(1))
	assert.ErrorIs(t, err, ErrNoEligibleSequences)
}

func TestSampleRetryCap(t *testing.T) {
	// The only contig long enough is all Ns: every draw is rejected and
	// the bounded retry policy must surface an error instead of looping.
	contigs := []seqio.Contig{{Name: "gap", Header: "gap", Seq: []byte(strings.Repeat("N", 50))}}
	_, err := Sample(contigs, Params{N: 1, Min: 10, Max: 10}, testRNG(1))
	assert.ErrorIs(t, err, ErrNoEligibleSequences)
}

func TestSampleInvalidParams(t *testing.T) {
	contigs := refContigs()
	tests := []struct {
		name string
		p    Params
	}{
		{"zero n", Params{N: 0, Min: 5, Max: 10}},
		{"zero min", Params{N: 5, Min: 0, Max: 10}},
		{"min above max", Params{N: 5, Min: 10, Max: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sample(contigs, tt.p, testRNG(1))
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestRunWritesWrappedFasta(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.fa")
	out := filepath.Join(dir, "samples.fa")

	var sb strings.Builder
	fmt.Fprintf(&sb, ">chr1\n%s\n", strings.Repeat("ACGT", 100))
	require.NoError(t, os.WriteFile(ref, []byte(sb.String()), 0o600))

	wrote, err := Run(ref, out, Params{N: 5, Min: 90, Max: 120}, testRNG(4))
	require.NoError(t, err)
	assert.Equal(t, 5, wrote)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 80, "sequence lines must wrap at 80")
	}

	contigs, err := seqio.ReadAllFasta(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Len(t, contigs, 5)
}
