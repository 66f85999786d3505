package seqio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastaParseRecord(t *testing.T) {
	input := `>chr1 Homo sapiens chromosome 1
ACGTACGT
ACGT
`
	p := NewFastaParser(strings.NewReader(input))
	rec, err := p.Next()
	require.NoError(t, err)

	assert.Equal(t, "chr1", rec.Name)
	assert.Equal(t, "chr1 Homo sapiens chromosome 1", rec.Header)
	assert.Equal(t, []byte("ACGTACGTACGT"), rec.Seq)

	_, err = p.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFastaParseMultipleRecords(t *testing.T) {
	input := `>a first
AAAA
>b second
CCCC
>c
GGGG
`
	contigs, err := ReadAllFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, contigs, 3)

	assert.Equal(t, "a", contigs[0].Name)
	assert.Equal(t, []byte("AAAA"), contigs[0].Seq)
	assert.Equal(t, "b", contigs[1].Name)
	assert.Equal(t, []byte("CCCC"), contigs[1].Seq)
	assert.Equal(t, "c", contigs[2].Name)
	assert.Equal(t, "c", contigs[2].Header)
}

func TestFastaNormalizesSequence(t *testing.T) {
	// Lowercase is uppercased; digits, gaps and spaces are dropped.
	input := `>seq1
acgt ACGT
12acgt--nN
`
	contigs, err := ReadAllFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, contigs, 1)
	assert.Equal(t, []byte("ACGTACGTACGTNN"), contigs[0].Seq)
}

func TestFastaBlankLinesIgnored(t *testing.T) {
	input := ">x\nAC\n\nGT\n\n>y\nTT\n"
	contigs, err := ReadAllFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, contigs, 2)
	assert.Equal(t, []byte("ACGT"), contigs[0].Seq)
	assert.Equal(t, []byte("TT"), contigs[1].Seq)
}

func TestFastaEmptySequenceRecord(t *testing.T) {
	input := ">empty\n>full\nACGT\n"
	contigs, err := ReadAllFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, contigs, 2)
	assert.Empty(t, contigs[0].Seq)
	assert.Equal(t, []byte("ACGT"), contigs[1].Seq)
}

func TestFastaNoRecords(t *testing.T) {
	_, err := ReadAllFasta(strings.NewReader("just some text\nwithout headers\n"))
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = ReadAllFasta(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestFastaCRLF(t *testing.T) {
	input := ">r1 desc\r\nACGT\r\nacgt\r\n"
	contigs, err := ReadAllFasta(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, contigs, 1)
	assert.Equal(t, "r1", contigs[0].Name)
	assert.Equal(t, "r1 desc", contigs[0].Header)
	assert.Equal(t, []byte("ACGTACGT"), contigs[0].Seq)
}
