package seqio

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// FastqParser reads normalized records from a FASTQ stream. Sequence
// and quality blocks may be soft-wrapped across physical lines: the
// sequence block ends at the '+' separator, and the quality block ends
// once its accumulated line lengths reach the sequence length.
type FastqParser struct {
	lr lineReader
}

// NewFastqParser creates a FASTQ parser reading from r.
func NewFastqParser(r io.Reader) *FastqParser {
	return &FastqParser{lr: newLineReader(r)}
}

// Next reads and returns the next record. Returns io.EOF when no more
// records are available.
func (p *FastqParser) Next() (*Contig, error) {
	var header []byte
	for {
		line, err := p.lr.readLine()
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] != '@' {
			return nil, fmt.Errorf("%w: FASTQ header line must start with '@'", ErrMalformedRecord)
		}
		header = line
		break
	}

	full := strings.TrimSpace(string(header[1:]))
	rec := &Contig{Name: accession(full), Header: full}

	// Sequence lines until the '+' separator.
	for {
		line, err := p.lr.readLine()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected EOF while reading FASTQ sequence", ErrTruncatedRecord)
		}
		if err != nil {
			return nil, err
		}
		if len(line) > 0 && line[0] == '+' {
			break
		}
		rec.Seq = appendLetters(rec.Seq, line)
	}

	// Quality lines are counted, not stored, until they cover the sequence.
	qlen := 0
	for qlen < len(rec.Seq) {
		line, err := p.lr.readLine()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected EOF while reading FASTQ quality", ErrTruncatedRecord)
		}
		if err != nil {
			return nil, err
		}
		qlen += len(line)
	}

	return rec, nil
}

// ReadAllFastq parses every record from a FASTQ stream.
// Fails with ErrNoRecords if the stream holds no records.
func ReadAllFastq(r io.Reader) ([]Contig, error) {
	p := NewFastqParser(r)
	var contigs []Contig
	for {
		rec, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		contigs = append(contigs, *rec)
	}
	if len(contigs) == 0 {
		return nil, ErrNoRecords
	}
	return contigs, nil
}
