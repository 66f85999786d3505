package seqio

import (
	"errors"
	"io"
	"strings"
)

// FastaParser reads normalized records from a FASTA stream. A header
// line belongs to the next record, so the parser carries one line of
// lookahead between calls.
type FastaParser struct {
	lr      lineReader
	pending []byte // next header line, held over from the previous record
}

// NewFastaParser creates a FASTA parser reading from r.
func NewFastaParser(r io.Reader) *FastaParser {
	return &FastaParser{lr: newLineReader(r)}
}

// Next reads and returns the next record. Returns io.EOF when no more
// records are available.
func (p *FastaParser) Next() (*Contig, error) {
	header := p.pending
	p.pending = nil

	// Scan forward to the first header if we are not already holding one.
	for header == nil {
		line, err := p.lr.readLine()
		if err != nil {
			return nil, err
		}
		if len(line) > 0 && line[0] == '>' {
			header = append([]byte(nil), line...)
		}
	}

	full := strings.TrimSpace(string(header[1:]))
	rec := &Contig{Name: accession(full), Header: full}

	for {
		line, err := p.lr.readLine()
		if errors.Is(err, io.EOF) {
			return rec, nil
		}
		if err != nil {
			return nil, err
		}
		if len(line) > 0 && line[0] == '>' {
			p.pending = append([]byte(nil), line...)
			return rec, nil
		}
		rec.Seq = appendLetters(rec.Seq, line)
	}
}

// ReadAllFasta parses every record from a FASTA stream.
// Fails with ErrNoRecords if no header was ever seen.
func ReadAllFasta(r io.Reader) ([]Contig, error) {
	p := NewFastaParser(r)
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
