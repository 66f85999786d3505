package seqio

import (
	"errors"
	"fmt"
	"io"
)

// Raw readers return each record as its exact original byte span
// (header and body lines, original casing, wrapping and terminators)
// so that sampled records can be written back byte-for-byte. The
// boundary rules are the same as the normalized parsers; only the
// captured payload differs.

// RawFastaReader yields raw FASTA records.
type RawFastaReader struct {
	lr      lineReader
	pending []byte // raw next header line, including its terminator
}

// NewRawFastaReader creates a raw FASTA record reader from r.
func NewRawFastaReader(r io.Reader) *RawFastaReader {
	return &RawFastaReader{lr: newLineReader(r)}
}

// Next returns the next raw record, or io.EOF when input is exhausted.
// Each returned slice is freshly allocated and safe to retain.
func (r *RawFastaReader) Next() ([]byte, error) {
	header := r.pending
	r.pending = nil

	for header == nil {
		line, err := r.lr.readLineRaw()
		if err != nil {
			return nil, err
		}
		if line[0] == '>' {
			header = append([]byte(nil), line...)
		}
	}

	rec := header
	for {
		line, err := r.lr.readLineRaw()
		if errors.Is(err, io.EOF) {
			return rec, nil
		}
		if err != nil {
			return nil, err
		}
		if line[0] == '>' {
			r.pending = append([]byte(nil), line...)
			return rec, nil
		}
		rec = append(rec, line...)
	}
}

// RawFastqReader yields raw FASTQ records, tolerant of soft-wrapped
// sequence and quality blocks.
type RawFastqReader struct {
	lr lineReader
}

// NewRawFastqReader creates a raw FASTQ record reader from r.
func NewRawFastqReader(r io.Reader) *RawFastqReader {
	return &RawFastqReader{lr: newLineReader(r)}
}

// Next returns the next raw record, or io.EOF when input is exhausted.
// Each returned slice is freshly allocated and safe to retain.
func (r *RawFastqReader) Next() ([]byte, error) {
	var rec []byte
	for rec == nil {
		line, err := r.lr.readLineRaw()
		if err != nil {
			return nil, err
		}
		if len(trimRight(line)) == 0 {
			continue
		}
		if line[0] != '@' {
			return nil, fmt.Errorf("%w: FASTQ header line must start with '@'", ErrMalformedRecord)
		}
		rec = append([]byte(nil), line...)
	}

	// Sequence lines until '+'; the separator line is part of the record.
	seqLen := 0
	for {
		line, err := r.lr.readLineRaw()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected EOF while reading FASTQ sequence", ErrTruncatedRecord)
		}
		if err != nil {
			return nil, err
		}
		rec = append(rec, line...)
		if line[0] == '+' {
			break
		}
		seqLen += len(trimRight(line))
	}

	// Quality lines until their combined length covers the sequence.
	qlen := 0
	for {
		line, err := r.lr.readLineRaw()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected EOF while reading FASTQ quality", ErrTruncatedRecord)
		}
		if err != nil {
			return nil, err
		}
		rec = append(rec, line...)
		qlen += len(trimRight(line))
		if qlen >= seqLen {
			break
		}
	}

	return rec, nil
}
