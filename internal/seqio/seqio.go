// Package seqio provides streaming ingestion of FASTA and FASTQ files,
// plain or gzip-compressed, and FASTA serialization.
package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// Sentinel errors for format sniffing and record parsing. Callers match
// them with errors.Is; wrapped variants carry path or record context.
var (
	ErrUnrecognizedFormat = errors.New("unrecognized format: first non-blank line does not start with '>' (FASTA) or '@' (FASTQ)")
	ErrEmptyInput         = errors.New("input contains no non-blank lines")
	ErrInvalidGzip        = errors.New("invalid gzip data")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrTruncatedRecord    = errors.New("truncated record")
	ErrNoRecords          = errors.New("no records found")
)

// Format is the detected logical format of an input stream.
type Format int

const (
	FormatFasta Format = iota
	FormatFastq
)

// Contig is a parsed, normalized sequence record.
type Contig struct {
	Name   string // accession: first whitespace-delimited token of Header
	Header string // full header text without the leading '>' or '@'
	Seq    []byte // uppercase ASCII letters only
}

// lineReader reads logical lines from a stream, reusing one buffer.
type lineReader struct {
	reader *bufio.Reader
	line   []byte
}

func newLineReader(r io.Reader) lineReader {
	return lineReader{
		reader: bufio.NewReaderSize(r, 1<<20), // 1MB buffer
		line:   make([]byte, 0, 512),
	}
}

// readLine returns the next line with its terminator and any trailing
// ASCII whitespace trimmed, so a whitespace-only line comes back empty
// and counts as blank. The returned slice is only valid until the next
// call. Returns io.EOF at end of input.
func (lr *lineReader) readLine() ([]byte, error) {
	lr.line = lr.line[:0]

	for {
		segment, isPrefix, err := lr.reader.ReadLine()
		if err != nil {
			return nil, err
		}

		lr.line = append(lr.line, segment...)

		if !isPrefix {
			break
		}
	}

	lr.line = trimRight(lr.line)

	return lr.line, nil
}

// readLineRaw returns the next line including its original terminator.
// A final line without a terminator is returned as-is; the call after it
// returns io.EOF.
func (lr *lineReader) readLineRaw() ([]byte, error) {
	line, err := lr.reader.ReadBytes('\n')
	if len(line) == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, err
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return line, nil
}

// trimRight strips trailing ASCII whitespace, terminator included,
// without copying. Blank-line checks and quality-length accounting both
// measure lines through this trim.
func trimRight(line []byte) []byte {
	return bytes.TrimRight(line, " \t\r\n\v\f")
}

// accession returns the first whitespace-delimited token of a header,
// or the whole header if it has no whitespace.
func accession(header string) string {
	if fields := strings.Fields(header); len(fields) > 0 {
		return fields[0]
	}
	return header
}

// appendLetters appends the ASCII alphabetic bytes of line to dst,
// uppercased. Digits, gaps and whitespace are dropped.
func appendLetters(dst, line []byte) []byte {
	for _, b := range line {
		switch {
		case b >= 'A' && b <= 'Z':
			dst = append(dst, b)
		case b >= 'a' && b <= 'z':
			dst = append(dst, b-('a'-'A'))
		}
	}
	return dst
}

// ReadSequences loads every record from a FASTA or FASTQ file
// (optionally gzip-compressed) into memory. The format is sniffed from
// the first non-blank line, then the file is reopened for the parse.
func ReadSequences(path string) ([]Contig, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck // read-only handle

	switch format {
	case FormatFastq:
		return ReadAllFastq(rc)
	default:
		return ReadAllFasta(rc)
	}
}
