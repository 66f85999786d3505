package seqio

import (
	"errors"
	"fmt"
	"io"
)

// Sniff classifies a stream as FASTA or FASTQ from its first non-blank
// line. The stream is consumed up to and including that line.
func Sniff(r io.Reader) (Format, error) {
	lr := newLineReader(r)
	for {
		line, err := lr.readLine()
		if errors.Is(err, io.EOF) {
			return 0, ErrEmptyInput
		}
		if err != nil {
			return 0, err
		}
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '>':
			return FormatFasta, nil
		case '@':
			return FormatFastq, nil
		default:
			return 0, ErrUnrecognizedFormat
		}
	}
}

// DetectFormat opens path, sniffs its format, and closes it again.
// Gzip streams are not seekable, so callers reopen the path to parse.
func DetectFormat(path string) (Format, error) {
	rc, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer rc.Close() //nolint:errcheck // read-only handle

	format, err := Sniff(rc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return format, nil
}
