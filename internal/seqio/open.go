package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// hasGzExt reports whether the path names a gzip file. Detection is by
// extension only, case-insensitive, so that sniffing and parsing agree
// on how to reopen the same path.
func hasGzExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gz")
}

// multiCloser closes all wrapped closers, keeping the first error.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a stream of the file's uncompressed content. Paths ending
// in .gz are wrapped in a multistream gzip decoder.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input: %w", err)
	}
	if !hasGzExt(path) {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w: %v", path, ErrInvalidGzip, err)
	}
	return &multiCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
}

// writeCloser pairs a buffered writer with the close sequence that
// flushes and releases everything behind it.
type writeCloser struct {
	io.Writer
	close func() error
}

func (w *writeCloser) Close() error { return w.close() }

// Create opens an output file for writing, gzip-compressing if the path
// ends in .gz. Close flushes buffers and closes the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create output: %w", err)
	}
	bw := bufio.NewWriterSize(f, 1<<20)

	if hasGzExt(path) {
		gz := gzip.NewWriter(bw)
		return &writeCloser{
			Writer: gz,
			close: func() error {
				if err := gz.Close(); err != nil {
					_ = f.Close()
					return err
				}
				if err := bw.Flush(); err != nil {
					_ = f.Close()
					return err
				}
				return f.Close()
			},
		}, nil
	}

	return &writeCloser{
		Writer: bw,
		close: func() error {
			if err := bw.Flush(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}, nil
}
