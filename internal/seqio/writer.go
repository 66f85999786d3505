package seqio

import (
	"bufio"
	"io"
)

// DefaultLineWidth is the wrap width for generated FASTA output.
const DefaultLineWidth = 80

// FastaRecord is a header/sequence pair ready for serialization.
type FastaRecord struct {
	Header string
	Seq    []byte
}

// WriteFasta serializes records as FASTA, wrapping sequence lines at
// width characters. A width <= 0 disables wrapping.
func WriteFasta(w io.Writer, records []FastaRecord, width int) error {
	bw := bufio.NewWriterSize(w, 1<<20)

	for _, rec := range records {
		if err := bw.WriteByte('>'); err != nil {
			return err
		}
		if _, err := bw.WriteString(rec.Header); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}

		lw := width
		if lw <= 0 {
			lw = len(rec.Seq)
		}
		for start := 0; start < len(rec.Seq); start += lw {
			end := min(start+lw, len(rec.Seq))
			if _, err := bw.Write(rec.Seq[start:end]); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteFastaFile writes records to path (gzipped for .gz paths),
// wrapped at DefaultLineWidth.
func WriteFastaFile(path string, records []FastaRecord) error {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	if err := WriteFasta(wc, records, DefaultLineWidth); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
