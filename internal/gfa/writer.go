package gfa

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"seqrush/internal/fasta"
)

// Encode writes the GFA document for recs to w: the header, one segment
// per record, then (for a non-empty set) the path and the links between
// consecutive records. The first failed write stops it; what was already
// written stays written.
func Encode(w io.Writer, recs []fasta.Record) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	if err := encode(bw, recs); err != nil {
		return err
	}
	return bw.Flush()
}

func encode(bw *bufio.Writer, recs []fasta.Record) error {
	if err := writeLine(bw, Header()); err != nil {
		return err
	}
	for _, r := range recs {
		if err := writeLine(bw, Segment(r)); err != nil {
			return err
		}
	}
	if len(recs) == 0 {
		return nil
	}
	if err := writeLine(bw, Path(PathName, recs)); err != nil {
		return err
	}
	for i := 1; i < len(recs); i++ {
		if err := writeLine(bw, Link(recs[i-1], recs[i])); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(bw *bufio.Writer, line string) error {
	if _, err := bw.WriteString(line); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}

// WriteFile creates (or truncates) path and encodes recs into it.
func WriteFile(path string, recs []fasta.Record) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(fh, recs); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
