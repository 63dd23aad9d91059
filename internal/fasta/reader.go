// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA entry. ID is the header text after '>' exactly as
// written; Seq is every following line trimmed and concatenated.
type Record struct {
	ID  string
	Seq []byte
}

// Load reads every record from path ("-" for stdin, gzip allowed).
func Load(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer rc.Close()

	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return recs, nil
}

// Read parses FASTA from r and returns the records in input order.
//
// Nothing about the content is validated: lines before the first header
// are dropped and a header with no sequence lines yields an empty Seq.
// Only read failures are returned as errors.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		recs []Record
		id   string
		open bool
		seq  []byte
	)
	flush := func() {
		if !open {
			return
		}
		recs = append(recs, Record{ID: id, Seq: append([]byte{}, seq...)})
		seq = seq[:0]
	}

	for {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		eof := err != nil
		if len(line) == 0 && eof {
			break
		}
		line = trimEOL(line)

		if len(line) > 0 && line[0] == '>' {
			flush()
			id = string(line[1:])
			open = true
		} else if open {
			seq = append(seq, bytes.TrimSpace(line)...)
		}
		if eof {
			break
		}
	}
	flush()
	return recs, nil
}

// trimEOL drops a trailing "\n" or "\r\n".
func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
