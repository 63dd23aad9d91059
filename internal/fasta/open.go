// internal/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// gzipCloser closes the decompressor before the file under it.
type gzipCloser struct {
	*gzip.Reader
	file io.Closer
}

func (g *gzipCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// openReader returns a reader for path. "-" is stdin; gzip input is
// detected by magic number (1F 8B) or by a .gz suffix.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipCloser{Reader: gr, file: fh}, nil
	}
	return struct {
		io.Reader
		io.Closer
	}{Reader: br, Closer: fh}, nil
}
