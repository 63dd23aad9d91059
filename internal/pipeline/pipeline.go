// internal/pipeline/pipeline.go
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"seqrush/internal/fasta"
	"seqrush/internal/gfa"
)

// Error kinds. Errors returned by Run match exactly one of these with
// errors.Is and still unwrap to the underlying I/O cause.
var (
	ErrRead  = errors.New("reading sequences")
	ErrWrite = errors.New("writing graph")
)

// Defaults for the reserved settings.
const (
	DefaultThreads        = 1
	DefaultMinMatchLength = 15
)

// Config is what the CLI layer hands to Run.
type Config struct {
	Sequences string `mapstructure:"sequences" validate:"required"`
	Output    string `mapstructure:"output" validate:"required"`

	// Reserved: accepted and validated, never consulted by Run.
	Threads        int `mapstructure:"threads" validate:"gte=1"`
	MinMatchLength int `mapstructure:"min-match-length" validate:"gte=1"`

	// Stdout receives the document when Output is "-"; nil means os.Stdout.
	Stdout io.Writer `mapstructure:"-" validate:"-"`
}

// Stats summarises a finished run.
type Stats struct {
	Segments int
	Links    int
	Residues int
}

// Run reads cfg.Sequences and writes the GFA document to cfg.Output.
// A read failure leaves the destination untouched.
func Run(cfg Config) (Stats, error) {
	recs, err := fasta.Load(cfg.Sequences)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if err := write(cfg, recs); err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return statsOf(recs), nil
}

func write(cfg Config, recs []fasta.Record) error {
	if cfg.Output != "-" {
		return gfa.WriteFile(cfg.Output, recs)
	}
	w := cfg.Stdout
	if w == nil {
		w = os.Stdout
	}
	return gfa.Encode(w, recs)
}

func statsOf(recs []fasta.Record) Stats {
	st := Stats{Segments: len(recs)}
	if len(recs) > 1 {
		st.Links = len(recs) - 1
	}
	for _, r := range recs {
		st.Residues += len(r.Seq)
	}
	return st
}
