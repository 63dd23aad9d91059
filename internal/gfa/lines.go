package gfa

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"seqrush/internal/fasta"
)

const (
	// Version is the GFA version declared in the header.
	Version = "1.0"
	// PathName names the single path through all segments.
	PathName = "p1"
	// NoOverlap fills the path's overlap field; ZeroOverlap is every link's CIGAR.
	NoOverlap   = "*"
	ZeroOverlap = "0M"
	Forward     = "+"
)

// Header returns the H line.
func Header() string { return "H\tVN:Z:" + Version }

// Segment returns the S line for rec.
func Segment(rec fasta.Record) string {
	return "S\t" + rec.ID + "\t" + residueText(rec.Seq)
}

// Path returns the P line visiting recs in order, all forward.
// It returns "" for an empty set.
func Path(name string, recs []fasta.Record) string {
	if len(recs) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("P\t")
	sb.WriteString(name)
	sb.WriteByte('\t')
	for i, r := range recs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(r.ID)
		sb.WriteString(Forward)
	}
	sb.WriteByte('\t')
	sb.WriteString(NoOverlap)
	return sb.String()
}

// Link returns the L line joining from to to, forward on both ends.
func Link(from, to fasta.Record) string {
	return strings.Join([]string{"L", from.ID, Forward, to.ID, Forward, ZeroOverlap}, "\t")
}

// residueText renders seq as text. Ill-formed UTF-8 is replaced with
// U+FFFD, one per maximal invalid subsequence.
func residueText(seq []byte) string {
	if utf8.Valid(seq) {
		return string(seq)
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(seq)
	if err != nil {
		return strings.ToValidUTF8(string(seq), string(utf8.RuneError))
	}
	return string(out)
}
