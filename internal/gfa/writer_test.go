package gfa

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqrush/internal/fasta"
)

func recs(pairs ...string) []fasta.Record {
	var out []fasta.Record
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, fasta.Record{ID: pairs[i], Seq: []byte(pairs[i+1])})
	}
	return out
}

func encodeString(t *testing.T, rs []fasta.Record) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, rs))
	return buf.String()
}

// document splits GFA text into fields per line, grouped by record type.
type document struct {
	order []string
	byTag map[string][][]string
}

func parse(t *testing.T, text string) document {
	t.Helper()
	require.True(t, strings.HasSuffix(text, "\n"), "document must end with a newline")
	d := document{byTag: map[string][][]string{}}
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		f := strings.Split(line, "\t")
		d.order = append(d.order, f[0])
		d.byTag[f[0]] = append(d.byTag[f[0]], f)
	}
	return d
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "H\tVN:Z:1.0\n", encodeString(t, nil))
}

func TestEncode_Single(t *testing.T) {
	got := encodeString(t, recs("z", "AAAA"))
	assert.Equal(t, "H\tVN:Z:1.0\nS\tz\tAAAA\nP\tp1\tz+\t*\n", got)
}

func TestEncode_TwoRecords(t *testing.T) {
	got := encodeString(t, recs("a", "ACGT", "b", "TTTT"))
	want := "H\tVN:Z:1.0\n" +
		"S\ta\tACGT\n" +
		"S\tb\tTTTT\n" +
		"P\tp1\ta+,b+\t*\n" +
		"L\ta\t+\tb\t+\t0M\n"
	assert.Equal(t, want, got)
}

func TestEncode_LineCounts(t *testing.T) {
	for n := 0; n <= 6; n++ {
		var rs []fasta.Record
		for i := 0; i < n; i++ {
			rs = append(rs, fasta.Record{ID: string(rune('a' + i)), Seq: []byte("AC")})
		}
		d := parse(t, encodeString(t, rs))

		assert.Len(t, d.byTag["H"], 1, "n=%d", n)
		assert.Equal(t, "H", d.order[0], "n=%d", n)
		assert.Len(t, d.byTag["S"], n, "n=%d", n)
		if n == 0 {
			assert.Empty(t, d.byTag["P"])
			assert.Empty(t, d.byTag["L"])
			continue
		}
		assert.Len(t, d.byTag["P"], 1, "n=%d", n)
		assert.Len(t, d.byTag["L"], n-1, "n=%d", n)
	}
}

func TestEncode_PathAndLinksFollowInputOrder(t *testing.T) {
	rs := recs("chr2", "GG", "chr10", "AA", "chr1", "CC", "chr1b", "")
	d := parse(t, encodeString(t, rs))

	p := d.byTag["P"][0]
	require.Len(t, p, 4)
	assert.Equal(t, PathName, p[1])
	assert.Equal(t, "*", p[3])
	var got []string
	for _, tok := range strings.Split(p[2], ",") {
		require.True(t, strings.HasSuffix(tok, "+"))
		got = append(got, strings.TrimSuffix(tok, "+"))
	}
	assert.Equal(t, []string{"chr2", "chr10", "chr1", "chr1b"}, got)

	for i, l := range d.byTag["L"] {
		assert.Equal(t, []string{"L", rs[i].ID, "+", rs[i+1].ID, "+", "0M"}, l)
	}
}

func TestEncode_SegmentRoundTrip(t *testing.T) {
	rs := recs("a", "ACGT", "b", "TTTT", "c", "ac gt", "d", "")
	d := parse(t, encodeString(t, rs))
	seqs := map[string]string{}
	for _, s := range d.byTag["S"] {
		require.Len(t, s, 3)
		seqs[s[1]] = s[2]
	}
	for _, r := range rs {
		assert.Equal(t, string(r.Seq), seqs[r.ID])
	}

	// segments concatenated in path order
	var joined strings.Builder
	for _, tok := range strings.Split(d.byTag["P"][0][2], ",") {
		joined.WriteString(seqs[strings.TrimSuffix(tok, "+")])
	}
	assert.Equal(t, "ACGTTTTTac gt", joined.String())
}

func TestSegment_InvalidUTF8IsReplaced(t *testing.T) {
	line := Segment(fasta.Record{ID: "x", Seq: []byte("AC\xffGT")})
	assert.Equal(t, "S\tx\tAC�GT", line)
}

func TestSegment_ValidMultibytePassesThrough(t *testing.T) {
	line := Segment(fasta.Record{ID: "x", Seq: []byte("ACµ")})
	assert.Equal(t, "S\tx\tACµ", line)
}

func TestPath_Empty(t *testing.T) {
	assert.Equal(t, "", Path(PathName, nil))
}

type failAfter struct {
	n   int
	err error
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, f.err
	}
	f.n--
	return len(p), nil
}

func TestEncode_WriteErrorPropagates(t *testing.T) {
	boom := errors.New("disk full")
	err := Encode(&failAfter{err: boom}, recs("a", "A", "b", "C"))
	require.ErrorIs(t, err, boom)
}

func TestWriteFile_CreatesAndTruncates(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.gfa")
	require.NoError(t, os.WriteFile(fn, []byte(strings.Repeat("junk\n", 100)), 0o644))

	require.NoError(t, WriteFile(fn, recs("a", "ACGT")))
	got, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "H\tVN:Z:1.0\nS\ta\tACGT\nP\tp1\ta+\t*\n", string(got))
}

func TestWriteFile_BadDestination(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "no", "such", "dir", "out.gfa")
	err := WriteFile(fn, recs("a", "A"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
