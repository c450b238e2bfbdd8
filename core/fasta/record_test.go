package fasta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqstat-core/alphabet"
)

func TestUngapIdempotent(t *testing.T) {
	gaps := alphabet.Default().Gap
	r := &Record{Header: "a", Seq: "AC-G.T_A"}
	r.Ungap(gaps)
	assert.Equal(t, "ACGTA", r.Seq)
	r.Ungap(gaps)
	assert.Equal(t, "ACGTA", r.Seq, "degapping a degapped sequence is a no-op")
}

func TestRevComp(t *testing.T) {
	assert.Equal(t, "TGCA", RevComp("TGCA"))
	assert.Equal(t, "acGT", RevComp("ACgt"))
	assert.Equal(t, "TN-A", RevComp("T-NA"), "unpaired symbols pass through")
}

func TestWrap(t *testing.T) {
	r := &Record{Header: "h", Seq: "ACGTACG"}
	assert.Equal(t, ">h\nACG\nTAC\nG", r.Wrap(3))
	assert.Equal(t, ">h\nACGTACG", r.Wrap(0))
}

func TestParseHeaderPairs(t *testing.T) {
	f := ParseHeader("locus|AT3G01015|taxon|3702|gi|186509637|gb|NP_186749.2| TPX2 targeting protein")
	assert.Equal(t, "AT3G01015", f["locus"])
	assert.Equal(t, "NP_186749.2", f["gb"])
	assert.Equal(t, "TPX2 targeting protein", f["desc"])
}

func TestParseHeaderNoPipes(t *testing.T) {
	f := ParseHeader("plain description")
	assert.Equal(t, "plain description", f["header"])
}

func TestParseHeaderEvenTokensNoDesc(t *testing.T) {
	f := ParseHeader("gi|123|gb|X99")
	assert.Equal(t, "123", f["gi"])
	assert.False(t, f.Has("desc"))
}

func TestLookupMissing(t *testing.T) {
	f := ParseHeader("gi|123")
	_, err := f.Lookup("gb")
	require.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, "NA", f.LookupDefault("gb", "NA"))
	v, err := f.Lookup("gi")
	require.NoError(t, err)
	assert.Equal(t, "123", v)
}
