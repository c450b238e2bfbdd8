package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqstat-core/alphabet"
	"seqstat-core/fasta"
)

func detect(seq string) Features {
	d := Detector{Alpha: alphabet.Default()}
	return d.Detect(&fasta.Record{Header: "t", Seq: seq})
}

func TestORFCategories(t *testing.T) {
	cases := []struct {
		seq  string
		want ORF
	}{
		{"ATGGCCTAA", ORFStartCodingStop},
		{"ATGTAAGCCTAA", ORFStartNonsenseStop},
		{"ATGGCCGGT", ORFStartCoding},
		{"ATGTAAGCCGGT", ORFStartNonsense},
		{"GGTGCCTAA", ORFCodingStop},
		{"ATGGGCCTAA", ORFStartNStop}, // length not a multiple of three
		{"ATGGC", ORFStart},
		{"GGTGCCGGT", ORFStop},
		{"TAAGCCTAA", ORFNotCDS},
	}
	for _, tc := range cases {
		got := detect(tc.seq)
		require.Contains(t, []Type{TypeDNA, TypeRNA}, got.Type, "seq %q", tc.seq)
		assert.Equal(t, tc.want, got.ORF, "seq %q", tc.seq)
	}
}

func TestORFCaseAndRNAStart(t *testing.T) {
	// Case must not change the ORF verdict.
	assert.Equal(t, ORFStartCodingStop, detect("atggcctaa").ORF)
	// The RNA start codon is honored.
	assert.Equal(t, ORFStartCodingStop, detect("AUGGCCUAA").ORF)
}

func TestORFShortSequences(t *testing.T) {
	// Below one complete codon nothing can be a start or stop.
	assert.Equal(t, ORFStop, detect("AC").ORF)
	assert.Equal(t, ORFStartCoding, detect("ATG").ORF)
}

func TestGapHandling(t *testing.T) {
	rec := &fasta.Record{Header: "g", Seq: "ATG-GCC-TAA"}
	d := Detector{Alpha: alphabet.Default()}
	got := d.Detect(rec)
	assert.True(t, got.Gapped)
	assert.Equal(t, "ATGGCCTAA", rec.Seq, "record is degapped in place")
	assert.Equal(t, TypeDNA, got.Type)
	assert.Equal(t, ORFStartCodingStop, got.ORF)
}

func TestCaseClasses(t *testing.T) {
	assert.Equal(t, CaseUpper, detect("ACGT").Case)
	assert.Equal(t, CaseLower, detect("acgt").Case)
	assert.Equal(t, CaseMixed, detect("ACgt").Case)
	// Digit-free symbol-only content counts as uppercase.
	assert.Equal(t, CaseUpper, detect("***").Case)
}

func TestProteinFeatures(t *testing.T) {
	got := detect("MDVUX*AL*")
	require.Equal(t, TypeProtein, got.Type)
	assert.True(t, got.Selenocysteine)
	assert.True(t, got.InitialMet)
	assert.True(t, got.TerminalStop)
	assert.True(t, got.InternalStop)
	assert.True(t, got.Unknown)
	assert.False(t, got.Ambiguous)

	got = detect("DVLB")
	require.Equal(t, TypeProtein, got.Type)
	assert.False(t, got.InitialMet)
	assert.False(t, got.TerminalStop)
	assert.False(t, got.InternalStop)
	assert.True(t, got.Ambiguous)
}

func TestNucleotideUniversalFlags(t *testing.T) {
	got := detect("ACGTN")
	assert.True(t, got.Unknown)
	assert.False(t, got.Ambiguous)

	got = detect("ACGTACGTAR")
	require.Equal(t, TypeDNA, got.Type)
	assert.True(t, got.Ambiguous)
}
