package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqstat-core/alphabet"
	"seqstat-core/fasta"
	"seqstat-core/summary"
)

func render(t *testing.T, recs ...*fasta.Record) string {
	t.Helper()
	agg := summary.New(alphabet.Default())
	for _, r := range recs {
		agg.Add(r)
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, agg.Report()))
	return buf.String()
}

func TestAllOneValueCollapse(t *testing.T) {
	out := render(t,
		&fasta.Record{Header: "a", Seq: "ACGT"},
		&fasta.Record{Header: "b", Seq: "GGTT"},
	)
	assert.Contains(t, out, "All dna")
	assert.Contains(t, out, "All uppercase")
	assert.Contains(t, out, "Total sequences: 2")
	assert.NotContains(t, out, "Protein Features", "zero governing total suppresses the block")
	assert.Contains(t, out, "Nucleotide Features:")
}

func TestMixedDistribution(t *testing.T) {
	out := render(t,
		&fasta.Record{Header: "a", Seq: "ACGT"},
		&fasta.Record{Header: "b", Seq: "GAUACA"},
		&fasta.Record{Header: "c", Seq: "MDVLF"},
		&fasta.Record{Header: "d", Seq: "MDVLF2"},
	)
	assert.Contains(t, out, "Sequence types:")
	assert.Contains(t, out, "WARNING: illegal characters found")
	// dna/rna/prot/illegal each at 25%.
	assert.Contains(t, out, "25.0000%")
}

func TestDuplicateWarnings(t *testing.T) {
	out := render(t,
		&fasta.Record{Header: "x", Seq: "ACGT"},
		&fasta.Record{Header: "y", Seq: "ACGT"},
		&fasta.Record{Header: "y", Seq: "GGTT"},
	)
	assert.Contains(t, out, "2 uniq sequences (3 total)")
	assert.Contains(t, out, "WARNING: headers are not unique (2/3)")
}

func TestSortedByDescendingCount(t *testing.T) {
	out := render(t,
		&fasta.Record{Header: "a", Seq: "ACGT"},
		&fasta.Record{Header: "b", Seq: "ACGA"},
		&fasta.Record{Header: "c", Seq: "MDVLF"},
	)
	di := strings.Index(out, "dna:")
	pi := strings.Index(out, "prot:")
	require.True(t, di >= 0 && pi >= 0, "both types rendered:\n%s", out)
	assert.Less(t, di, pi, "larger count listed first")
}
