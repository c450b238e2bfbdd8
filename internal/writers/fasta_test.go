// internal/writers/fasta_test.go
package writers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqstat-core/fasta"
)

func TestWriteRecordWraps(t *testing.T) {
	var b bytes.Buffer
	rec := &fasta.Record{Header: "a", Seq: "ACGTACGTA"}
	require.NoError(t, WriteRecord(&b, rec, 4))
	assert.Equal(t, ">a\nACGT\nACGT\nA\n", b.String())
}

func TestWriteRecordUnwrapped(t *testing.T) {
	var b bytes.Buffer
	rec := &fasta.Record{Header: "a", Seq: "ACGTACGTA"}
	require.NoError(t, WriteRecord(&b, rec, 0))
	assert.Equal(t, ">a\nACGTACGTA\n", b.String())
}
