// internal/writers/fasta.go
package writers

import (
	"fmt"
	"io"

	"seqstat-core/fasta"
)

// WriteRecord renders one record as FASTA text with the sequence wrapped
// at width columns (width <= 0 leaves it on one line).
func WriteRecord(w io.Writer, rec *fasta.Record, width int) error {
	_, err := fmt.Fprintln(w, rec.Wrap(width))
	return err
}
