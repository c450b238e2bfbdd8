// internal/commands/fasta2csv.go
package commands

import (
	"encoding/csv"

	"github.com/spf13/cobra"

	"seqstat-core/fasta"
)

// NewFasta2csvCmd builds the FASTA-to-CSV conversion command.
func NewFasta2csvCmd(ctx *Context) *cobra.Command {
	var (
		delimiter   string
		writeHeader bool
		fields      []string
	)
	cmd := &cobra.Command{
		Use:   "fasta2csv [file...]",
		Short: "Convert FASTA input to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(delimiter) != 1 {
				return usagef("delimiter must be a single character")
			}
			w := csv.NewWriter(cmd.OutOrStdout())
			w.Comma = rune(delimiter[0])

			if writeHeader {
				head := []string{"header", "seq"}
				if len(fields) > 0 {
					head = append(append([]string(nil), fields...), "seq")
				}
				if err := w.Write(head); err != nil {
					return err
				}
			}
			err := forEachRecord(args, func(rec *fasta.Record) error {
				var row []string
				if len(fields) > 0 {
					hf := rec.Fields()
					for _, f := range fields {
						row = append(row, hf.LookupDefault(f, ""))
					}
				} else {
					row = []string{rec.Header}
				}
				return w.Write(append(row, rec.Seq))
			})
			if err != nil {
				return err
			}
			w.Flush()
			return w.Error()
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&delimiter, "delimiter", "d", ",", "output field delimiter")
	fl.BoolVarP(&writeHeader, "header", "r", false, "write a column-name row first")
	fl.StringSliceVarP(&fields, "fields", "f", nil, "extract the given fields from the header")
	return cmd
}
