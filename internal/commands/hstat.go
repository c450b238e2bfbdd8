// internal/commands/hstat.go
package commands

import (
	"encoding/csv"
	"strconv"

	"github.com/spf13/cobra"

	"seqstat-core/fasta"
)

// NewHstatCmd builds the header statistics command.
func NewHstatCmd(ctx *Context) *cobra.Command {
	var (
		fields []string
		length bool
	)
	cmd := &cobra.Command{
		Use:   "hstat [file...]",
		Short: "Extract header fields (and sequence length) as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fields) == 0 {
				return usagef("hstat needs at least one header field (-f)")
			}
			w := csv.NewWriter(cmd.OutOrStdout())
			header := append([]string(nil), fields...)
			if length {
				header = append(header, "length")
			}
			if err := w.Write(header); err != nil {
				return err
			}
			err := forEachRecord(args, func(rec *fasta.Record) error {
				hf := rec.Fields()
				row := make([]string, 0, len(header))
				for _, f := range fields {
					v, err := hf.Lookup(f)
					if err != nil {
						return err
					}
					row = append(row, v)
				}
				if length {
					row = append(row, strconv.Itoa(len(rec.Seq)))
				}
				return w.Write(row)
			})
			if err != nil {
				return err
			}
			w.Flush()
			return w.Error()
		},
	}
	fl := cmd.Flags()
	fl.StringSliceVarP(&fields, "fields", "f", nil, "header fields to write")
	fl.BoolVarP(&length, "length", "l", false, "also report sequence length")
	return cmd
}
