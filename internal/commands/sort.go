// internal/commands/sort.go
package commands

import (
	"sort"

	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewSortCmd builds the field-sorting command.
func NewSortCmd(ctx *Context) *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "sort [file...]",
		Short: "Sort entries by header fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fields) == 0 {
				return usagef("sort needs at least one header field (-f)")
			}
			recs, err := collectRecords(args)
			if err != nil {
				return err
			}
			type keyed struct {
				key []string
				rec *fasta.Record
			}
			rows := make([]keyed, len(recs))
			for i, rec := range recs {
				hf := rec.Fields()
				key := make([]string, len(fields))
				for j, f := range fields {
					key[j] = hf.LookupDefault(f, "")
				}
				rows[i] = keyed{key: key, rec: rec}
			}
			sort.SliceStable(rows, func(i, j int) bool {
				return lessKey(rows[i].key, rows[j].key)
			})
			out := cmd.OutOrStdout()
			for _, row := range rows {
				if err := writers.WriteRecord(out, row.rec, ctx.Width()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "header fields to sort by")
	return cmd
}

func lessKey(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
