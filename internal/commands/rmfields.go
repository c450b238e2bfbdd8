// internal/commands/rmfields.go
package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewRmfieldsCmd builds the header-reduction command.
func NewRmfieldsCmd(ctx *Context) *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "rmfields [file...]",
		Short: "Reduce each header to the given fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fields) == 0 {
				return usagef("rmfields needs at least one header field (-f)")
			}
			out := cmd.OutOrStdout()
			return forEachRecord(args, func(rec *fasta.Record) error {
				hf := rec.Fields()
				pairs := make([]string, 0, len(fields))
				for _, f := range fields {
					v, err := hf.Lookup(f)
					if err != nil {
						return err
					}
					pairs = append(pairs, f+"|"+v)
				}
				rec.Header = strings.Join(pairs, "|")
				return writers.WriteRecord(out, rec, ctx.Width())
			})
		},
	}
	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "header fields to retain")
	return cmd
}
