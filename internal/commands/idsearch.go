// internal/commands/idsearch.go
package commands

import (
	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewIdsearchCmd builds the exact field/value lookup command.
func NewIdsearchCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "idsearch <field> <value> [file...]",
		Short: "Print entries whose header field has the given value",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, value := args[0], args[1]
			out := cmd.OutOrStdout()
			return forEachRecord(args[2:], func(rec *fasta.Record) error {
				if v, err := rec.Fields().Lookup(field); err != nil || v != value {
					return nil
				}
				return writers.WriteRecord(out, rec, ctx.Width())
			})
		},
	}
}
