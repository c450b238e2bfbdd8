// internal/commands/prettyprint.go
package commands

import (
	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewPrettyprintCmd builds the column-rewrapping command.
func NewPrettyprintCmd(ctx *Context) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "prettyprint [file...]",
		Short: "Rewrap sequences in neat columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := width
			if !cmd.Flags().Changed("cwidth") {
				w = ctx.Width()
			}
			if w < 1 {
				return usagef("column width must be positive")
			}
			out := cmd.OutOrStdout()
			return forEachRecord(args, func(rec *fasta.Record) error {
				return writers.WriteRecord(out, rec, w)
			})
		},
	}
	cmd.Flags().IntVarP(&width, "cwidth", "w", 60, "output column width")
	return cmd
}
