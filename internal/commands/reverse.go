// internal/commands/reverse.go
package commands

import (
	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewReverseCmd builds the sequence-reversing command.
func NewReverseCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [file...]",
		Short: "Reverse each sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return forEachRecord(args, func(rec *fasta.Record) error {
				b := []byte(rec.Seq)
				for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
					b[i], b[j] = b[j], b[i]
				}
				rec.Seq = string(b)
				return writers.WriteRecord(out, rec, ctx.Width())
			})
		},
	}
}
