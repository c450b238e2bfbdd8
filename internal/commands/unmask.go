// internal/commands/unmask.go
package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewUnmaskCmd builds the case-normalizing command.
func NewUnmaskCmd(ctx *Context) *cobra.Command {
	var toX bool
	cmd := &cobra.Command{
		Use:   "unmask [file...]",
		Short: "Convert masked (lowercase) letters to uppercase",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return forEachRecord(args, func(rec *fasta.Record) error {
				if toX {
					rec.Seq = strings.Map(func(r rune) rune {
						if 'a' <= r && r <= 'z' {
							return 'X'
						}
						return r
					}, rec.Seq)
				} else {
					rec.UpperSeq()
				}
				return writers.WriteRecord(out, rec, ctx.Width())
			})
		},
	}
	cmd.Flags().BoolVarP(&toX, "to-x", "x", false, "convert lowercase letters to X instead")
	return cmd
}
