// internal/commands/subseq.go
package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewSubseqCmd builds the subsequence extraction command.
func NewSubseqCmd(ctx *Context) *cobra.Command {
	var revcomp bool
	cmd := &cobra.Command{
		Use:   "subseq <from> <to> [file...]",
		Short: "Extract a 1-based subsequence from each entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return usagef("bad lower bound %q", args[0])
			}
			b, err := strconv.Atoi(args[1])
			if err != nil {
				return usagef("bad upper bound %q", args[1])
			}
			if a > b && !revcomp {
				return usagef("lower bound %d exceeds upper bound %d (reverse complement? see --revcomp)", a, b)
			}

			out := cmd.OutOrStdout()
			return forEachRecord(args[2:], func(rec *fasta.Record) error {
				lo, hi := a, b
				rc := false
				if lo > hi {
					lo, hi = hi, lo
					rc = true
				}
				if lo < 1 {
					lo = 1
				}
				if hi > len(rec.Seq) {
					hi = len(rec.Seq)
				}
				sub := ""
				if lo <= hi {
					sub = rec.Seq[lo-1 : hi]
				}
				if rc {
					sub = fasta.RevComp(sub)
				}
				rec.Seq = sub
				return writers.WriteRecord(out, rec, ctx.Width())
			})
		},
	}
	cmd.Flags().BoolVarP(&revcomp, "revcomp", "r", false, "take the reverse complement when from > to")
	return cmd
}
