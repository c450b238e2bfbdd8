// internal/commands/search.go
package commands

import (
	"regexp"

	"github.com/spf13/cobra"

	"seqstat/internal/pretty"
	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewSearchCmd builds the regex search command.
func NewSearchCmd(ctx *Context) *cobra.Command {
	var (
		invert   bool
		matchSeq bool
		color    bool
	)
	cmd := &cobra.Command{
		Use:   "search <pattern> [file...]",
		Short: "Print entries matching a regular expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := regexp.Compile(args[0])
			if err != nil {
				return usagef("bad pattern %q: %v", args[0], err)
			}
			out := cmd.OutOrStdout()
			return forEachRecord(args[1:], func(rec *fasta.Record) error {
				text := rec.Header
				if matchSeq {
					text = rec.Seq
				}
				locs := prog.FindAllStringIndex(text, -1)
				if (locs == nil) != invert {
					return nil
				}
				width := ctx.Width()
				if color && !invert {
					if matchSeq {
						rec.Seq = pretty.Highlight(text, locs)
						// Escape codes do not survive wrapping.
						width = 0
					} else {
						rec.Header = pretty.Highlight(text, locs)
					}
				}
				return writers.WriteRecord(out, rec, width)
			})
		},
	}
	fl := cmd.Flags()
	fl.BoolVarP(&invert, "invert", "v", false, "print entries that do not match")
	fl.BoolVarP(&matchSeq, "seq", "q", false, "match against the sequence instead of the header")
	fl.BoolVarP(&color, "color", "c", false, "highlight matches")
	return cmd
}
