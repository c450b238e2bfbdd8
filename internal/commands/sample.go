// internal/commands/sample.go
package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"seqstat/internal/writers"
)

// NewSampleCmd builds the random sampling command.
func NewSampleCmd(ctx *Context) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "sample <n> [file...]",
		Short: "Randomly select n entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return usagef("bad sample size %q", args[0])
			}
			recs, err := collectRecords(args[1:])
			if err != nil {
				return err
			}
			if n > len(recs) {
				n = len(recs)
			}
			rng := newRand(seed)
			out := cmd.OutOrStdout()
			for _, i := range rng.Perm(len(recs))[:n] {
				if err := writers.WriteRecord(out, recs[i], ctx.Width()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", -1, "random seed (negative for time-based)")
	return cmd
}
