// internal/commands/fstat.go
package commands

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"seqstat-core/classify"
	"seqstat-core/fasta"
)

// NewFstatCmd builds the file-level character statistics command.
func NewFstatCmd(ctx *Context) *cobra.Command {
	var ignoreCase bool
	cmd := &cobra.Command{
		Use:   "fstat [file...]",
		Short: "Total counts for file sequence characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := classify.Frequency{}
			nseqs := 0
			err := forEachRecord(args, func(rec *fasta.Record) error {
				nseqs++
				for i := 0; i < len(rec.Seq); i++ {
					counts[rec.Seq[i]]++
				}
				return nil
			})
			if err != nil {
				return err
			}
			if ignoreCase {
				counts = counts.Fold()
			}

			type kv struct {
				c byte
				n int
			}
			rows := make([]kv, 0, len(counts))
			for c, n := range counts {
				rows = append(rows, kv{c, n})
			}
			sort.Slice(rows, func(i, j int) bool {
				if rows[i].n != rows[j].n {
					return rows[i].n > rows[j].n
				}
				return rows[i].c < rows[j].c
			})

			out := cmd.OutOrStdout()
			nchars := counts.Total()
			for _, r := range rows {
				if _, err := fmt.Fprintf(out, "%c: %d %s\n", r.c, r.n, round4(float64(r.n)/float64(nchars))); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(out, "nseqs: %d\nnchars: %d\nmean length: %s\n",
				nseqs, nchars, round4(float64(nchars)/float64(nseqs))); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignorecase", "i", false, "merge cases when counting characters")
	return cmd
}

// round4 formats x rounded to four decimals without trailing zeros.
func round4(x float64) string {
	return strconv.FormatFloat(math.Round(x*1e4)/1e4, 'g', -1, 64)
}
