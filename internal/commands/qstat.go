// internal/commands/qstat.go
package commands

import (
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"seqstat-core/classify"
	"seqstat-core/fasta"
)

// NewQstatCmd builds the per-sequence statistics command.
func NewQstatCmd(ctx *Context) *cobra.Command {
	var (
		fields      []string
		masked      bool
		ignoreCase  bool
		startOffset int
		endOffset   int
	)
	cmd := &cobra.Command{
		Use:   "qstat [file...]",
		Short: "Per-sequence residue counts as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			type result struct {
				fields []string
				counts classify.Frequency
				masked int
			}
			var results []result

			err := forEachRecord(args, func(rec *fasta.Record) error {
				var fv []string
				hf := rec.Fields()
				for _, f := range fields {
					fv = append(fv, hf.LookupDefault(f, "NA"))
				}

				seq := rec.Seq
				a, b := startOffset, len(seq)-endOffset
				if a < 0 {
					a = 0
				}
				if a > len(seq) {
					a = len(seq)
				}
				if b < a {
					b = a
				}
				counts := classify.Count(seq[a:b])

				nmasked := 0
				if masked {
					for c, n := range counts {
						if 'a' <= c && c <= 'z' {
							nmasked += n
						}
					}
				}
				if ignoreCase {
					counts = counts.Fold()
				}
				results = append(results, result{fields: fv, counts: counts, masked: nmasked})
				return nil
			})
			if err != nil {
				return err
			}

			// Union of observed characters across the whole file.
			charSet := map[byte]bool{}
			for _, r := range results {
				for c := range r.counts {
					charSet[c] = true
				}
			}
			chars := make([]byte, 0, len(charSet))
			for c := range charSet {
				chars = append(chars, c)
			}
			sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

			header := append([]string{"length"}, fields...)
			if masked {
				header = append(header, "masked")
			}
			for _, c := range chars {
				header = append(header, string(c))
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.Write(header); err != nil {
				return err
			}
			for _, r := range results {
				row := []string{strconv.Itoa(r.counts.Total())}
				row = append(row, r.fields...)
				if masked {
					row = append(row, strconv.Itoa(r.masked))
				}
				for _, c := range chars {
					row = append(row, strconv.Itoa(r.counts[c]))
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		},
	}
	fl := cmd.Flags()
	fl.StringSliceVarP(&fields, "fields", "f", nil, "header fields identifying each sequence")
	fl.BoolVarP(&masked, "masked", "m", false, "count masked (lowercase) characters")
	fl.BoolVarP(&ignoreCase, "ignorecase", "i", false, "merge cases when counting characters")
	fl.IntVarP(&startOffset, "start-offset", "s", 0, "letters to ignore at the beginning")
	fl.IntVarP(&endOffset, "end-offset", "e", 0, "letters to ignore at the end")
	return cmd
}
