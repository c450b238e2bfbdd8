// internal/commands/sniff.go
package commands

import (
	"github.com/spf13/cobra"

	"seqstat/internal/jsonutil"
	"seqstat/internal/report"
	"seqstat/pkg/api"

	"seqstat-core/fasta"
	"seqstat-core/summary"
)

// NewSniffCmd builds the classification-report command.
func NewSniffCmd(ctx *Context) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "sniff [file...]",
		Short: "Classify sequences and summarize type, case, and feature distributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return usagef("invalid --output %q (want text or json)", output)
			}
			agg := summary.New(ctx.Alpha)
			err := forEachRecord(args, func(rec *fasta.Record) error {
				agg.Add(rec)
				return nil
			})
			if err != nil {
				return err
			}
			rep := agg.Report()
			if output == "json" {
				if rep.HasDuplicateSequences() {
					ctx.Logger.Warn("sequences are not unique",
						"unique", rep.UniqueSequences, "total", rep.Total)
				}
				if rep.HasDuplicateHeaders() {
					ctx.Logger.Warn("headers are not unique",
						"unique", rep.UniqueHeaders, "total", rep.Total)
				}
				return jsonutil.EncodePretty(cmd.OutOrStdout(), toAPIReport(rep))
			}
			return report.Write(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVar(&output, "output", "text", "output format: text | json")
	return cmd
}

func toAPIReport(r summary.Report) api.SniffReportV1 {
	types := make(map[string]int, len(r.Types))
	for k, v := range r.Types {
		types[string(k)] = v
	}
	cases := make(map[string]int, len(r.Cases))
	for k, v := range r.Cases {
		cases[string(k)] = v
	}
	nfeat := make(map[string]int, len(r.NucleotideFeatures))
	for k, v := range r.NucleotideFeatures {
		nfeat[string(k)] = v
	}
	return api.SniffReportV1{
		TotalSequences:     r.Total,
		UniqueSequences:    r.UniqueSequences,
		UniqueHeaders:      r.UniqueHeaders,
		Types:              types,
		Cases:              cases,
		NucleotideFeatures: nfeat,
		ProteinFeatures:    r.ProteinFeatures,
		UniversalFeatures:  r.UniversalFeatures,
		NucleotideTotal:    r.NucleotideTotal(),
		ProteinTotal:       r.ProteinTotal(),
	}
}
