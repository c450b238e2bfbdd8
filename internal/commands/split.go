// internal/commands/split.go
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

// NewSplitCmd builds the multi-file splitting command.
func NewSplitCmd(ctx *Context) *cobra.Command {
	var (
		nfiles int
		prefix string
	)
	cmd := &cobra.Command{
		Use:   "split [file...]",
		Short: "Split input into k smaller FASTA files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nfiles < 1 {
				return usagef("number of output files must be positive")
			}
			recs, err := collectRecords(args)
			if err != nil {
				return err
			}
			chunk := len(recs)/nfiles + 1
			for i := 0; i < nfiles; i++ {
				begin := i * chunk
				end := (i + 1) * chunk
				if end > len(recs) {
					end = len(recs)
				}
				if begin > end {
					begin = end
				}
				name := fmt.Sprintf("%s%d.fasta", prefix, i)
				if err := writeChunk(name, recs[begin:end], ctx.Width()); err != nil {
					return err
				}
				ctx.Logger.Debug("wrote split file", "path", name, "records", end-begin)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&nfiles, "nfiles", "n", 1, "number of output files")
	fl.StringVarP(&prefix, "prefix", "p", "xxx", "prefix for output file names")
	return cmd
}

func writeChunk(name string, recs []*fasta.Record, width int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err := writers.WriteRecord(f, rec, width); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
