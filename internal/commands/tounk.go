// internal/commands/tounk.go
package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"seqstat/internal/writers"

	"seqstat-core/fasta"
)

func defaultNucleotideIrregulars() string {
	var b strings.Builder
	for c := 'A'; c <= 'Z'; c++ {
		if !strings.ContainsRune("ACGTN", c) {
			b.WriteRune(c)
			b.WriteRune(c + 'a' - 'A')
		}
	}
	return b.String()
}

// NewTounkCmd builds the irregular-residue normalizing command.
func NewTounkCmd(ctx *Context) *cobra.Command {
	var (
		seqType string
		lower   bool
		nir     string
		pir     string
		nunk    string
		punk    string
	)
	cmd := &cobra.Command{
		Use:   "tounk [file...]",
		Short: "Convert irregular residues to the unknown character",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(nunk) != 1 || len(punk) != 1 {
				return usagef("unknown characters must be single letters")
			}
			var irr string
			var unk byte
			switch {
			case seqType == "":
				return usagef("tounk needs a sequence type (-t n|p)")
			case seqType[0] == 'n' || seqType[0] == 'd':
				irr, unk = nir, nunk[0]
			case seqType[0] == 'p' || seqType[0] == 'a':
				irr, unk = pir, punk[0]
			default:
				return usagef("unknown sequence type %q", seqType)
			}

			var trans [256]byte
			for i := range trans {
				trans[i] = byte(i)
			}
			for i := 0; i < len(irr); i++ {
				trans[irr[i]] = unk
			}
			if lower {
				for c := byte('a'); c <= 'z'; c++ {
					trans[c] = unk
				}
			}

			out := cmd.OutOrStdout()
			return forEachRecord(args, func(rec *fasta.Record) error {
				b := []byte(rec.Seq)
				for i, c := range b {
					b[i] = trans[c]
				}
				rec.Seq = string(b)
				return writers.WriteRecord(out, rec, ctx.Width())
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&seqType, "type", "t", "", "sequence type (n or p)")
	fl.BoolVarP(&lower, "lc", "l", false, "also convert lowercase letters to unknown")
	fl.StringVar(&nir, "nir", defaultNucleotideIrregulars(), "nucleotide irregulars")
	fl.StringVar(&pir, "pir", "BJOUXZbjouxz", "protein irregulars")
	fl.StringVar(&nunk, "nunk", "N", "nucleotide unknown character")
	fl.StringVar(&punk, "punk", "X", "protein unknown character")
	return cmd
}
