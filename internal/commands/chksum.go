// internal/commands/chksum.go
package commands

import (
	"crypto/md5"
	"fmt"
	"hash"

	"github.com/spf13/cobra"

	"seqstat-core/fasta"
)

// NewChksumCmd builds the md5 checksum command.
func NewChksumCmd(ctx *Context) *cobra.Command {
	var (
		ignoreCase bool
		wholeFile  bool
		eachSeq    bool
		allSeqs    bool
		allHeaders bool
	)
	cmd := &cobra.Command{
		Use:   "chksum [file...]",
		Short: "Calculate md5 checksums for the input sequences",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sum := md5.New()

			update := func(h hash.Hash, rec *fasta.Record) {
				switch {
				case allSeqs:
					h.Write([]byte(rec.Seq))
				case allHeaders:
					h.Write([]byte(rec.Header))
				default: // whole file: header-sequence pairs
					h.Write([]byte(rec.Header))
					h.Write([]byte{'\n'})
					h.Write([]byte(rec.Seq))
				}
			}

			err := forEachRecord(args, func(rec *fasta.Record) error {
				if ignoreCase {
					// The header participates in the digest for the default
					// whole-file mode and for -d.
					if allHeaders || (!eachSeq && !allSeqs) {
						rec.UpperHeader()
					}
					if !allHeaders {
						rec.UpperSeq()
					}
				}
				if eachSeq {
					_, werr := fmt.Fprintf(out, "%s\t%x\n", rec.Header, md5.Sum([]byte(rec.Seq)))
					return werr
				}
				update(sum, rec)
				return nil
			})
			if err != nil {
				return err
			}
			if !eachSeq {
				if _, err := fmt.Fprintf(out, "%x\n", sum.Sum(nil)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.BoolVarP(&ignoreCase, "ignore-case", "i", false, "convert to uppercase before hashing")
	fl.BoolVarP(&wholeFile, "whole-file", "w", false, "single md5 over all headers and sequences (default)")
	fl.BoolVarP(&eachSeq, "each-sequence", "q", false, "md5 per sequence as a tab-delimited list")
	fl.BoolVarP(&allSeqs, "all-sequences", "s", false, "single md5 over all sequences")
	fl.BoolVarP(&allHeaders, "all-headers", "d", false, "single md5 over all headers")
	cmd.MarkFlagsMutuallyExclusive("whole-file", "each-sequence", "all-sequences", "all-headers")
	return cmd
}
