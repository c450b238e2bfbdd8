// core/fasta/record.go
package fasta

import (
	"strings"

	"seqstat-core/alphabet"
)

// Record is one parsed FASTA entry. Seq is mutated in place by the
// degapping and case-folding steps of the classification pipeline; a
// Record is owned by exactly one consumer at a time.
type Record struct {
	Header string
	Seq    string
}

// Ungap strips every gap symbol from the sequence. Stripping an already
// gap-free sequence is a no-op.
func (r *Record) Ungap(gaps alphabet.Set) {
	if !containsAnySet(r.Seq, gaps) {
		return
	}
	var b strings.Builder
	b.Grow(len(r.Seq))
	for i := 0; i < len(r.Seq); i++ {
		if !gaps.Has(r.Seq[i]) {
			b.WriteByte(r.Seq[i])
		}
	}
	r.Seq = b.String()
}

func containsAnySet(s string, set alphabet.Set) bool {
	for i := 0; i < len(s); i++ {
		if set.Has(s[i]) {
			return true
		}
	}
	return false
}

// UpperSeq folds the sequence to uppercase.
func (r *Record) UpperSeq() { r.Seq = strings.ToUpper(r.Seq) }

// UpperHeader folds the header to uppercase.
func (r *Record) UpperHeader() { r.Header = strings.ToUpper(r.Header) }

var revcomp = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	const from = "acgtACGT"
	const to = "tgcaTGCA"
	for i := 0; i < len(from); i++ {
		t[from[i]] = to[i]
	}
	return t
}()

// RevComp returns the reverse complement of seq. Symbols without a
// complement pass through unchanged.
func RevComp(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[len(seq)-1-i] = revcomp[seq[i]]
	}
	return string(out)
}

// Wrap renders the record as FASTA text with the sequence folded at
// width columns. width <= 0 leaves the sequence on one line.
func (r *Record) Wrap(width int) string {
	var b strings.Builder
	b.WriteByte('>')
	b.WriteString(r.Header)
	if width <= 0 {
		b.WriteByte('\n')
		b.WriteString(r.Seq)
		return b.String()
	}
	for i := 0; i < len(r.Seq); i += width {
		end := i + width
		if end > len(r.Seq) {
			end = len(r.Seq)
		}
		b.WriteByte('\n')
		b.WriteString(r.Seq[i:end])
	}
	return b.String()
}
