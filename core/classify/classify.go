// core/classify/classify.go
package classify

import (
	"seqstat-core/alphabet"
)

// Type is the molecule-type verdict for one record.
type Type string

const (
	TypeDNA       Type = "dna"
	TypeRNA       Type = "rna"
	TypeProtein   Type = "prot"
	TypeAmbiguous Type = "ambiguous"
	TypeIllegal   Type = "illegal"
)

// Frequency maps a residue symbol to its occurrence count.
type Frequency map[byte]int

// Count tallies the residues of seq without case folding.
func Count(seq string) Frequency {
	f := make(Frequency, 32)
	for i := 0; i < len(seq); i++ {
		f[seq[i]]++
	}
	return f
}

// Fold merges lower- and uppercase counts into uppercase keys.
func (f Frequency) Fold() Frequency {
	out := make(Frequency, len(f))
	for c, n := range f {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[c] += n
	}
	return out
}

// Total is the summed residue count.
func (f Frequency) Total() int {
	n := 0
	for _, v := range f {
		n += v
	}
	return n
}

func (f Frequency) within(s alphabet.Set) bool {
	for c := range f {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

func (f Frequency) hitsAny(s alphabet.Set) bool {
	for c := range f {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// Classifier resolves a case-folded frequency table to exactly one Type.
type Classifier struct {
	Alpha alphabet.Alphabet
}

// nucleotideFraction is the share of residues drawn from ACGTUN.
func (f Frequency) nucleotideFraction() float64 {
	total := f.Total()
	if total == 0 {
		return 0
	}
	nuc := 0
	for _, c := range []byte("ACGTUN") {
		nuc += f[c]
	}
	return float64(nuc) / float64(total)
}

// Type applies the ordered rule set. The order is a deliberate tie-break
// over overlapping alphabets; reordering changes outcomes for inputs
// holding both ambiguity codes and a minority of nucleotide-only symbols.
func (c Classifier) Type(f Frequency) Type {
	protein := c.Alpha.Protein.Union(c.Alpha.ProteinAmbiguous)
	switch {
	case f.within(c.Alpha.DNA):
		return TypeDNA
	case f.within(c.Alpha.RNA):
		return TypeRNA
	case f.hitsAny(c.Alpha.ProteinExclusive):
		if f.within(protein) {
			return TypeProtein
		}
		return TypeIllegal
	case f.within(protein):
		if f.nucleotideFraction() > 0.8 {
			if f['U'] > 0 {
				return TypeRNA
			}
			return TypeDNA
		}
		return TypeAmbiguous
	default:
		return TypeIllegal
	}
}
