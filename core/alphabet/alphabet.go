// core/alphabet/alphabet.go
package alphabet

import "strings"

// Set is a membership table over single-byte residue symbols.
// Sets are values; copying one copies the whole table, so a Set handed out
// by Default cannot be mutated behind the caller's back.
type Set [256]bool

// NewSet builds a Set from the bytes of chars.
func NewSet(chars string) Set {
	var s Set
	for i := 0; i < len(chars); i++ {
		s[chars[i]] = true
	}
	return s
}

// Has reports whether c is in the set.
func (s Set) Has(c byte) bool { return s[c] }

// Union returns the set union of s and o.
func (s Set) Union(o Set) Set {
	for i, ok := range o {
		if ok {
			s[i] = true
		}
	}
	return s
}

// Codons is a membership table over 3-letter codons (uppercase).
type Codons map[string]bool

// Has reports whether the codon (any case) is in the table.
func (c Codons) Has(codon string) bool { return c[strings.ToUpper(codon)] }

// Alphabet bundles the residue and codon tables the classifier and
// feature detector work from. Obtain one from Default; the zero value is
// not useful.
//
// Classification always runs on upper-cased frequency keys, so all sets
// hold uppercase symbols only.
type Alphabet struct {
	DNA     Set // A C G T N
	RNA     Set // A C G U N
	Protein Set // 20 amino acids + selenocysteine U, unknown X, stop *

	// ProteinExclusive are residues never valid in a nucleotide sequence.
	ProteinExclusive Set // E F I L Q P X J Z *
	// ProteinAmbiguous are the protein-only ambiguity codes.
	ProteinAmbiguous Set // B Z J
	// NucleotideAmbiguous are the IUPAC nucleotide ambiguity codes, all of
	// which double as plausible amino-acid symbols.
	NucleotideAmbiguous Set // R Y S W K M D B H V

	Gap Set // . - _

	Start Codons // ATG, AUG
	Stop  Codons // TAA TAG TGA UAA UAG UGA
}

// Default returns the standard alphabet. Each call returns an independent
// value so callers may embed it in their own configuration.
func Default() Alphabet {
	return Alphabet{
		DNA:                 NewSet("ACGTN"),
		RNA:                 NewSet("ACGUN"),
		Protein:             NewSet("ACDEFGHIKLMNPQRSTUVWYX*"),
		ProteinExclusive:    NewSet("EFILQPXJZ*"),
		ProteinAmbiguous:    NewSet("BZJ"),
		NucleotideAmbiguous: NewSet("RYSWKMDBHV"),
		Gap:                 NewSet(".-_"),
		Start:               Codons{"ATG": true, "AUG": true},
		Stop: Codons{
			"TAA": true, "TAG": true, "TGA": true,
			"UAA": true, "UAG": true, "UGA": true,
		},
	}
}
