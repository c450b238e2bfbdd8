// core/classify/features.go
package classify

import (
	"strings"

	"seqstat-core/alphabet"
	"seqstat-core/fasta"
)

// Case is the letter-case class of one record.
type Case string

const (
	CaseUpper Case = "uppercase"
	CaseLower Case = "lowercase"
	CaseMixed Case = "mixedcase"
)

// ORF names the open-reading-frame shape of a nucleotide record. The nine
// categories are mutually exclusive by the ordered guards in orfClass.
type ORF string

const (
	ORFStartCodingStop   ORF = "start|coding|stop"
	ORFStartCoding       ORF = "start|coding"
	ORFStartNonsenseStop ORF = "start|nonsense|stop"
	ORFStartNonsense     ORF = "start|nonsense"
	ORFCodingStop        ORF = "coding|stop"
	ORFStartNStop        ORF = "start|n|stop"
	ORFStart             ORF = "start"
	ORFStop              ORF = "stop"
	ORFNotCDS            ORF = "not-CDS"
)

// AllORF lists every category in report order.
var AllORF = []ORF{
	ORFStartCodingStop, ORFStartCoding, ORFStartNonsenseStop,
	ORFStartNonsense, ORFCodingStop, ORFStartNStop,
	ORFStart, ORFStop, ORFNotCDS,
}

// Features is the per-record classification outcome. Fields beyond Type,
// Case and Gapped are type-conditional: the protein block is meaningful
// only for TypeProtein, ORF only for TypeDNA/TypeRNA.
type Features struct {
	Type   Type
	Case   Case
	Gapped bool

	// Universal (protein X / nucleotide N, per-type ambiguity codes)
	Unknown   bool
	Ambiguous bool

	// Protein
	Selenocysteine bool
	InitialMet     bool
	TerminalStop   bool
	InternalStop   bool

	// Nucleotide
	ORF ORF
}

// Detector runs gap handling, case folding, type classification, and
// type-specific feature extraction for one record.
type Detector struct {
	Alpha alphabet.Alphabet
}

// Detect classifies rec. A gapped record is degapped in place and
// reclassified before feature detection; downstream owners see the
// cleaned sequence.
func (d Detector) Detect(rec *fasta.Record) Features {
	var out Features

	freq := Count(rec.Seq)
	if freq.hitsAny(d.Alpha.Gap) {
		out.Gapped = true
		rec.Ungap(d.Alpha.Gap)
		freq = Count(rec.Seq)
	}

	out.Case = caseClass(freq)
	if out.Case != CaseUpper {
		// Case must never alter classification; fold before typing.
		freq = freq.Fold()
	}

	out.Type = Classifier{Alpha: d.Alpha}.Type(freq)

	switch out.Type {
	case TypeProtein:
		out.Unknown = freq['X'] > 0
		out.Ambiguous = freq.hitsAny(d.Alpha.ProteinAmbiguous)
		out.Selenocysteine = freq['U'] > 0
		out.InitialMet = len(rec.Seq) > 0 && upper(rec.Seq[0]) == 'M'
		tstop := len(rec.Seq) > 0 && rec.Seq[len(rec.Seq)-1] == '*'
		out.TerminalStop = tstop
		stops := freq['*']
		if tstop {
			stops--
		}
		out.InternalStop = stops > 0
	case TypeDNA, TypeRNA:
		out.Unknown = freq['N'] > 0
		out.Ambiguous = freq.hitsAny(d.Alpha.NucleotideAmbiguous)
		out.ORF = d.orfClass(rec.Seq)
	}
	return out
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func caseClass(f Frequency) Case {
	var hasLower, hasUpper bool
	for c := range f {
		switch {
		case 'a' <= c && c <= 'z':
			hasLower = true
		case 'A' <= c && c <= 'Z':
			hasUpper = true
		}
	}
	switch {
	case hasLower && hasUpper:
		return CaseMixed
	case hasLower:
		return CaseLower
	default:
		return CaseUpper
	}
}

// orfClass partitions a nucleotide sequence into one of the nine ORF
// categories. The guards are evaluated strictly in order; later branches
// are unreachable once an earlier one matches even where their own
// conditions would hold.
func (d Detector) orfClass(seq string) ORF {
	up := strings.ToUpper(seq)
	n := len(up)
	triple := n%3 == 0

	// Non-overlapping codons from position 0; an incomplete final codon
	// is excluded.
	var codons []string
	for i := 0; i+3 <= n; i += 3 {
		codons = append(codons, up[i:i+3])
	}

	var start, stopLast, internalStop bool
	if len(codons) > 0 {
		start = d.Alpha.Start[codons[0]]
		stopLast = d.Alpha.Stop[codons[len(codons)-1]]
		for _, c := range codons[:len(codons)-1] {
			if d.Alpha.Stop[c] {
				internalStop = true
				break
			}
		}
	}
	terminalStop3 := n >= 3 && d.Alpha.Stop[up[n-3:]]

	switch {
	case start && triple && stopLast && !internalStop:
		return ORFStartCodingStop
	case start && triple && stopLast && internalStop:
		return ORFStartNonsenseStop
	case start && triple && !stopLast && !internalStop:
		return ORFStartCoding
	case start && triple && !stopLast && internalStop:
		return ORFStartNonsense
	case !start && terminalStop3 && triple && !internalStop:
		return ORFCodingStop
	case start && terminalStop3 && !triple:
		return ORFStartNStop
	case start && !terminalStop3:
		return ORFStart
	case !start && !terminalStop3:
		return ORFStop
	default:
		return ORFNotCDS
	}
}
