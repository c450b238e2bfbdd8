// core/summary/summary.go
package summary

import (
	"crypto/md5"

	"seqstat-core/alphabet"
	"seqstat-core/classify"
	"seqstat-core/fasta"
)

// Universal feature keys.
const (
	FeatGapped    = "gapped"
	FeatUnknown   = "unknown"
	FeatAmbiguous = "ambiguous"
)

// Protein feature keys.
const (
	FeatSelenocysteine = "selenocysteine"
	FeatInitialMet     = "initial-Met"
	FeatInternalStop   = "internal-stop"
	FeatTerminalStop   = "terminal-stop"
)

// ProteinFeatureOrder is the report order for protein features.
var ProteinFeatureOrder = []string{
	FeatSelenocysteine, FeatInitialMet, FeatInternalStop, FeatTerminalStop,
}

// UniversalFeatureOrder is the report order for universal features.
var UniversalFeatureOrder = []string{FeatGapped, FeatUnknown, FeatAmbiguous}

// TypeOrder is the report order for molecule types.
var TypeOrder = []classify.Type{
	classify.TypeProtein, classify.TypeDNA, classify.TypeRNA,
	classify.TypeIllegal, classify.TypeAmbiguous,
}

// CaseOrder is the report order for case classes.
var CaseOrder = []classify.Case{
	classify.CaseUpper, classify.CaseLower, classify.CaseMixed,
}

// Report is the aggregate outcome of one run. It is a plain value;
// rendering lives with the caller.
type Report struct {
	Total int

	// Unique md5 digests of raw sequence and header bytes, for duplicate
	// detection.
	UniqueSequences int
	UniqueHeaders   int

	Types              map[classify.Type]int
	Cases              map[classify.Case]int
	NucleotideFeatures map[classify.ORF]int
	ProteinFeatures    map[string]int
	UniversalFeatures  map[string]int
}

// NucleotideTotal is the governing total for the ORF distribution.
func (r *Report) NucleotideTotal() int {
	return r.Types[classify.TypeDNA] + r.Types[classify.TypeRNA]
}

// ProteinTotal is the governing total for the protein feature distribution.
func (r *Report) ProteinTotal() int { return r.Types[classify.TypeProtein] }

// HasDuplicateSequences reports whether two records shared sequence bytes.
func (r *Report) HasDuplicateSequences() bool { return r.UniqueSequences < r.Total }

// HasDuplicateHeaders reports whether two records shared a header.
func (r *Report) HasDuplicateHeaders() bool { return r.UniqueHeaders < r.Total }

// HasIllegal reports whether any record classified as illegal.
func (r *Report) HasIllegal() bool { return r.Types[classify.TypeIllegal] > 0 }

// Aggregator folds per-record classification results into file-level
// distributions. It is the sole mutable accumulator of a run and is not
// safe for concurrent use.
type Aggregator struct {
	det        classify.Detector
	seqDigests map[[md5.Size]byte]struct{}
	hdrDigests map[[md5.Size]byte]struct{}
	report     Report
}

// New returns an empty aggregator classifying with alpha.
func New(alpha alphabet.Alphabet) *Aggregator {
	a := &Aggregator{
		det:        classify.Detector{Alpha: alpha},
		seqDigests: make(map[[md5.Size]byte]struct{}),
		hdrDigests: make(map[[md5.Size]byte]struct{}),
	}
	a.report = Report{
		Types:              make(map[classify.Type]int),
		Cases:              make(map[classify.Case]int),
		NucleotideFeatures: make(map[classify.ORF]int),
		ProteinFeatures:    make(map[string]int),
		UniversalFeatures:  make(map[string]int),
	}
	// Feature distributions report zero categories too.
	for _, o := range classify.AllORF {
		a.report.NucleotideFeatures[o] = 0
	}
	for _, k := range ProteinFeatureOrder {
		a.report.ProteinFeatures[k] = 0
	}
	for _, k := range UniversalFeatureOrder {
		a.report.UniversalFeatures[k] = 0
	}
	return a
}

// Add classifies one record and folds it into the running report. Digests
// are taken over the raw bytes before any degapping. The returned
// Features echo the per-record verdict for callers that stream both.
func (a *Aggregator) Add(rec *fasta.Record) classify.Features {
	a.seqDigests[md5.Sum([]byte(rec.Seq))] = struct{}{}
	a.hdrDigests[md5.Sum([]byte(rec.Header))] = struct{}{}
	a.report.Total++

	feat := a.det.Detect(rec)
	a.report.Types[feat.Type]++
	a.report.Cases[feat.Case]++
	if feat.Gapped {
		a.report.UniversalFeatures[FeatGapped]++
	}

	switch feat.Type {
	case classify.TypeProtein:
		count(a.report.UniversalFeatures, FeatUnknown, feat.Unknown)
		count(a.report.UniversalFeatures, FeatAmbiguous, feat.Ambiguous)
		count(a.report.ProteinFeatures, FeatSelenocysteine, feat.Selenocysteine)
		count(a.report.ProteinFeatures, FeatInitialMet, feat.InitialMet)
		count(a.report.ProteinFeatures, FeatTerminalStop, feat.TerminalStop)
		count(a.report.ProteinFeatures, FeatInternalStop, feat.InternalStop)
	case classify.TypeDNA, classify.TypeRNA:
		count(a.report.UniversalFeatures, FeatUnknown, feat.Unknown)
		count(a.report.UniversalFeatures, FeatAmbiguous, feat.Ambiguous)
		a.report.NucleotideFeatures[feat.ORF]++
	}
	return feat
}

func count(dist map[string]int, key string, hit bool) {
	if hit {
		dist[key]++
	}
}

// Report snapshots the aggregate state. Call after the stream is
// exhausted; the result is independent of later Adds.
func (a *Aggregator) Report() Report {
	r := a.report
	r.UniqueSequences = len(a.seqDigests)
	r.UniqueHeaders = len(a.hdrDigests)
	r.Types = copyMap(a.report.Types)
	r.Cases = copyMap(a.report.Cases)
	r.NucleotideFeatures = copyMap(a.report.NucleotideFeatures)
	r.ProteinFeatures = copyMap(a.report.ProteinFeatures)
	r.UniversalFeatures = copyMap(a.report.UniversalFeatures)
	return r
}

func copyMap[K comparable](m map[K]int) map[K]int {
	out := make(map[K]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
