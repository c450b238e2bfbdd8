// pkg/api/report_v1.go
package api

// SniffReportV1 is the stable JSON schema for the classification report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SniffReportV1 struct {
	TotalSequences  int `json:"total_sequences"`
	UniqueSequences int `json:"unique_sequences"`
	UniqueHeaders   int `json:"unique_headers"`

	Types              map[string]int `json:"types"`
	Cases              map[string]int `json:"cases"`
	NucleotideFeatures map[string]int `json:"nucleotide_features"`
	ProteinFeatures    map[string]int `json:"protein_features"`
	UniversalFeatures  map[string]int `json:"universal_features"`

	NucleotideTotal int `json:"nucleotide_total"`
	ProteinTotal    int `json:"protein_total"`
}

// ComplexityRowV1 is the stable JSON schema for one complexity row.
// Mean/Variance are null for the NA sentinel.
type ComplexityRowV1 struct {
	ID       string   `json:"id"`
	Mean     *float64 `json:"mean"`
	Variance *float64 `json:"variance"`
}
