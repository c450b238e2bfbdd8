// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"sort"

	"seqstat-core/classify"
	"seqstat-core/summary"
)

// row is one rendered distribution line.
type row struct {
	name  string
	count int
}

// sortRows orders by descending count, keeping the given report order for
// ties so output is deterministic.
func sortRows(rows []row) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].count > rows[j].count })
}

func writeRows(w io.Writer, rows []row, total int) error {
	for _, r := range rows {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(r.count) / float64(total)
		}
		if _, err := fmt.Fprintf(w, "  %-20s %-10d %8.4f%%\n", r.name+":", r.count, pct); err != nil {
			return err
		}
	}
	return nil
}

// writeDist renders a distribution, listing only non-zero categories and
// collapsing to "All <name>" when exactly one category is populated.
func writeDist(w io.Writer, title string, rows []row, total int) error {
	var nonzero []row
	for _, r := range rows {
		if r.count != 0 {
			nonzero = append(nonzero, r)
		}
	}
	if len(nonzero) == 1 {
		_, err := fmt.Fprintf(w, "All %s\n", nonzero[0].name)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	sortRows(nonzero)
	return writeRows(w, nonzero, total)
}

// writeFeatures renders a feature distribution including zero categories,
// suppressed entirely when the governing total is zero.
func writeFeatures(w io.Writer, title string, rows []row, total int) error {
	if total == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	sortRows(rows)
	return writeRows(w, rows, total)
}

// Write renders the classification report in the triage text format.
func Write(w io.Writer, r summary.Report) error {
	if r.HasDuplicateSequences() {
		if _, err := fmt.Fprintf(w, "%d uniq sequences (%d total)\n", r.UniqueSequences, r.Total); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "Total sequences: %d\n", r.Total); err != nil {
			return err
		}
	}
	if r.HasDuplicateHeaders() {
		if _, err := fmt.Fprintf(w, "WARNING: headers are not unique (%d/%d)\n", r.UniqueHeaders, r.Total); err != nil {
			return err
		}
	}
	if r.HasIllegal() {
		if _, err := fmt.Fprintln(w, "WARNING: illegal characters found"); err != nil {
			return err
		}
	}

	types := make([]row, 0, len(summary.TypeOrder))
	for _, k := range summary.TypeOrder {
		types = append(types, row{string(k), r.Types[k]})
	}
	if err := writeDist(w, "Sequence types", types, r.Total); err != nil {
		return err
	}

	cases := make([]row, 0, len(summary.CaseOrder))
	for _, k := range summary.CaseOrder {
		cases = append(cases, row{string(k), r.Cases[k]})
	}
	if err := writeDist(w, "Sequence cases", cases, r.Total); err != nil {
		return err
	}

	nfeat := make([]row, 0, len(classify.AllORF))
	for _, k := range classify.AllORF {
		nfeat = append(nfeat, row{string(k), r.NucleotideFeatures[k]})
	}
	if err := writeFeatures(w, "Nucleotide Features:", nfeat, r.NucleotideTotal()); err != nil {
		return err
	}

	pfeat := make([]row, 0, len(summary.ProteinFeatureOrder))
	for _, k := range summary.ProteinFeatureOrder {
		pfeat = append(pfeat, row{k, r.ProteinFeatures[k]})
	}
	if err := writeFeatures(w, "Protein Features:", pfeat, r.ProteinTotal()); err != nil {
		return err
	}

	ufeat := make([]row, 0, len(summary.UniversalFeatureOrder))
	for _, k := range summary.UniversalFeatureOrder {
		ufeat = append(ufeat, row{k, r.UniversalFeatures[k]})
	}
	return writeFeatures(w, "Universal Features:", ufeat, r.Total)
}
