// internal/commands/helpers.go
package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"seqstat-core/fasta"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// expandInputs turns positional arguments into input paths, expanding
// globs and defaulting to stdin when none are given.
func expandInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"-"}, nil
	}
	var out []string
	for _, a := range args {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, usagef("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, usagef("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}

// forEachRecord streams every record of every input to fn, in input
// order. Each file is drained through its own cursor; a structural error
// aborts the whole run.
func forEachRecord(args []string, fn func(*fasta.Record) error) error {
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := streamFile(p, fn); err != nil {
			return err
		}
	}
	return nil
}

func streamFile(path string, fn func(*fasta.Record) error) error {
	rc, err := fasta.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r := fasta.NewReader(rc)
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// collectRecords materializes the full input; only the collection-level
// commands (sample, sort, split) pay this cost.
func collectRecords(args []string) ([]*fasta.Record, error) {
	var out []*fasta.Record
	err := forEachRecord(args, func(rec *fasta.Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}
