// core/fasta/header.go
package fasta

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned by Fields.Lookup when a header lacks the
// requested key. Callers decide whether that is fatal, skippable, or
// substituted with a default.
var ErrMissingField = errors.New("fasta: missing header field")

// Fields is the parsed form of the pipe-delimited header micro-format:
//
//	key1|value1|key2|value2|...| optional trailing description
//
// An odd number of tokens with a non-empty trailing token marks that
// token as a free-text description, stored under "desc". A header with
// no pipes at all is stored whole under "header".
type Fields map[string]string

// ParseHeader splits a raw header into Fields.
func ParseHeader(header string) Fields {
	f := Fields{}
	tokens := strings.Split(header, "|")
	if len(tokens) == 1 {
		f["header"] = tokens[0]
		return f
	}
	if len(tokens)%2 == 1 {
		if last := strings.TrimSpace(tokens[len(tokens)-1]); last != "" {
			f["desc"] = last
		}
		tokens = tokens[:len(tokens)-1]
	}
	for i := 0; i+1 < len(tokens); i += 2 {
		f[strings.TrimSpace(tokens[i])] = strings.TrimSpace(tokens[i+1])
	}
	return f
}

// Fields parses the record's header on demand.
func (r *Record) Fields() Fields { return ParseHeader(r.Header) }

// Lookup returns the value of field, or ErrMissingField.
func (f Fields) Lookup(field string) (string, error) {
	if v, ok := f[field]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrMissingField, field)
}

// LookupDefault returns the value of field, or fallback when absent.
func (f Fields) LookupDefault(field, fallback string) string {
	if v, ok := f[field]; ok {
		return v
	}
	return fallback
}

// Has reports whether the header carries field.
func (f Fields) Has(field string) bool {
	_, ok := f[field]
	return ok
}
