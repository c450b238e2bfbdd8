// core/fasta/reader.go
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrFormat is the class of fatal structural errors: content before the
// first record marker, a record with an empty body, or a stream with no
// records at all. Test with errors.Is.
var ErrFormat = errors.New("fasta: malformed input")

// Config controls the line-level dialect of the parser.
type Config struct {
	Marker  byte // starts a header line
	Comment byte // lines starting with this (after edge trim) are skipped
}

// DefaultConfig is the conventional FASTA dialect.
func DefaultConfig() Config { return Config{Marker: '>', Comment: ';'} }

// Reader is a lazy, single-pass, non-restartable cursor over the records
// of one FASTA stream. It is not safe for concurrent use. Abandoning a
// Reader mid-stream is fine; it holds no resources beyond the underlying
// io.Reader, which the caller owns.
type Reader struct {
	sc  *bufio.Scanner
	cfg Config

	header  string // header of the record currently accumulating
	body    strings.Builder
	started bool // a header has been seen
	count   int  // records produced so far
	err     error
	done    bool
}

// NewReader wraps r with the default dialect.
func NewReader(r io.Reader) *Reader { return NewReaderConfig(r, DefaultConfig()) }

// NewReaderConfig wraps r with an explicit dialect.
func NewReaderConfig(r io.Reader, cfg Config) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc, cfg: cfg}
}

// Next returns the next record, io.EOF once the stream is drained, or a
// fatal ErrFormat. After a non-nil error every later call returns the
// same error.
func (r *Reader) Next() (*Record, error) {
	if r.done {
		return nil, r.err
	}
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if line[0] == r.cfg.Comment {
			continue
		}
		if line[0] == r.cfg.Marker {
			header := strings.TrimSpace(line[1:])
			if !r.started {
				r.started = true
				r.header = header
				continue
			}
			rec, err := r.flush()
			if err != nil {
				return nil, r.fail(err)
			}
			r.header = header
			return rec, nil
		}
		if !r.started {
			return nil, r.fail(fmt.Errorf("%w: first content line must be a record marker", ErrFormat))
		}
		r.body.WriteString(line)
	}
	if err := r.sc.Err(); err != nil {
		return nil, r.fail(fmt.Errorf("fasta scan: %w", err))
	}
	if r.started {
		rec, err := r.flush()
		if err != nil {
			return nil, r.fail(err)
		}
		r.started = false
		return rec, nil
	}
	if r.count == 0 {
		return nil, r.fail(fmt.Errorf("%w: no records in stream", ErrFormat))
	}
	return nil, r.fail(io.EOF)
}

// flush closes out the record accumulated so far.
func (r *Reader) flush() (*Record, error) {
	if r.body.Len() == 0 {
		return nil, fmt.Errorf("%w: record %q has an empty body", ErrFormat, r.header)
	}
	rec := &Record{Header: r.header, Seq: r.body.String()}
	r.body.Reset()
	r.count++
	return rec, nil
}

func (r *Reader) fail(err error) error {
	r.done = true
	r.err = err
	return err
}
