// core/complexity/complexity.go
package complexity

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Config parameterizes the windowed compositional-complexity score.
type Config struct {
	AlphabetSize int    // k: letters in the residue alphabet (4 DNA, 20 protein)
	WindowLen    int    // w: window width in residues
	WordLen      int    // m: word length; words overlap at every position
	Jump         int    // p: distance between adjacent window starts
	Offset       int    // o: index of the first window start
	Drop         string // a record containing this substring scores NA ("" disables)
}

// DefaultConfig mirrors the conventional DNA parameterization.
func DefaultConfig() Config {
	return Config{AlphabetSize: 4, WindowLen: 100, WordLen: 1, Jump: 1, Offset: 0}
}

// Value is a float that may be the NA sentinel. NA is a valid outcome for
// degenerate inputs, never an error.
type Value struct {
	Valid bool
	X     float64
}

// NA is the sentinel Value.
func NA() Value { return Value{} }

// Some wraps a concrete score.
func Some(x float64) Value { return Value{Valid: true, X: x} }

// String renders the value for CSV output, with the literal token NA for
// the sentinel.
func (v Value) String() string {
	if !v.Valid {
		return "NA"
	}
	return strconv.FormatFloat(v.X, 'g', -1, 64)
}

// Result holds one record's windowed complexity summary.
type Result struct {
	Mean     Value
	Variance Value
}

// Scorer computes per-window complexity scores and their mean/variance
// over one record. A window's score is the log-likelihood deficit of its
// word composition relative to a maximally random window over a k^m-word
// alphabet: (1/w)(log(w!) - Σ log(count_word!)), all logs base k^m.
type Scorer struct {
	cfg     Config
	logBase float64 // ln(k^m)
	wFact   float64 // log_{k^m}(w!)
}

// New validates cfg and precomputes the window-independent terms.
func New(cfg Config) (*Scorer, error) {
	switch {
	case cfg.AlphabetSize < 2:
		return nil, errors.New("complexity: alphabet size must be at least 2")
	case cfg.WindowLen < 1:
		return nil, errors.New("complexity: window length must be positive")
	case cfg.WordLen < 1:
		return nil, errors.New("complexity: word length must be positive")
	case cfg.Jump < 1:
		return nil, errors.New("complexity: jump must be positive")
	case cfg.Offset < 0:
		return nil, errors.New("complexity: offset must not be negative")
	}
	s := &Scorer{cfg: cfg}
	// Log-gamma stands in for factorials: w! overflows float64 well below
	// the default window width, but ln(w!) = Lgamma(w+1) stays small.
	s.logBase = float64(cfg.WordLen) * math.Log(float64(cfg.AlphabetSize))
	s.wFact = s.logFact(cfg.WindowLen)
	return s, nil
}

// logFact is log_{k^m}(n!).
func (s *Scorer) logFact(n int) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)
	return lg / s.logBase
}

// Score computes the record's complexity summary. Too-short sequences,
// sequences containing the drop character, and single-window records
// yield NA sentinels rather than errors.
func (s *Scorer) Score(seq string) Result {
	w, m, p, o := s.cfg.WindowLen, s.cfg.WordLen, s.cfg.Jump, s.cfg.Offset
	if len(seq) < w+o {
		return Result{Mean: NA(), Variance: NA()}
	}
	if s.cfg.Drop != "" && strings.Contains(seq, s.cfg.Drop) {
		return Result{Mean: NA(), Variance: NA()}
	}

	var scores []float64
	counts := make(map[string]int, w)
	for i := o; i+w <= len(seq); i += p {
		clear(counts)
		// Words whose start index falls in [i, i+w); the tail of the
		// window may run out of complete words.
		for j := i; j < i+w; j++ {
			if j+m > len(seq) {
				break
			}
			counts[seq[j:j+m]]++
		}
		variable := 0.0
		for _, n := range counts {
			variable += s.logFact(n)
		}
		scores = append(scores, (s.wFact-variable)/float64(w))
	}

	mean := 0.0
	for _, x := range scores {
		mean += x
	}
	mean /= float64(len(scores))

	res := Result{Mean: Some(mean), Variance: NA()}
	if len(scores) > 1 {
		ss := 0.0
		for _, x := range scores {
			d := mean - x
			ss += d * d
		}
		res.Variance = Some(ss / float64(len(scores)-1))
	}
	return res
}
