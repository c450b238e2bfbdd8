package complexity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScorer(t *testing.T, cfg Config) *Scorer {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestConfigValidation(t *testing.T) {
	bad := []Config{
		{AlphabetSize: 1, WindowLen: 2, WordLen: 1, Jump: 1},
		{AlphabetSize: 4, WindowLen: 0, WordLen: 1, Jump: 1},
		{AlphabetSize: 4, WindowLen: 2, WordLen: 0, Jump: 1},
		{AlphabetSize: 4, WindowLen: 2, WordLen: 1, Jump: 0},
		{AlphabetSize: 4, WindowLen: 2, WordLen: 1, Jump: 1, Offset: -1},
	}
	for _, cfg := range bad {
		_, err := New(cfg)
		assert.Error(t, err, "%+v", cfg)
	}
}

func TestShortSequenceIsNA(t *testing.T) {
	s := newScorer(t, Config{AlphabetSize: 4, WindowLen: 10, WordLen: 1, Jump: 1, Offset: 2})
	res := s.Score("ACGTACGTACG") // 11 < 10+2
	assert.False(t, res.Mean.Valid)
	assert.False(t, res.Variance.Valid)
	assert.Equal(t, "NA", res.Mean.String())
}

func TestDropCharacterIsNA(t *testing.T) {
	s := newScorer(t, Config{AlphabetSize: 4, WindowLen: 2, WordLen: 1, Jump: 1, Drop: "N"})
	res := s.Score("ACGNACGT")
	assert.False(t, res.Mean.Valid)
	assert.False(t, res.Variance.Valid)
}

func TestSingleWindowVarianceIsNA(t *testing.T) {
	s := newScorer(t, Config{AlphabetSize: 4, WindowLen: 2, WordLen: 1, Jump: 1})
	res := s.Score("AC")
	require.True(t, res.Mean.Valid)
	assert.False(t, res.Variance.Valid)
	assert.InDelta(t, 0.25, res.Mean.X, 1e-12)
}

func TestKnownScores(t *testing.T) {
	s := newScorer(t, Config{AlphabetSize: 4, WindowLen: 2, WordLen: 1, Jump: 1})

	// Monotone sequence: every window is {x:2}, score 0.
	res := s.Score("AAAA")
	require.True(t, res.Mean.Valid)
	assert.InDelta(t, 0.0, res.Mean.X, 1e-12)
	require.True(t, res.Variance.Valid)
	assert.InDelta(t, 0.0, res.Variance.X, 1e-12)

	// Alternating sequence: every window is two distinct letters.
	res = s.Score("ACAC")
	assert.InDelta(t, 0.25, res.Mean.X, 1e-12)
	assert.InDelta(t, 0.0, res.Variance.X, 1e-12)

	// Mixed: window scores 0, 0.25, 0.25.
	res = s.Score("AACG")
	assert.InDelta(t, 1.0/6.0, res.Mean.X, 1e-12)
	assert.InDelta(t, 1.0/48.0, res.Variance.X, 1e-12)
}

func TestJumpAndOffset(t *testing.T) {
	s := newScorer(t, Config{AlphabetSize: 4, WindowLen: 2, WordLen: 1, Jump: 2, Offset: 1})
	// Windows start at 1 and 3 only.
	res := s.Score("AAACG")
	require.True(t, res.Mean.Valid)
	// scores: window[1,3)={A:2}->0, window[3,5)={C,G}->0.25
	assert.InDelta(t, 0.125, res.Mean.X, 1e-12)
}

func TestWordLengthBase(t *testing.T) {
	// m=2: base k^m = 16; a two-word window of distinct words scores
	// log_16(2!)/w = (ln2/ln16)/2 = 0.125.
	s := newScorer(t, Config{AlphabetSize: 4, WindowLen: 2, WordLen: 2, Jump: 1})
	res := s.Score("ACG")
	require.True(t, res.Mean.Valid)
	assert.InDelta(t, 0.125, res.Mean.X, 1e-12)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "NA", NA().String())
	assert.Equal(t, "0.25", Some(0.25).String())
}
