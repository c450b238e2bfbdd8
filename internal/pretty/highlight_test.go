package pretty

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightNoMatches(t *testing.T) {
	assert.Equal(t, "ACGT", Highlight("ACGT", nil))
}

func TestHighlightKeepsAllText(t *testing.T) {
	re := regexp.MustCompile("TA+")
	text := "GGTAAACGTAG"
	out := Highlight(text, re.FindAllStringIndex(text, -1))
	// Styling may add escape codes but every input byte must survive.
	plain := regexp.MustCompile("\x1b\\[[0-9;]*m").ReplaceAllString(out, "")
	assert.Equal(t, text, plain)
	assert.True(t, strings.Contains(plain, "TAAA"))
}
