// internal/pretty/highlight.go
package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MatchStyle renders regex match spans in search output.
var MatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

// Highlight re-renders text with every [start,end) span in locs styled.
// Spans are assumed sorted and non-overlapping, as returned by
// regexp.FindAllStringIndex.
func Highlight(text string, locs [][]int) string {
	if len(locs) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		b.WriteString(text[prev:loc[0]])
		b.WriteString(MatchStyle.Render(text[loc[0]:loc[1]]))
		prev = loc[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}
