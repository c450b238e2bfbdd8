// internal/commands/context.go
package commands

import (
	"github.com/charmbracelet/log"

	"seqstat/internal/config"

	"seqstat-core/alphabet"
)

// Context carries the run-wide collaborators every subcommand shares:
// resolved configuration, the stderr logger, and the residue alphabet.
// The app layer fills it in before command execution.
type Context struct {
	Config config.Config
	Logger *log.Logger
	Alpha  alphabet.Alphabet
}

// Width is the FASTA output wrap width.
func (c *Context) Width() int { return c.Config.ColumnWidth }
