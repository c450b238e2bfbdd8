// internal/app/app.go
// Package app assembles the seqstat command tree and maps run outcomes
// onto process exit codes.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seqstat/internal/commands"
	"seqstat/internal/config"
	"seqstat/internal/version"
	"seqstat/internal/writers"

	"seqstat-core/alphabet"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
	ExitIO      = 3
)

// Run executes the CLI and returns the process exit code. Writing to a
// closed pipe is a success so `seqstat ... | head` stays quiet.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root, err := build(argv, outw, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "seqstat:", err)
		return ExitRuntime
	}
	err = root.Execute()

	if ferr := outw.Flush(); err == nil && ferr != nil {
		if writers.IsBrokenPipe(ferr) {
			return ExitOK
		}
		fmt.Fprintln(stderr, "seqstat:", ferr)
		return ExitIO
	}
	switch {
	case err == nil:
		return ExitOK
	case writers.IsBrokenPipe(err):
		return ExitOK
	case isUsage(err):
		fmt.Fprintln(stderr, "seqstat:", err)
		return ExitUsage
	default:
		fmt.Fprintln(stderr, "seqstat:", err)
		return ExitRuntime
	}
}

func isUsage(err error) bool {
	var ue *commands.UsageError
	if errors.As(err, &ue) {
		return true
	}
	// Unknown subcommands surface as plain errors from cobra.
	return strings.HasPrefix(err.Error(), "unknown command")
}

// build resolves configuration and constructs the command tree.
// Configuration is loaded before construction because subcommand flag
// defaults come from it; --config is peeked out of argv for that reason.
func build(argv []string, stdout, stderr io.Writer) (*cobra.Command, error) {
	cfgPath := peekConfigPath(argv)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	ctx := &commands.Context{
		Config: cfg,
		Logger: log.NewWithOptions(stderr, log.Options{Prefix: "seqstat"}),
		Alpha:  alphabet.Default(),
	}

	var quiet bool
	root := &cobra.Command{
		Use:           "seqstat",
		Short:         "FASTA inspection: classify, score, and reshape sequence files",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				ctx.Logger.SetLevel(log.ErrorLevel)
			}
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "path to a YAML configuration file")
	pf.BoolVarP(&quiet, "quiet", "Q", false, "suppress warnings")

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(argv)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &commands.UsageError{Err: err}
	})

	root.AddCommand(
		commands.NewSniffCmd(ctx),
		commands.NewComplexityCmd(ctx),
		commands.NewChksumCmd(ctx),
		commands.NewFstatCmd(ctx),
		commands.NewQstatCmd(ctx),
		commands.NewHstatCmd(ctx),
		commands.NewUnmaskCmd(ctx),
		commands.NewTounkCmd(ctx),
		commands.NewReverseCmd(ctx),
		commands.NewSubseqCmd(ctx),
		commands.NewFasta2csvCmd(ctx),
		commands.NewRmfieldsCmd(ctx),
		commands.NewIdsearchCmd(ctx),
		commands.NewSearchCmd(ctx),
		commands.NewPermCmd(ctx),
		commands.NewSampleCmd(ctx),
		commands.NewSortCmd(ctx),
		commands.NewSplitCmd(ctx),
		commands.NewPrettyprintCmd(ctx),
		commands.NewVersionCmd(ctx),
	)
	for _, c := range root.Commands() {
		if v := c.Args; v != nil {
			c.Args = usageArgs(v)
		}
	}
	return root, nil
}

// usageArgs lifts cobra positional-arity failures into usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return &commands.UsageError{Err: err}
		}
		return nil
	}
}

// peekConfigPath extracts --config from raw argv before cobra parses it.
func peekConfigPath(argv []string) string {
	for i, a := range argv {
		switch {
		case a == "--config" && i+1 < len(argv):
			return argv[i+1]
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}
