// internal/app/app_test.go
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFasta(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func runApp(args ...string) (string, string, int) {
	var out, errb bytes.Buffer
	code := Run(args, &out, &errb)
	return out.String(), errb.String(), code
}

func TestSniffText(t *testing.T) {
	path := writeFasta(t, ">a\nATGGCCTAA\n>b\nATGCCC\n")
	out, _, code := runApp("sniff", path)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Total sequences: 2")
	assert.Contains(t, out, "All dna")
	assert.Contains(t, out, "Nucleotide Features:")
	assert.Contains(t, out, "start|coding|stop")
}

func TestSniffJSON(t *testing.T) {
	path := writeFasta(t, ">a\nATGCCC\n")
	out, _, code := runApp("sniff", "--output", "json", path)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, `"total_sequences": 1`)
	assert.Contains(t, out, `"dna": 1`)
}

func TestComplexityCSV(t *testing.T) {
	path := writeFasta(t, ">a\nAAAAAAAA\n")
	out, _, code := runApp("complexity", "-w", "4", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "1,0,0\n", out)
}

func TestComplexityNATokens(t *testing.T) {
	path := writeFasta(t, ">a\nAC\n")
	out, _, code := runApp("complexity", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "1,NA,NA\n", out)
}

func TestReverse(t *testing.T) {
	path := writeFasta(t, ">a\nACGT\n")
	out, _, code := runApp("reverse", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, ">a\nTGCA\n", out)
}

func TestSubseqRevcompGuard(t *testing.T) {
	path := writeFasta(t, ">a\nACGTACGT\n")

	_, _, code := runApp("subseq", "5", "2", path)
	assert.Equal(t, ExitUsage, code)

	out, _, code := runApp("subseq", "-r", "5", "2", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, ">a\nTACG\n", out)
}

func TestUnknownFlagIsUsage(t *testing.T) {
	_, stderr, code := runApp("sniff", "--no-such-flag")
	assert.Equal(t, ExitUsage, code)
	assert.NotEmpty(t, stderr)
}

func TestUnknownCommandIsUsage(t *testing.T) {
	_, _, code := runApp("no-such-command")
	assert.Equal(t, ExitUsage, code)
}

func TestBadInputIsRuntime(t *testing.T) {
	_, stderr, code := runApp("sniff", filepath.Join(t.TempDir(), "absent.fasta"))
	assert.Equal(t, ExitRuntime, code)
	assert.NotEmpty(t, stderr)
}

func TestVersionCommand(t *testing.T) {
	out, _, code := runApp("version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "0.0.0-dev\n", out)
}

func TestConfigColumnWidth(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "seqstat.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("columnWidth: 4\n"), 0o644))
	path := writeFasta(t, ">a\nACGTACGT\n")

	out, _, code := runApp("--config", cfgPath, "prettyprint", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, ">a\nACGT\nACGT\n", out)
}

func TestChksumPerSequence(t *testing.T) {
	path := writeFasta(t, ">a\nACGT\n>b\nACGT\n")
	out, _, code := runApp("chksum", "-q", path)
	assert.Equal(t, ExitOK, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	// Identical sequences produce identical digests.
	assert.Equal(t, strings.TrimPrefix(lines[0], "a\t"), strings.TrimPrefix(lines[1], "b\t"))
}

func TestSortByField(t *testing.T) {
	path := writeFasta(t, ">gb|2\nCC\n>gb|1\nAA\n")
	out, _, code := runApp("sort", "-f", "gb", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, ">gb|1\nAA\n>gb|2\nCC\n", out)
}

func TestSampleIsDeterministicWithSeed(t *testing.T) {
	path := writeFasta(t, ">a\nAA\n>b\nCC\n>c\nGG\n")
	out1, _, code := runApp("sample", "--seed", "7", "2", path)
	require.Equal(t, ExitOK, code)
	out2, _, _ := runApp("sample", "--seed", "7", "2", path)
	assert.Equal(t, out1, out2)
	assert.Equal(t, 2, strings.Count(out1, ">"))
}
