package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSummary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.md"),
		[]byte("# Home\n\nCertified specialists deliver measurable, validated results. Contact us today to learn more about our proven process."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"),
		[]byte("# Notes\n\nSome stuff might possibly happen at various times, perhaps."), 0o644))

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SITESCORE_CORPUSPATH", filepath.Join(dir, "corpus.db"))

	origRoot := rootPath
	t.Cleanup(func() { rootPath = origRoot })
	rootPath = dir

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	summaryErr := runSummary(nil)
	w.Close()
	os.Stdout = orig
	out, readErr := io.ReadAll(r)
	require.NoError(t, readErr)
	require.NoError(t, summaryErr)

	got := string(out)
	assert.Contains(t, got, "COLLECTION QUALITY SUMMARY")
	assert.Contains(t, got, "Documents Analyzed: 2")
	assert.Contains(t, got, "SCORE DISTRIBUTION")
	assert.Contains(t, got, "LOWEST SCORING DOCUMENTS")
	assert.Contains(t, got, "home.md")
	assert.Contains(t, got, "notes.md")

	// Every bordered row must line up with the 61-column frame.
	for _, line := range strings.Split(got, "\n") {
		if strings.ContainsAny(line, "║╔╠╚") {
			assert.Equal(t, 61, utf8.RuneCountInString(line), "misaligned row: %q", line)
		}
	}
}

func TestBoxRowPadsBeforeStyling(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	boxRow("short", &style)
	boxRow(strings.Repeat("x", 80), nil)
	w.Close()
	os.Stdout = orig
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 61, utf8.RuneCountInString(lines[0]))
	assert.True(t, strings.HasSuffix(lines[0], " ║"))
	// Overlong text is not truncated but still keeps its borders.
	assert.True(t, strings.HasPrefix(lines[1], "║ "))
	assert.True(t, strings.HasSuffix(lines[1], " ║"))
}
