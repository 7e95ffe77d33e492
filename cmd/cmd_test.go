package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pjt727/classwatch/collection/catalog"
	"github.com/Pjt727/classwatch/collection/services/quacs"
	"github.com/Pjt727/classwatch/collection/services/quacs/testquacs"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func newServer(t *testing.T) *testquacs.MockServer {
	server := testquacs.NewMockServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(server.Close)
	return server
}

func TestCheckReportsOpenSections(t *testing.T) {
	server := newServer(t)
	server.SetDocument("202209", []byte(testquacs.Fall2022))
	cacheDir := t.TempDir()

	out, err := execute(t,
		"check", "--term", "fall 2022",
		"--source-url", server.URL,
		"--cache-backend", "file",
		"--cache-dir", cacheDir,
		"csci-1200", "MATH-1010", "CSCI-2300", "BIOL-1010",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "CSCI Department courses:")
	assert.Contains(t, out, "\tSection: 2 | CRN: 1002 | 5 spots remaining\n")
	assert.NotContains(t, out, "CRN: 1001")
	assert.Contains(t, out, "\tNo sections available for CSCI-2300\n")
	assert.Contains(t, out, "\tSection: 01 | CRN: 2001 | 12 spots remaining\n")
	assert.NotContains(t, out, "BIOL")

	assert.FileExists(t, filepath.Join(cacheDir, "courses-202209.json"))
	assert.FileExists(t, filepath.Join(cacheDir, "etag-202209.txt"))
}

func TestCheckRejectsBadCourse(t *testing.T) {
	server := newServer(t)
	_, err := execute(t,
		"check", "--term", "fall 2022",
		"--source-url", server.URL,
		"--cache-backend", "file",
		"--cache-dir", t.TempDir(),
		"CSCI1200",
	)
	assert.ErrorIs(t, err, catalog.ErrInvalidCourseSyntax)
	assert.Empty(t, server.Requests(), "courses are validated before any request")
}

func TestSyncMissingTerm(t *testing.T) {
	server := newServer(t)
	cacheDir := t.TempDir()

	_, err := execute(t,
		"sync", "--term", "spring 2031",
		"--source-url", server.URL,
		"--cache-backend", "file",
		"--cache-dir", cacheDir,
	)
	assert.ErrorIs(t, err, quacs.ErrTermNotFound)

	server.SetDocument("203101", []byte(testquacs.SingleSection))
	_, err = execute(t,
		"sync", "--term", "spring 2031",
		"--source-url", server.URL,
		"--cache-backend", "file",
		"--cache-dir", cacheDir,
	)
	require.NoError(t, err)
	document, err := os.ReadFile(filepath.Join(cacheDir, "courses-203101.json"))
	require.NoError(t, err)
	assert.JSONEq(t, testquacs.SingleSection, string(document))
}

func TestMetricsFileWritten(t *testing.T) {
	server := newServer(t)
	server.SetDocument("202209", []byte(testquacs.Fall2022))
	metricsFile := filepath.Join(t.TempDir(), "classwatch.prom")
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("metrics-file", "") })

	_, err := execute(t,
		"sync", "--term", "fall 2022",
		"--source-url", server.URL,
		"--cache-backend", "file",
		"--cache-dir", t.TempDir(),
		"--metrics-file", metricsFile,
	)
	require.NoError(t, err)

	written, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(written), "classwatch_sync_total")
}
