package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptPath(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "internal", "ingest", "testdata", "receipt.json"))
	require.NoError(t, err)
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	for _, key := range []string{"LOG_LEVEL", "SPLIT_CURRENCY", "SPLIT_PALETTE", "SPLIT_LOCALE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestRunSplitsReceipt(t *testing.T) {
	path := receiptPath(t)
	isolateEnv(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-people", "Alice,Bob",
		"-assign", "Chicken Tenders=Alice",
		"-assign", "Bacon Burger Meal=Alice,Bob",
		"-assign", "Cold Drink=Bob",
		"-assign", "asddff1=Bob",
		"-payer", "Alice",
		path,
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "$47.25")
	assert.Contains(t, out, "$62.25")
	// Alice: 11 + 9.25 + 7.50, Bob: 9.25 + 8.25 + 9.50 + 7.50
	assert.Contains(t, out, "$27.75")
	assert.Contains(t, out, "$34.50")
	assert.Contains(t, out, "Receipt says:")
	assert.Contains(t, out, "Bob pays Alice")
	assert.Contains(t, out, "#FF6B6B")
	assert.NotContains(t, out, "Unassigned items:")
}

func TestRunReportsUnassigned(t *testing.T) {
	path := receiptPath(t)
	isolateEnv(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{"-people", "Alice", "-tip-percent", "10", path}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "$4.73")
	assert.Contains(t, out, "Unassigned items:")
	assert.Contains(t, out, "Cold Drink")
}

func TestRunErrors(t *testing.T) {
	path := receiptPath(t)
	isolateEnv(t)

	var stdout, stderr bytes.Buffer
	assert.Error(t, run(nil, &stdout, &stderr))
	assert.Error(t, run([]string{"missing.json"}, &stdout, &stderr))
	assert.Error(t, run([]string{"-payer", "Zed", path}, &stdout, &stderr))
	assert.Error(t, run([]string{"-assign", "no-equals", path}, &stdout, &stderr))
}
