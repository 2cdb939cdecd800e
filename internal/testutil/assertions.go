package testutil

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// OutputTable reads the file written by a successful run and returns its
// header and rows.
func OutputTable(t *testing.T, result *HarnessResult) (string, []string) {
	t.Helper()
	require.NoError(t, result.Err, "run failed")

	b, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err, "output file %s was not written", result.OutputPath)

	content := string(b)
	require.True(t, strings.HasSuffix(content, "\n"), "output must be newline-terminated")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	return lines[0], lines[1:]
}

// LabelsAt parses the integer label at column of every row.
func LabelsAt(t *testing.T, rows []string, column int) []int {
	t.Helper()
	labels := make([]int, len(rows))
	for i, row := range rows {
		fields := strings.Split(row, "\t")
		require.Greater(t, len(fields), column, "row %d is too short: %q", i+1, row)
		n, err := strconv.Atoi(fields[column])
		require.NoError(t, err, "row %d label %q is not an integer", i+1, fields[column])
		labels[i] = n
	}
	return labels
}

// AssertNoOutput checks that a failed run left no output file behind.
func AssertNoOutput(t *testing.T, result *HarnessResult) {
	t.Helper()
	if result.OutputPath == "" {
		return
	}
	_, err := os.Stat(result.OutputPath)
	require.True(t, os.IsNotExist(err), "output file %s must not exist", result.OutputPath)
}
