// Package table loads a DataWarrior cluster list export: a tab-separated
// text table whose header names one column as the cluster number.
package table

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/clustersort/internal/fsutil"
)

// DefaultMarker is the header substring DataWarrior uses for the cluster column.
const DefaultMarker = "Cluster No"

// minLines is the header plus two data rows.
const minLines = 3

var (
	// ErrMalformedInput is returned when too few usable lines remain.
	ErrMalformedInput = errors.New("malformed input")
	// ErrColumnNotFound is returned when no header field contains the marker.
	ErrColumnNotFound = errors.New("cluster column not found")
)

// Table is a loaded cluster list.
type Table struct {
	Header        string
	Body          []string
	ClusterColumn int
}

// Load reads the file at path and parses it with Parse.
func Load(path, marker string) (*Table, error) {
	content, err := fsutil.ReadText(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(content, marker)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse splits content into lines, drops every line that is at most one
// character long once surrounding whitespace is trimmed, and separates the
// header from the body. Kept lines are stored as read, minus a trailing "\r".
func Parse(content, marker string) (*Table, error) {
	lines := usableLines(content)
	if len(lines) < minLines {
		return nil, fmt.Errorf("%w: only %d non-empty line(s), need at least %d", ErrMalformedInput, len(lines), minLines)
	}

	col, err := FindColumn(lines[0], marker)
	if err != nil {
		return nil, err
	}

	return &Table{
		Header:        lines[0],
		Body:          lines[1:],
		ClusterColumn: col,
	}, nil
}

// FindColumn returns the index of the first tab-separated header field
// containing marker.
func FindColumn(header, marker string) (int, error) {
	for i, field := range strings.Split(header, "\t") {
		if strings.Contains(field, marker) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: no header field contains %q", ErrColumnNotFound, marker)
}

func usableLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if utf8.RuneCountInString(strings.TrimSpace(line)) <= 1 {
			continue
		}
		// Empty leading or trailing cells are fields; only the line ending goes.
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}
