package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

var (
	// ErrUnreadableInput is returned when the input file cannot be opened or read.
	ErrUnreadableInput = errors.New("unreadable input")
	// ErrWriteFailure is returned when the output file cannot be created or written.
	ErrWriteFailure = errors.New("write failure")
)

// DefaultSuffix is appended to the input's stem to name the output file.
const DefaultSuffix = "_sort.txt"

// ReadText returns the full content of the file at path.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnreadableInput, path, err)
	}
	return string(b), nil
}

// DerivedPath strips the extension of input's final element and appends
// suffix. The directory part is kept, so the output lands next to the input.
// A basename that starts with its only dot (".data") has no extension.
func DerivedPath(input, suffix string) string {
	ext := filepath.Ext(input)
	if ext == filepath.Base(input) {
		ext = ""
	}
	return strings.TrimSuffix(input, ext) + suffix
}

// WriteLines writes header followed by rows, each terminated by a newline.
// The content goes to a temporary file in the target directory which is
// renamed over path only once fully written.
func WriteLines(path, header string, rows []string) error {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	if err := renameio.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	return nil
}
