package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clustersort.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return path
}

func TestLoad_AllAttributes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeSettings(t, `
		marker     = "Cluster No"
		suffix     = "_ranked.txt"
		reverse    = true
		quiet      = false
		color      = false
		log_level  = "debug"
		log_format = "json"
		log_file   = "error.log"
	`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, model.Marker)
	assert.Equal(t, "Cluster No", *model.Marker)
	assert.Equal(t, "_ranked.txt", *model.Suffix)
	assert.True(t, *model.Reverse)
	assert.False(t, *model.Quiet)
	assert.False(t, *model.Color)
	assert.Equal(t, "debug", *model.LogLevel)
	assert.Equal(t, "json", *model.LogFormat)
	assert.Equal(t, "error.log", *model.LogFile)
}

func TestLoad_UnsetAttributesStayNil(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().Load(context.Background(), writeSettings(t, `reverse = true`))

	require.NoError(t, err)
	assert.Equal(t, []string{"reverse"}, model.Keys())
	assert.Nil(t, model.Marker)
}

func TestLoad_ExpressionsSeeDefaultsAndFunctions(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
		marker = defaults.marker
		suffix = format("%s", lower("_SORTED.TXT"))
	`)

	model, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "Cluster No", *model.Marker)
	assert.Equal(t, "_sorted.txt", *model.Suffix)
}

func TestLoad_UnknownAttributeIsRejected(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), writeSettings(t, `delimiter = ","`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file")
}

func TestLoad_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), writeSettings(t, `marker = "Cluster No`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}
