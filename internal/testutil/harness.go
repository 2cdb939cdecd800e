// Package testutil provides a harness that runs the CLI parser and the app
// end to end against files in a temporary directory.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/clustersort/internal/app"
	"github.com/specialistvlad/clustersort/internal/cli"
)

// DirPlaceholder in an argument is replaced by the harness's temporary directory.
const DirPlaceholder = "{{dir}}"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir        string
	OutputPath string // empty when parsing failed or asked to exit
	Report     string
	LogOutput  string
	Err        error
}

// RunIntegrationTest writes files (relative name -> content) into a fresh
// temporary directory and runs the command line args against them. Logging
// is forced to debug level so assertions can inspect it.
func RunIntegrationTest(t *testing.T, files map[string]string, args ...string) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	resolved := make([]string, len(args))
	for i, arg := range args {
		resolved[i] = strings.ReplaceAll(arg, DirPlaceholder, dir)
	}

	report := &app.SafeBuffer{}
	logs := &app.SafeBuffer{}
	result := &HarnessResult{Dir: dir}

	cfg, shouldExit, err := cli.Parse(resolved, report)
	if err != nil || shouldExit {
		result.Report = report.String()
		result.Err = err
		return result
	}
	cfg.LogLevel = "debug"

	a, err := app.NewApp(report, logs, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	_, result.Err = a.Run(context.Background())
	result.OutputPath = cfg.OutputPath()
	result.Report = report.String()
	result.LogOutput = logs.String()

	if os.Getenv("CLUSTERSORT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
