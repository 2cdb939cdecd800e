package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/clustersort/internal/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindColumn(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		header  string
		want    int
		wantErr error
	}{
		{name: "middle column", header: "Structure\tCluster No\tFlag", want: 1},
		{name: "first column", header: "Cluster No\tStructure", want: 0},
		{name: "substring match", header: "idcode\tSimilarity\tCluster No (FragFp)", want: 2},
		{name: "first of several matches", header: "Cluster No A\tx\tCluster No B", want: 0},
		{name: "no match", header: "Structure\tCluster\tFlag", want: -1, wantErr: ErrColumnNotFound},
		{name: "case sensitive", header: "Structure\tcluster no", want: -1, wantErr: ErrColumnNotFound},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := FindColumn(tc.header, DefaultMarker)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_SplitsHeaderAndBody(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	content := "Structure\tCluster No\tFlag\r\n" +
		"\n" +
		"c1ccccc1\t3\ta\r\n" +
		"  \n" +
		"x\n" +
		"CCO\t7\tb\n"

	// --- Act ---
	tbl, err := Parse(content, DefaultMarker)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Structure\tCluster No\tFlag", tbl.Header)
	assert.Equal(t, []string{"c1ccccc1\t3\ta", "CCO\t7\tb"}, tbl.Body)
	assert.Equal(t, 1, tbl.ClusterColumn)
}

func TestParse_HeaderAndOneRowIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Parse("Structure\tCluster No\nCCO\t1\n\n\n", DefaultMarker)

	require.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "only 2 non-empty line(s)")
}

func TestParse_EmptyContentIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := Parse("", DefaultMarker)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestParse_MissingMarkerIsColumnNotFound(t *testing.T) {
	t.Parallel()

	_, err := Parse("Structure\tGroup\nA\t1\nB\t2\n", DefaultMarker)
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestParse_CustomMarker(t *testing.T) {
	t.Parallel()

	tbl, err := Parse("id\tgroup\nA\t1\nB\t2\n", "group")
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.ClusterColumn)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "clusters.txt")
	require.NoError(t, os.WriteFile(path, []byte("S\tCluster No\nA\t1\nB\t2\n"), 0o644))

	tbl, err := Load(path, DefaultMarker)
	require.NoError(t, err)
	assert.Len(t, tbl.Body, 2)

	_, err = Load(filepath.Join(dir, "missing.txt"), DefaultMarker)
	require.ErrorIs(t, err, fsutil.ErrUnreadableInput)
}

func TestParse_KeepsEmptyEdgeCells(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	content := "Name\tCluster No\tComment\r\n" +
		"\t7\tAAA\r\n" +
		"m2\t7\t\n" +
		" m3 \t9\t \n"

	// --- Act ---
	tbl, err := Parse(content, DefaultMarker)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Name\tCluster No\tComment", tbl.Header)
	assert.Equal(t, []string{"\t7\tAAA", "m2\t7\t", " m3 \t9\t "}, tbl.Body)
	assert.Equal(t, 1, tbl.ClusterColumn)
}

func TestParse_WhitespaceOnlyLinesAreDropped(t *testing.T) {
	t.Parallel()

	tbl, err := Parse("S\tCluster No\n\t\n \t \nA\t1\nB\t2\n", DefaultMarker)

	require.NoError(t, err)
	assert.Equal(t, []string{"A\t1", "B\t2"}, tbl.Body)
}
