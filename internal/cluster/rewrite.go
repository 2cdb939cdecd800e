package cluster

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type labeledRow struct {
	label int
	row   string
}

// Rewrite replaces the cluster cell of every row with its new label and
// returns the rows ordered by new label ascending. Rows sharing a label keep
// their input order. Every other cell is left untouched.
func Rewrite(rows []string, column int, labels Labels) ([]string, error) {
	out := make([]labeledRow, 0, len(rows))
	for i, row := range rows {
		fields, err := splitRow(row, column, i)
		if err != nil {
			return nil, err
		}

		label, ok := labels.Label(fields[column])
		if !ok {
			return nil, fmt.Errorf("%w: row %d has cluster %q", ErrUnmappedLabel, i+1, fields[column])
		}
		fields[column] = strconv.Itoa(label)
		out = append(out, labeledRow{label: label, row: strings.Join(fields, "\t")})
	}

	slices.SortStableFunc(out, func(a, b labeledRow) int {
		return cmp.Compare(a.label, b.label)
	})

	rewritten := make([]string, len(out))
	for i, r := range out {
		rewritten[i] = r.row
	}
	return rewritten, nil
}
