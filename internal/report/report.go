// Package report prints cluster popularity tables for the user.
package report

import (
	"fmt"
	"io"

	"github.com/buger/goterm"

	"github.com/specialistvlad/clustersort/internal/cluster"
)

// Printer renders titled cluster/molecule count tables to a writer.
type Printer struct {
	w     io.Writer
	color bool
	table *goterm.Table
	err   error
}

// New returns a Printer writing to w. Titles are bold cyan when color is set.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Title flushes any pending table and starts a new one under title.
func (p *Printer) Title(title string) {
	p.Flush()
	if p.color {
		title = goterm.Color(goterm.Bold(title), goterm.CYAN)
	}
	p.printf("\n%s:\n", title)
	p.table = goterm.NewTable(0, 8, 2, ' ', 0)
	fmt.Fprintf(p.table, "cluster\tmolecules\n")
}

// Observer returns a cluster.Observer adding one table row per cluster.
func (p *Printer) Observer() cluster.Observer {
	return func(id string, count int) {
		if p.table == nil {
			p.table = goterm.NewTable(0, 8, 2, ' ', 0)
		}
		fmt.Fprintf(p.table, "%s\t%d\n", id, count)
	}
}

// Flush writes the pending table, if any, and returns the first write error
// seen so far.
func (p *Printer) Flush() error {
	if p.table != nil {
		p.printf("%s", p.table.String())
		p.table = nil
	}
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
