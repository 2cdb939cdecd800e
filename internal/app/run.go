package app

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/specialistvlad/clustersort/internal/cluster"
	"github.com/specialistvlad/clustersort/internal/ctxlog"
	"github.com/specialistvlad/clustersort/internal/fsutil"
	"github.com/specialistvlad/clustersort/internal/report"
	"github.com/specialistvlad/clustersort/internal/table"
)

// Result summarizes a successful run.
type Result struct {
	OutputPath string
	Rows       int
	Labels     cluster.Labels
}

// Run loads the input table, relabels its clusters by popularity, writes the
// output file, and reads it back to report the new distribution. Any failure
// is logged and returned, and no output file is left behind.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	res, err := a.run(ctx)
	if err != nil {
		a.logger.Error("Relabeling failed.", "input", a.config.InputPath, "error", err)
		return nil, err
	}

	a.logger.Debug("App.Run method finished.")
	return res, nil
}

func (a *App) run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := a.config

	tbl, err := table.Load(cfg.InputPath, cfg.Marker)
	if err != nil {
		return nil, err
	}
	logger.Info("Input loaded.", "rows", len(tbl.Body), "cluster_column", tbl.ClusterColumn)

	printer := report.New(a.outW, cfg.Color)
	var observe cluster.Observer
	if !cfg.Quiet {
		printer.Title("DataWarrior's assignment of clusters")
		observe = printer.Observer()
	}

	pop, err := cluster.Count(tbl.Body, tbl.ClusterColumn, observe)
	if err != nil {
		return nil, err
	}
	if err := printer.Flush(); err != nil {
		return nil, fmt.Errorf("printing report: %w", err)
	}
	labels := cluster.Relabel(pop, cfg.Reverse)
	logger.Info("Clusters ranked.", "clusters", labels.Len(), "reverse", cfg.Reverse)

	rows, err := cluster.Rewrite(tbl.Body, tbl.ClusterColumn, labels)
	if err != nil {
		return nil, err
	}
	if err := checkLabels(rows, tbl.ClusterColumn, labels.Len()); err != nil {
		return nil, err
	}
	logger.Debug("Labels verified.", "labels", labels.Len())

	out := cfg.OutputPath()
	if err := fsutil.WriteLines(out, tbl.Header, rows); err != nil {
		return nil, err
	}
	logger.Info("Output written.", "path", out, "rows", len(rows))

	if !cfg.Quiet {
		printer.Title("clusters newly sorted and labeled")
	}
	if err := a.readBack(ctx, out, observe); err != nil {
		return nil, err
	}

	if err := printer.Flush(); err != nil {
		return nil, fmt.Errorf("printing report: %w", err)
	}

	return &Result{OutputPath: out, Rows: len(rows), Labels: labels}, nil
}

// checkLabels confirms the cluster column of rows holds exactly the labels 1..k.
func checkLabels(rows []string, column, k int) error {
	pop, err := cluster.Count(rows, column, nil)
	if err != nil {
		return err
	}
	if pop.Len() != k {
		return fmt.Errorf("%w: output holds %d labels, expected %d", cluster.ErrUnmappedLabel, pop.Len(), k)
	}
	for n := 1; n <= k; n++ {
		if pop.Count(strconv.Itoa(n)) == 0 {
			return fmt.Errorf("%w: output is missing label %d", cluster.ErrUnmappedLabel, n)
		}
	}
	return nil
}

// readBack loads the written file and counts its new labels into observe.
// A file that cannot be read back is removed.
func (a *App) readBack(ctx context.Context, path string, observe cluster.Observer) error {
	err := func() error {
		tbl, err := table.Load(path, a.config.Marker)
		if err != nil {
			return err
		}
		_, err = cluster.Count(tbl.Body, tbl.ClusterColumn, observe)
		return err
	}()
	if err == nil {
		return nil
	}

	if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
		ctxlog.FromContext(ctx).Warn("Failed to remove unreadable output.", "path", path, "error", rmErr)
	}
	return fmt.Errorf("%w: reading back: %w", fsutil.ErrWriteFailure, err)
}
