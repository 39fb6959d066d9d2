// Package importer reads driver spreadsheets and reconciles them with the
// persisted roster.
package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/roster-cli/internal/model"
	"github.com/sells-group/roster-cli/internal/store"
)

// Service runs the import-and-merge pipeline against a roster store. It is
// stateless; all inputs arrive through Options.
type Service struct {
	store store.Store
}

// New creates an import service over the given store.
func New(st store.Store) *Service {
	return &Service{store: st}
}

// Options configures a single import run.
type Options struct {
	Dir    string // resolved import folder; empty means no folder granted
	File   string // spreadsheet file name, matched case-insensitively
	DryRun bool   // merge but do not persist
}

// Result summarizes an import run.
type Result struct {
	Imported int            // rows mapped from the spreadsheet
	Total    int            // roster size after merge
	Drivers  []model.Driver // merged collection in canonical order
}

// ImportFile parses a single workbook into a driver batch without touching
// the store.
func (s *Service) ImportFile(path string) ([]model.Driver, error) {
	rows, err := readWorkbook(path)
	if err != nil {
		return nil, err
	}
	return mapRows(rows)
}

// Run locates the spreadsheet in the granted folder, parses it and loads
// the existing roster concurrently, merges by natural key, and persists the
// merged collection in a single replace. Nothing is written on failure.
func (s *Service) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Dir == "" {
		return nil, ErrPermissionNotGranted
	}

	path, err := locateFile(opts.Dir, opts.File)
	if err != nil {
		return nil, err
	}

	var batch, existing []model.Driver
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		batch, err = s.ImportFile(path)
		return err
	})
	g.Go(func() error {
		var err error
		existing, err = s.store.Load(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Merge(existing, batch)

	if opts.DryRun {
		zap.L().Info("import dry run",
			zap.Int("rows", len(batch)),
			zap.Int("total", len(merged)),
			zap.String("source", path),
		)
		return &Result{Imported: len(batch), Total: len(merged), Drivers: merged}, nil
	}

	saved, err := s.store.ReplaceAll(ctx, merged)
	if err != nil {
		return nil, err
	}

	zap.L().Info("import complete",
		zap.Int("rows", len(batch)),
		zap.Int("total", len(saved)),
		zap.String("source", path),
	)
	return &Result{Imported: len(batch), Total: len(saved), Drivers: saved}, nil
}

// locateFile finds name in dir, matching case-insensitively.
func locateFile(dir, name string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", eris.Wrapf(ErrFolderUnavailable, "%s", dir)
		}
		return "", eris.Wrapf(err, "importer: read folder %s", dir)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(e.Name(), name) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", eris.Wrapf(ErrFileNotFound, "%s not in %s", name, dir)
}
