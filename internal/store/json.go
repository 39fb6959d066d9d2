package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/roster-cli/internal/model"
)

// JSONStore implements Store backed by a single pretty-printed JSON file.
type JSONStore struct {
	path string
}

// NewJSON creates a store persisting to the given file path. The file is
// created on first Save.
func NewJSON(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the location of the persisted file.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Load(ctx context.Context) ([]model.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "store: load")
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []model.Driver{}, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "store: read %s", s.path)
	}

	var drivers []model.Driver
	if err := json.Unmarshal(data, &drivers); err != nil {
		return nil, eris.Wrapf(err, "store: parse %s", s.path)
	}
	return drivers, nil
}

// Save writes the collection to a temp file in the same directory and
// renames it over the target, so a concurrent Load sees either the old or
// the new file, never a partial one.
func (s *JSONStore) Save(ctx context.Context, drivers []model.Driver) error {
	if err := ctx.Err(); err != nil {
		return eris.Wrap(err, "store: save")
	}

	if drivers == nil {
		drivers = []model.Driver{}
	}

	data, err := json.MarshalIndent(drivers, "", "  ")
	if err != nil {
		return eris.Wrap(err, "store: marshal")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrapf(err, "store: mkdir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".drivers-*.json")
	if err != nil {
		return eris.Wrap(err, "store: create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return eris.Wrap(err, "store: write temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return eris.Wrap(err, "store: sync temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return eris.Wrap(err, "store: close temp file")
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return eris.Wrapf(err, "store: replace %s", s.path)
	}
	return nil
}

func (s *JSONStore) ReplaceAll(ctx context.Context, drivers []model.Driver) ([]model.Driver, error) {
	sorted := append([]model.Driver(nil), drivers...)
	model.Sort(sorted)
	if err := s.Save(ctx, sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}

func (s *JSONStore) Upsert(ctx context.Context, d model.Driver) ([]model.Driver, error) {
	drivers, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range drivers {
		if drivers[i].ID == d.ID {
			drivers[i] = d
			replaced = true
			break
		}
	}
	if !replaced {
		drivers = append(drivers, d)
	}

	return s.ReplaceAll(ctx, drivers)
}

func (s *JSONStore) Delete(ctx context.Context, id int) ([]model.Driver, error) {
	return s.DeleteMany(ctx, []int{id})
}

// DeleteMany filters without re-sorting: removing entries from an already
// canonical collection preserves its order.
func (s *JSONStore) DeleteMany(ctx context.Context, ids []int) ([]model.Driver, error) {
	drivers, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := drivers[:0]
	for _, d := range drivers {
		if _, ok := drop[d.ID]; !ok {
			kept = append(kept, d)
		}
	}

	if err := s.Save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *JSONStore) SetActive(ctx context.Context, id int, active bool) ([]model.Driver, error) {
	drivers, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range drivers {
		if drivers[i].ID == id {
			drivers[i].Active = active
		}
	}

	return s.ReplaceAll(ctx, drivers)
}
