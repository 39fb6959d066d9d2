package importer

import (
	"strings"

	"github.com/rotisserie/eris"
)

// columns holds resolved zero-based column indices; -1 means absent.
type columns struct {
	name  int
	van   int
	year  int
	make  int
	model int
	phone int
}

// resolveColumns maps the header row to semantic columns. Header cells are
// lowercased and trimmed; each field binds to the first column whose header
// contains its keyword. Duplicate header text keeps its original scan
// position but the last occurrence's index wins. Name and van are
// mandatory; the rest resolve to absent.
func resolveColumns(header []Cell) (columns, error) {
	keys := make([]string, 0, len(header))
	index := make(map[string]int, len(header))
	for i, c := range header {
		key := strings.ToLower(c.Value())
		if key == "" {
			continue
		}
		if _, seen := index[key]; !seen {
			keys = append(keys, key)
		}
		index[key] = i
	}

	find := func(keyword string) int {
		for _, k := range keys {
			if strings.Contains(k, keyword) {
				return index[k]
			}
		}
		return -1
	}

	cols := columns{
		name:  find("name"),
		van:   find("van"),
		year:  find("year"),
		make:  find("make"),
		model: find("model"),
		phone: find("phone"),
	}

	if cols.name < 0 {
		return cols, eris.Wrap(ErrMissingColumn, `no header contains "name"`)
	}
	if cols.van < 0 {
		return cols, eris.Wrap(ErrMissingColumn, `no header contains "van"`)
	}
	return cols, nil
}
