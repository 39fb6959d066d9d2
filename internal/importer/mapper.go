package importer

import (
	"github.com/sells-group/roster-cli/internal/model"
)

// mapRows converts a workbook cell grid into a driver batch. Row 0 is the
// header; rows without a name are dropped entirely. The batch comes back
// sorted by van number ascending, non-numeric vans last, stable on ties.
func mapRows(rows [][]Cell) ([]model.Driver, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var batch []model.Driver
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}

		name := cellAt(row, cols.name).Value()
		if name == "" {
			continue
		}

		phone := cellAt(row, cols.phone).Value()
		d := model.Driver{
			ID:       model.DeriveID(name, phone),
			Name:     name,
			Van:      cellAt(row, cols.van).Value(),
			VanMake:  cellAt(row, cols.make).Value(),
			VanModel: cellAt(row, cols.model).Value(),
			Phone:    phone,
			Active:   true,
		}
		if cols.year >= 0 {
			d.VanYear = cellAt(row, cols.year).Year()
		}

		batch = append(batch, d)
	}

	model.SortByVan(batch)
	return batch, nil
}

// cellAt returns the cell at index i, or a blank cell when the column is
// unresolved or the row is short.
func cellAt(row []Cell, i int) Cell {
	if i < 0 || i >= len(row) {
		return Cell{}
	}
	return row[i]
}

func rowEmpty(row []Cell) bool {
	for _, c := range row {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}
