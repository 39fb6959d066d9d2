package importer

import (
	"path/filepath"

	"github.com/extrame/xls"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// readWorkbook loads sheet 0 of the workbook at path as a cell grid.
// The legacy binary format is tried first, then the XML format; the first
// successful parse wins.
func readWorkbook(path string) ([][]Cell, error) {
	if rows, err := readXLS(path); err == nil {
		return rows, nil
	}
	if rows, err := readXLSX(path); err == nil {
		return rows, nil
	}
	return nil, eris.Wrapf(ErrUnreadableWorkbook, "%s parses as neither .xls nor .xlsx", filepath.Base(path))
}

func readXLS(path string) ([][]Cell, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, eris.Wrap(err, "importer: open xls")
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, eris.New("importer: xls has no sheets")
	}

	// The binary engine exposes cells as formatted strings only; integral
	// numerics already render without a fractional tail.
	rows := make([][]Cell, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]Cell, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = textCell(row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readXLSX(path string) ([][]Cell, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open xlsx")
	}

	if len(f.Sheets) == 0 {
		return nil, eris.New("importer: xlsx has no sheets")
	}
	sheet := f.Sheets[0]

	rows := make([][]Cell, len(sheet.Rows))
	for i, row := range sheet.Rows {
		cells := make([]Cell, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = normalizeXLSXCell(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

func normalizeXLSXCell(cell *xlsx.Cell) Cell {
	if cell.Type() == xlsx.CellTypeNumeric {
		if n, err := cell.Float(); err == nil {
			return numberCell(n, cell.String())
		}
	}
	return textCell(cell.String())
}
