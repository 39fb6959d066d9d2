package importer

import (
	"math"
	"strconv"
	"strings"
)

// CellKind classifies a raw spreadsheet cell.
type CellKind int

const (
	CellBlank CellKind = iota
	CellText
	CellNumber
)

// Cell is a single spreadsheet cell normalized out of the workbook engines.
// Text holds the engine's formatted display value; Number is populated for
// CellNumber cells.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

func textCell(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: trimmed}
}

func numberCell(n float64, display string) Cell {
	return Cell{Kind: CellNumber, Text: strings.TrimSpace(display), Number: n}
}

// Value renders the cell as trimmed text. Numeric cells holding an integral
// value render as plain decimal text (964.0 becomes "964", not "964.0");
// other numerics keep the engine's formatted display value.
func (c Cell) Value() string {
	switch c.Kind {
	case CellNumber:
		if c.Number == math.Trunc(c.Number) && !math.IsInf(c.Number, 0) {
			return strconv.FormatInt(int64(c.Number), 10)
		}
		return c.Text
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// Year interprets the cell as an integral year, truncating toward zero.
// Numeric cells truncate directly; text cells must parse as a decimal
// number. Anything else means "no year", not an error.
func (c Cell) Year() *int {
	switch c.Kind {
	case CellNumber:
		y := int(c.Number)
		return &y
	case CellText:
		f, err := strconv.ParseFloat(c.Text, 64)
		if err != nil {
			return nil
		}
		y := int(f)
		return &y
	default:
		return nil
	}
}

// IsBlank reports whether the cell carries no value.
func (c Cell) IsBlank() bool {
	return c.Kind == CellBlank
}
