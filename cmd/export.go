package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/sells-group/roster-cli/internal/model"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster to an .xlsx workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		drivers, err := openStore().Load(ctx)
		if err != nil {
			return eris.Wrap(err, "export")
		}

		f, err := buildWorkbook(drivers)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck

		if err := f.SaveAs(exportOut); err != nil {
			return eris.Wrapf(err, "export: save %s", exportOut)
		}

		fmt.Printf("Exported %d drivers to %s.\n", len(drivers), exportOut)
		return nil
	},
}

// buildWorkbook writes the roster into a workbook whose header row matches
// what the importer resolves, so an exported file can be re-imported.
func buildWorkbook(drivers []model.Driver) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	header := []any{"Name", "Van", "Year", "Make", "Model", "Phone"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for i, d := range drivers {
		row := []any{d.Name, d.Van, nil, d.VanMake, d.VanModel, d.Phone}
		if d.VanYear != nil {
			row[2] = *d.VanYear
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return eris.Wrap(err, "export: cell name")
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return eris.Wrapf(err, "export: set %s", cell)
		}
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "roster.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
