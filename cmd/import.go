package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/roster-cli/internal/importer"
)

var (
	importDir    string
	importFile   string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import drivers from a spreadsheet and merge into the roster",
	Long:  "Reads Drivers.xls (or .xlsx) from the granted import folder, merges rows into the roster by natural key, and persists the merged collection in one write.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		dir, err := resolveImportDir()
		if err != nil {
			return err
		}

		file := importFile
		if file == "" {
			file = cfg.Import.File
		}

		svc := importer.New(openStore())
		res, err := svc.Run(ctx, importer.Options{
			Dir:    dir,
			File:   file,
			DryRun: importDryRun,
		})
		if err != nil {
			return eris.Wrap(err, "import")
		}

		if importDryRun {
			fmt.Printf("Dry run: %d rows would merge to %d total.\n", res.Imported, res.Total)
			return nil
		}
		fmt.Printf("Imported %d rows. %d total after merge.\n", res.Imported, res.Total)
		return nil
	},
}

// resolveImportDir picks the import folder: flag, then config, then the
// persisted grant. Empty means no folder was ever granted; the import
// service turns that into its permission error.
func resolveImportDir() (string, error) {
	if importDir != "" {
		return importDir, nil
	}
	if cfg.Import.Dir != "" {
		return cfg.Import.Dir, nil
	}
	return grantedDir()
}

func init() {
	importCmd.Flags().StringVar(&importDir, "dir", "", "import folder (overrides the granted folder)")
	importCmd.Flags().StringVar(&importFile, "file", "", "spreadsheet file name (default from config)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "merge without writing the roster")
	rootCmd.AddCommand(importCmd)
}
