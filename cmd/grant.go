package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/roster-cli/internal/settings"
)

// settingsPathFn is swapped in tests.
var settingsPathFn = settings.DefaultPath

var grantShow bool

var grantCmd = &cobra.Command{
	Use:   "grant [dir]",
	Short: "Grant the import folder once; it is remembered across runs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPathFn()
		if err != nil {
			return err
		}
		st, err := settings.Open(path)
		if err != nil {
			return err
		}

		if grantShow || len(args) == 0 {
			if dir := st.GrantedDir(); dir != "" {
				fmt.Printf("Import folder: %s\n", dir)
			} else {
				fmt.Println("No import folder granted yet.")
			}
			return nil
		}

		dir, err := filepath.Abs(args[0])
		if err != nil {
			return eris.Wrapf(err, "grant: resolve %s", args[0])
		}
		info, err := os.Stat(dir)
		if err != nil {
			return eris.Wrapf(err, "grant: stat %s", dir)
		}
		if !info.IsDir() {
			return eris.Errorf("%s is not a directory", dir)
		}

		if err := st.SetGrantedDir(dir); err != nil {
			return err
		}
		fmt.Printf("Import folder granted: %s\n", dir)
		return nil
	},
}

// grantedDir returns the persisted import folder, or "" when never granted.
func grantedDir() (string, error) {
	path, err := settingsPathFn()
	if err != nil {
		return "", err
	}
	st, err := settings.Open(path)
	if err != nil {
		return "", err
	}
	return st.GrantedDir(), nil
}

func init() {
	grantCmd.Flags().BoolVar(&grantShow, "show", false, "print the granted folder")
	rootCmd.AddCommand(grantCmd)
}
