package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/roster-cli/internal/model"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Remove drivers from the roster",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		drivers, err := openStore().DeleteMany(ctx, ids)
		if err != nil {
			return eris.Wrap(err, "rm")
		}

		fmt.Printf("Removed %d id(s). %d drivers remain.\n", len(ids), len(drivers))
		return nil
	},
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil {
			return nil, eris.Errorf("invalid driver id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// findByID returns the driver with the given id, if present.
func findByID(drivers []model.Driver, id int) (model.Driver, bool) {
	for _, d := range drivers {
		if d.ID == id {
			return d, true
		}
	}
	return model.Driver{}, false
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
