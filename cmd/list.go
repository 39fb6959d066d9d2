package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/roster-cli/internal/model"
)

var (
	listQuery string
	listAll   bool
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List drivers in the roster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		drivers, err := openStore().Load(ctx)
		if err != nil {
			return eris.Wrap(err, "list")
		}

		if !listAll {
			active := drivers[:0]
			for _, d := range drivers {
				if d.Active {
					active = append(active, d)
				}
			}
			drivers = active
		}

		drivers = model.Search(drivers, listQuery)

		if len(drivers) == 0 {
			fmt.Fprintln(os.Stderr, "No drivers found.")
			return nil
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return eris.Wrap(enc.Encode(drivers), "list: encode")
		}

		formatDriverList(os.Stdout, drivers)
		return nil
	},
}

func formatDriverList(w io.Writer, drivers []model.Driver) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVAN\tNAME\tVEHICLE\tPHONE\tACTIVE")
	for _, d := range drivers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%v\n",
			d.ID, d.Van, d.Name, vehicleDesc(d), d.Phone, d.Active)
	}
	tw.Flush() //nolint:errcheck
}

func vehicleDesc(d model.Driver) string {
	var parts []string
	if d.VanYear != nil {
		parts = append(parts, strconv.Itoa(*d.VanYear))
	}
	if d.VanMake != "" {
		parts = append(parts, d.VanMake)
	}
	if d.VanModel != "" {
		parts = append(parts, d.VanModel)
	}
	return strings.Join(parts, " ")
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "filter by name, van, make, model, or year")
	listCmd.Flags().BoolVar(&listAll, "all", false, "include inactive drivers")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}
