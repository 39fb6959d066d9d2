package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/roster-cli/internal/model"
)

var (
	addName  string
	addVan   string
	addYear  string
	addMake  string
	addModel string
	addPhone string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a driver",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		name := strings.TrimSpace(addName)
		if name == "" {
			return eris.New("driver name must not be blank")
		}

		d := model.Driver{
			ID:       model.DeriveID(name, addPhone),
			Name:     name,
			Van:      strings.TrimSpace(addVan),
			VanMake:  strings.TrimSpace(addMake),
			VanModel: strings.TrimSpace(addModel),
			Phone:    strings.TrimSpace(addPhone),
			Active:   true,
		}
		if y, err := strconv.Atoi(strings.TrimSpace(addYear)); err == nil {
			d.VanYear = &y
		}

		drivers, err := openStore().Upsert(ctx, d)
		if err != nil {
			return eris.Wrap(err, "add")
		}

		zap.L().Info("driver saved",
			zap.Int("id", d.ID),
			zap.String("name", d.Name),
			zap.Int("total", len(drivers)),
		)
		fmt.Printf("Saved %s (id %d). %d drivers total.\n", d.Name, d.ID, len(drivers))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "driver name (required)")
	addCmd.Flags().StringVar(&addVan, "van", "", "van number")
	addCmd.Flags().StringVar(&addYear, "year", "", "van year")
	addCmd.Flags().StringVar(&addMake, "make", "", "van make")
	addCmd.Flags().StringVar(&addModel, "model", "", "van model")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "contact phone")
	_ = addCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(addCmd)
}
