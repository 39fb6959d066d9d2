package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/roster-cli/internal/config"
	"github.com/sells-group/roster-cli/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "roster-cli",
	Short: "Driver and van roster manager",
	Long:  "Maintains a JSON roster of drivers and their assigned vans, with bulk import from legacy .xls and .xlsx spreadsheets and merge-on-import reconciliation.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openStore() *store.JSONStore {
	return store.NewJSON(cfg.Store.Path)
}
