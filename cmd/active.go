package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Mark a driver active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActive(cmd, args[0], true)
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Mark a driver inactive without removing them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActive(cmd, args[0], false)
	},
}

func setActive(cmd *cobra.Command, arg string, active bool) error {
	ctx := cmd.Context()

	id, err := strconv.Atoi(arg)
	if err != nil {
		return eris.Errorf("invalid driver id %q", arg)
	}

	drivers, err := openStore().SetActive(ctx, id, active)
	if err != nil {
		return eris.Wrap(err, "set active")
	}

	d, ok := findByID(drivers, id)
	if !ok {
		return eris.Errorf("no driver with id %d", id)
	}

	state := "active"
	if !active {
		state = "inactive"
	}
	fmt.Printf("%s is now %s.\n", d.Name, state)
	return nil
}

func init() {
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deactivateCmd)
}
