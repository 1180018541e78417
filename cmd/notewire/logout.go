package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctrl, err := newController()
		if err != nil {
			fatal("Failed to initialize notewire", err)
		}

		// No restore round-trip needed; logout only tears down local state.
		if err := ctrl.Logout(); err != nil {
			fatal("Logout failed", err)
		}
		fmt.Println("Logged out.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
