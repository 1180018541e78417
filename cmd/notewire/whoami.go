package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the restored session, if any",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		ctrl, err := newController()
		if err != nil {
			fatal("Failed to initialize notewire", err)
		}
		if err := ctrl.Start(ctx); err != nil {
			fatal("Failed to restore session", err)
		}

		ident, ok := ctrl.Identity()
		if !ok {
			fmt.Println("Not logged in.")
			return
		}

		fmt.Printf("%s <%s> (id %s)\n", ident.DisplayName(), ident.Email, ident.ID)
		if coll, err := ctrl.Collection(); err == nil {
			count := coll.Len()
			noun := "notes"
			if count == 1 {
				noun = "note"
			}
			fmt.Printf("%d %s\n", count, noun)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
