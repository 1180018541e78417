package main

import (
	"fmt"

	"github.com/notewire/notewire"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Long:  `Delete a note after confirmation. --yes skips the prompt.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		// The confirmation capability is injected, not hardwired: the core
		// only knows it must ask before deleting.
		var opts []notewire.Option
		if !deleteYes {
			opts = append(opts, notewire.WithConfirm(promptConfirm))
		}

		_, coll, err := activeCollection(ctx, opts...)
		if err != nil {
			fatal("Error deleting note", err)
		}

		before := coll.Len()
		if err := coll.Delete(ctx, args[0]); err != nil {
			fatal("Error deleting note", err)
		}
		if coll.Len() == before {
			// Confirmation declined.
			fmt.Println("Aborted.")
			return
		}

		if sel, ok := coll.Selected(); ok {
			fmt.Printf("Deleted. Selection moved to %s (%q)\n", sel.ID, sel.Title)
			return
		}
		fmt.Println("Deleted.")
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
