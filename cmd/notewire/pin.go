package main

import (
	"fmt"

	"github.com/notewire/notewire"
	"github.com/spf13/cobra"
)

var pinOff bool

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Pin a note to the top of the collection",
	Long:  `Pin (or with --off, unpin) a note. Pin changes re-sort the collection.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		_, coll, err := activeCollection(ctx)
		if err != nil {
			fatal("Error pinning note", err)
		}

		pinned := !pinOff
		updated, err := coll.Update(ctx, args[0], notewire.Patch{Pinned: &pinned})
		if err != nil {
			fatal("Error pinning note", err)
		}

		verb := "Pinned"
		if pinOff {
			verb = "Unpinned"
		}
		fmt.Printf("%s note %s (%q)\n", verb, updated.ID, updated.Title)
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
	pinCmd.Flags().BoolVar(&pinOff, "off", false, "Unpin instead of pin")
}
