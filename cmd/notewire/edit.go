package main

import (
	"fmt"

	"github.com/notewire/notewire"
	"github.com/spf13/cobra"
)

var (
	editTitle    string
	editContent  string
	editTags     []string
	editArchived bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit fields of a note",
	Long: `Merge the given fields onto the note and push the result. Fields you
don't pass keep their current values. A plain edit never changes the
note's position in the list.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		_, coll, err := activeCollection(ctx)
		if err != nil {
			fatal("Error updating note", err)
		}

		var patch notewire.Patch
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &editContent
		}
		if cmd.Flags().Changed("tags") {
			patch.Tags = &editTags
		}
		if cmd.Flags().Changed("archived") {
			patch.Archived = &editArchived
		}

		updated, err := coll.Update(ctx, args[0], patch)
		if err != nil {
			fatal("Error updating note", err)
		}

		fmt.Printf("Updated note %s (%q)\n", updated.ID, updated.Title)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().StringSliceVar(&editTags, "tags", nil, "Replacement tag list")
	editCmd.Flags().BoolVar(&editArchived, "archived", false, "Archive flag")
}
