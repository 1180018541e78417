package main

import (
	"fmt"

	"github.com/notewire/notewire"
	"github.com/spf13/cobra"
)

var (
	newTitle   string
	newContent string
	newTags    []string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a note and select it. Omitted fields use the stock draft defaults.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		_, coll, err := activeCollection(ctx)
		if err != nil {
			fatal("Error creating note", err)
		}

		draft := notewire.NewDraft()
		if cmd.Flags().Changed("title") {
			draft.Title = newTitle
		}
		if cmd.Flags().Changed("content") {
			draft.Content = newContent
		}
		if cmd.Flags().Changed("tags") {
			draft.Tags = newTags
		}

		created, err := coll.Create(ctx, draft)
		if err != nil {
			fatal("Error creating note", err)
		}

		fmt.Printf("Created note %s (%q)\n", created.ID, created.Title)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content")
	newCmd.Flags().StringSliceVar(&newTags, "tags", nil, "Comma-separated tags")
}
