package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/notewire/notewire"
	"github.com/notewire/notewire/pkg/core"
	"github.com/spf13/cobra"
)

var (
	listQuery string
	listTag   string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes in collection order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := commandContext()
		defer cancel()

		_, coll, err := activeCollection(ctx)
		if err != nil {
			fatal("Error listing notes", err)
		}

		var notes []notewire.Note
		if listTag != "" {
			tagged, err := coll.MatchTags(listTag)
			if err != nil {
				fatal("Error listing notes", err)
			}
			// Narrow the tag view by the text query as well.
			for _, n := range tagged {
				if core.MatchesQuery(n, listQuery) {
					notes = append(notes, n)
				}
			}
		} else {
			notes = coll.Filter(listQuery)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		selected, hasSelection := coll.Selected()
		for _, n := range notes {
			marker := " "
			if n.Pinned {
				marker = "*"
			}
			cursor := " "
			if hasSelection && selected.ID == n.ID {
				cursor = ">"
			}
			fmt.Printf("%s%s %-24s %s\n", cursor, marker, n.ID, n.Title)
		}
		fmt.Printf("%d of %d notes\n", len(notes), coll.Len())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter by title/content substring")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag glob pattern (e.g. 'work/**')")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
