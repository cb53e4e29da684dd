package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/prefs"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List catalog subjects, marking bookmarks with *",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		p := prefs.NewService(s.PreferenceRepo(), zap.NewNop()).Load(cmd.Context())
		marked := make(map[string]bool, len(p.Bookmarks))
		for _, id := range p.Bookmarks {
			marked[id] = true
		}

		fmt.Printf("   %-12s %-12s %-14s %8s  %s\n", "ID", "Name", "Difficulty", "Progress", "Current topic")
		fmt.Println(strings.Repeat("─", 72))
		for _, sub := range catalog.Subjects() {
			mark := " "
			if marked[sub.ID] {
				mark = "*"
			}
			fmt.Printf("%s  %-12s %-12s %-14s %7.0f%%  %s\n",
				mark, sub.ID, sub.Name, sub.Difficulty, sub.Progress(), catalog.CurrentTopic(sub))
		}
		return nil
	},
}
