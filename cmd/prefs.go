package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or reset saved preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved dark mode and bookmark settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		p := prefs.NewService(s.PreferenceRepo(), zap.NewNop()).Load(cmd.Context())

		fmt.Printf("%-12s %v\n", "Dark mode:", p.DarkMode)
		if len(p.Bookmarks) == 0 {
			fmt.Printf("%-12s none\n", "Bookmarks:")
			return nil
		}
		names := make([]string, 0, len(p.Bookmarks))
		for _, id := range p.Bookmarks {
			if sub, ok := catalog.SubjectByID(id); ok {
				names = append(names, sub.Name)
			} else {
				names = append(names, id+" (unknown)")
			}
		}
		fmt.Printf("%-12s %s\n", "Bookmarks:", strings.Join(names, ", "))
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved preferences and fall back to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := prefs.NewService(s.PreferenceRepo(), zap.NewNop()).Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset preferences: %w", err)
		}
		fmt.Println("Preferences reset to defaults.")
		return nil
	},
}

var prefsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove bookmarks that no longer match a catalog subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		removed, err := prefs.NewService(s.PreferenceRepo(), zap.NewNop()).Prune(cmd.Context(), catalog.Known)
		if err != nil {
			return fmt.Errorf("prune bookmarks: %w", err)
		}
		if len(removed) == 0 {
			fmt.Println("No stale bookmarks.")
			return nil
		}
		fmt.Printf("Removed %d stale bookmark(s): %s\n", len(removed), strings.Join(removed, ", "))
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsResetCmd)
	prefsCmd.AddCommand(prefsPruneCmd)
}
