package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutordesk/internal/analytics"
	"github.com/abhisek/tutordesk/internal/catalog"
	"github.com/abhisek/tutordesk/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study time, streak and quiz scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		days, _ := cmd.Flags().GetInt("days")
		now := time.Now()

		var activities []store.ActivityRecord
		if days > 0 {
			activities, err = s.ActivityRepo().Between(cmd.Context(), now.AddDate(0, 0, -days), now)
		} else {
			activities, err = s.ActivityRepo().All(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("load activities: %w", err)
		}
		if len(activities) == 0 {
			fmt.Println("No study sessions recorded yet.")
			return nil
		}

		sum := analytics.Summarize(activities, now, catalog.Subjects())
		if days > 0 {
			fmt.Printf("%-16s last %d day(s)\n", "Window:", days)
		}

		fmt.Printf("%-16s %s\n", "Today:", analytics.FormatMinutes(sum.TodayMinutes))
		fmt.Printf("%-16s %s\n", "This week:", analytics.FormatMinutes(sum.WeekMinutes))
		fmt.Printf("%-16s %s\n", "Total:", analytics.FormatMinutes(sum.TotalMinutes))
		fmt.Printf("%-16s %d day(s)\n", "Streak:", sum.Streak)
		fmt.Printf("%-16s %d\n", "Sessions:", sum.Sessions)
		fmt.Printf("%-16s %d%%\n", "Average score:", sum.AverageScore)
		fmt.Printf("%-16s %d/%d\n", "Finished:", sum.FinishedSubjects, sum.AllSubjects)

		fmt.Println()
		fmt.Println("Last 7 days")
		fmt.Println(strings.Repeat("─", 40))
		busiest := sum.BusiestDay()
		for _, d := range sum.Week {
			width := 0
			if busiest > 0 {
				width = d.Minutes * 24 / busiest
			}
			fmt.Printf("%-4s %-24s %s\n", d.Label, strings.Repeat("█", width), analytics.FormatMinutes(d.Minutes))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("days", 0, "Only count sessions from the last N days (0 for all)")
}
