package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutordesk/internal/config"
	"github.com/abhisek/tutordesk/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutordesk",
	Short: "Terminal learning dashboard with an AI tutor",
	Long:  "TutorDesk is a terminal study dashboard: subjects, practice quizzes, progress analytics and an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(userCmd)
}

// openStore resolves the configuration and opens the database it names.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, cfg, fmt.Errorf("create data dir: %w", err)
	}
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("open database: %w", err)
	}
	return s, cfg, nil
}
