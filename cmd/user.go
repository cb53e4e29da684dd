package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutordesk/internal/auth"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage local accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a local account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := auth.NewService(s.UserRepo()).Create(cmd.Context(), auth.RegisterInput{
			Name:     name,
			Email:    email,
			Password: password,
		})
		var verr *auth.ValidationError
		switch {
		case errors.As(err, &verr):
			return fmt.Errorf("invalid account: %s", verr.Error())
		case err != nil:
			return err
		}

		fmt.Printf("Created %s <%s> (%s)\n", rec.Name, rec.Email, rec.ID)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List local accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		users, err := s.UserRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No accounts yet. Create one with: tutordesk user add")
			return nil
		}

		fmt.Printf("%-24s  %-32s  %-5s  %6s  %s\n", "Name", "Email", "Level", "XP", "Joined")
		fmt.Println(strings.Repeat("─", 84))
		for _, u := range users {
			fmt.Printf("%-24s  %-32s  %-5d  %6d  %s\n",
				truncate(u.Name, 24), truncate(u.Email, 32), u.Level, u.XP, u.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	userAddCmd.Flags().String("name", "", "Display name")
	userAddCmd.Flags().String("email", "", "Sign-in email")
	userAddCmd.Flags().String("password", "", "Sign-in password")
	_ = userAddCmd.MarkFlagRequired("email")
	_ = userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
}
