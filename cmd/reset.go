package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Sign out, or delete an account with --email",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		manager := progress.NewManager(s.AccountRepo(), s.SessionRepo(), s.EventRepo())

		if email == "" {
			if err := manager.Logout(ctx); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		}

		if !yes {
			fmt.Printf("Delete the account %s and all of its progress? [y/N] ", email)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := manager.DeleteAccount(ctx, email); err != nil {
			return err
		}
		fmt.Printf("Account %s deleted.\n", email)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("email", "", "Delete this account instead of just signing out")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
