package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduvoyager/internal/badges"
	"github.com/abhisek/eduvoyager/internal/progress"
	"github.com/abhisek/eduvoyager/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the signed-in learner's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		sess, err := manager.Resume(ctx)
		if err != nil {
			return err
		}
		if sess == nil {
			fmt.Println("Nobody is signed in. Run `eduvoyager` to sign in first.")
			return nil
		}

		fmt.Printf("%s <%s>\n", sess.Profile.DisplayName(), sess.Profile.Email)
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("XP:            %d\n", sess.Stats.XP)
		fmt.Printf("Streak:        %d days\n", sess.Stats.Streak)
		fmt.Printf("Modules done:  %d\n", sess.Stats.CompletedModules)
		fmt.Printf("NSQF level:    %d\n", sess.Stats.CurrentNSQFLevel)

		if rm := sess.Roadmap; rm != nil {
			fmt.Printf("Roadmap:       %s (%d/%d steps, target NSQF %d)\n",
				rm.Title, rm.CompletedCount(), len(rm.Steps), rm.TargetNSQFLevel)
		} else {
			fmt.Println("Roadmap:       none yet")
		}
		if n := len(sess.History); n > 0 {
			fmt.Printf("Past voyages:  %d\n", n)
		}

		if len(sess.Stats.Badges) > 0 {
			var names []string
			for _, id := range sess.Stats.Badges {
				if b := badges.Lookup(id); b != nil {
					names = append(names, b.Name)
				}
			}
			fmt.Printf("Badges:        %s\n", strings.Join(names, ", "))
		}

		return nil
	},
}
