// galleryctl is the operator CLI for maintenance flows that have no place in
// the public API: creating admin accounts (there is no self-registration) and
// the one-time category backfill for rows created before categories existed.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/auth"
	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/card"
	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/config"
	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/db"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "galleryctl",
		Short:         "Operator tooling for the Thalapathy AI gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newAdminCmd())
	cmd.AddCommand(newBackfillCmd())

	return cmd
}

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}
	cmd.AddCommand(newAdminCreateCmd())
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account with a bcrypt-hashed password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			ctx := context.Background()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			admin, err := auth.NewRepository(pool).Create(ctx, email, hash)
			if err != nil {
				return err
			}

			fmt.Printf("created admin %s (%s)\n", admin.Email, admin.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email address")
	cmd.Flags().StringVar(&password, "password", "", "admin password")

	return cmd
}

func newBackfillCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Assign a category to every card that has none",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := card.NewRepository(pool).BackfillCategory(ctx, category)
			if err != nil {
				return err
			}

			fmt.Printf("backfilled %d cards with category %q\n", n, category)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", card.DefaultCategory, "category label to assign")

	return cmd
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg := config.Load()
	return db.Connect(ctx, cfg.DatabaseURL)
}
