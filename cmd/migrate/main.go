package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"orchidbreed/adapters/db/postgres/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var databaseURL string
	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the orchidbreed database schema",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")

	connect := func() (*sqlx.DB, error) {
		if databaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL or --database-url is required")
		}
		db, err := sqlx.Connect("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := connect()
				if err != nil {
					return err
				}
				defer db.Close()
				return migrations.NewMigrator(db.DB, cmd.OutOrStdout()).Up(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Forget the most recent migration record",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := connect()
				if err != nil {
					return err
				}
				defer db.Close()
				return migrations.NewMigrator(db.DB, cmd.OutOrStdout()).Down(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := connect()
				if err != nil {
					return err
				}
				defer db.Close()

				statuses, err := migrations.NewMigrator(db.DB, cmd.OutOrStdout()).Status(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tNAME\tAPPLIED")
				for _, s := range statuses {
					fmt.Fprintf(tw, "%s\t%s\t%t\n", s.Version, s.Name, s.Applied)
				}
				return tw.Flush()
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
