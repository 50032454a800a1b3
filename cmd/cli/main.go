package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"orchidbreed/adapters/excel"
	"orchidbreed/app"
	"orchidbreed/domain/core"
	"orchidbreed/internal/config"
	"orchidbreed/internal/container"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	specimens string
	asJSON    bool
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var flags globalFlags
	rootCmd := &cobra.Command{
		Use:   "orchidbreed",
		Short: "Breeding compatibility predictions for orchid specimens",
		Long: `Assess breeding pairs, search for partners and analyze breeding programs.

Specimens come from DATABASE_URL, or from a spreadsheet given with --specimens
(xlsx or csv with id, genus, species, name and notes columns).`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.specimens, "specimens", "", "Specimen sheet to load instead of the database")
	rootCmd.PersistentFlags().BoolVar(&flags.asJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newAssessCmd(&flags),
		newPartnersCmd(&flags),
		newProgramCmd(&flags),
		newUsageCmd(&flags),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildContainer loads configuration; a --specimens file switches to the in-memory store
func buildContainer(ctx context.Context, flags *globalFlags) (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.specimens != "" {
		cfg.Data.SpecimensXLSX = flags.specimens
		cfg.Database.URL = ""
	}
	return container.New(ctx, cfg)
}

func newAssessCmd(flags *globalFlags) *cobra.Command {
	var enrich, persist bool

	cmd := &cobra.Command{
		Use:   "assess [specimen-a] [specimen-b]",
		Short: "Assess the breeding compatibility of two specimens",
		Long: `Assess one breeding pair.

Example: orchidbreed assess c1 c2 --specimens collection.xlsx --enrich`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildContainer(ctx, flags)
			if err != nil {
				return err
			}
			defer c.Shutdown(ctx)

			result, err := c.BreedingService.AssessPair(ctx, app.PairRequest{
				A:       core.SpecimenID(args[0]),
				B:       core.SpecimenID(args[1]),
				Enrich:  enrich,
				Persist: persist,
			})
			if err != nil {
				return err
			}
			if flags.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printAssessment(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&enrich, "enrich", false, "Request a narrative summary from the configured LLM provider")
	cmd.Flags().BoolVar(&persist, "persist", false, "Store the assessment")
	return cmd
}

func newPartnersCmd(flags *globalFlags) *cobra.Command {
	var traits []string
	var maxResults int

	cmd := &cobra.Command{
		Use:   "partners [specimen-id]",
		Short: "Rank breeding partners for a specimen",
		Long: `Search the specimen's compatible genera for partners scoring at least 30.

Example: orchidbreed partners c1 --trait compact --max 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildContainer(ctx, flags)
			if err != nil {
				return err
			}
			defer c.Shutdown(ctx)

			matches, err := c.BreedingService.FindPartners(ctx, app.PartnerRequest{
				ID:            core.SpecimenID(args[0]),
				DesiredTraits: traits,
				MaxResults:    maxResults,
			})
			if err != nil {
				return err
			}
			if flags.asJSON {
				return printJSON(cmd.OutOrStdout(), matches)
			}
			printPartners(cmd.OutOrStdout(), args[0], matches)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&traits, "trait", nil, "Desired traits, e.g. compact or miniature")
	cmd.Flags().IntVar(&maxResults, "max", 0, "Maximum partners to return (default from PARTNER_MAX_RESULTS)")
	return cmd
}

func newProgramCmd(flags *globalFlags) *cobra.Command {
	var export string
	var persist bool

	cmd := &cobra.Command{
		Use:   "program [specimen-ids...]",
		Short: "Analyze every pair of a breeding program",
		Long: `Assess all pairs of at least two specimens and report scores, diversity and recommendations.

Example: orchidbreed program c1 c2 l1 v1 --export program.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildContainer(ctx, flags)
			if err != nil {
				return err
			}
			defer c.Shutdown(ctx)

			ids := make([]core.SpecimenID, len(args))
			for i, a := range args {
				ids[i] = core.SpecimenID(a)
			}
			report, err := c.BreedingService.AnalyzeProgram(ctx, app.ProgramRequest{IDs: ids, Persist: persist})
			if err != nil {
				return err
			}

			if export != "" {
				if err := excel.WriteReportXLSX(export, report); err != nil {
					return fmt.Errorf("failed to export report: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", export)
			}
			if flags.asJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}
			printProgram(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "Write the report to an xlsx file")
	cmd.Flags().BoolVar(&persist, "persist", false, "Store the report")
	return cmd
}

func newUsageCmd(flags *globalFlags) *cobra.Command {
	var window time.Duration

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show LLM token usage of narrative enrichment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := buildContainer(ctx, flags)
			if err != nil {
				return err
			}
			defer c.Shutdown(ctx)

			summary, err := c.UsageService.Summary(ctx, window)
			if err != nil {
				return err
			}
			if flags.asJSON {
				return printJSON(cmd.OutOrStdout(), summary)
			}
			printUsage(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().DurationVar(&window, "window", 24*time.Hour, "Trailing window to aggregate")
	return cmd
}
