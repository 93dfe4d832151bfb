package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"worklaw_backend/internals/configs"
	database "worklaw_backend/internals/databases"
	lawService "worklaw_backend/internals/features/law/service"
	knowledgeSeed "worklaw_backend/internals/seeds/knowledge"
	minwageSeed "worklaw_backend/internals/seeds/minwage"
)

// worklawctl bundles the one-shot data jobs: each command connects, does its
// upserts, and exits non-zero on failure.
func main() {
	root := &cobra.Command{
		Use:           "worklawctl",
		Short:         "One-shot ingestion and seeding jobs for the worklaw backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(ingestLawsCmd(), seedMinWageCmd(), seedKnowledgeCmd())

	if err := root.Execute(); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, configs.Settings, error) {
	configs.LoadEnv()
	settings := configs.LoadSettings()

	db, err := database.Connect(settings)
	if err != nil {
		return nil, settings, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, settings, fmt.Errorf("migrate: %w", err)
	}
	return db, settings, nil
}

func ingestLawsCmd() *cobra.Command {
	var timeoutMin int

	cmd := &cobra.Command{
		Use:   "ingest-laws",
		Short: "Fetch and cache the target labor statutes from the law OpenAPI",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, settings, err := openDB()
			if err != nil {
				return err
			}
			if settings.LawOC == "" {
				return fmt.Errorf("LAW_OC env is required (OC value for the national law OpenAPI)")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeoutMin)*time.Minute)
			defer cancel()

			res, err := lawService.NewIngestor(db, settings.LawOC).Run(ctx)
			if err != nil {
				return err
			}
			log.Printf("[INFO] ingest done: laws=%d articles=%d failures=%d",
				res.LawsUpserted, res.ArticlesUpserted, len(res.Failures))
			if res.LawsUpserted == 0 && len(res.Failures) > 0 {
				return fmt.Errorf("every law failed: %s", res.Failures[0])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&timeoutMin, "timeout", 10, "overall timeout in minutes")
	return cmd
}

func seedMinWageCmd() *cobra.Command {
	var (
		year   int
		amount int
		unit   string
	)

	cmd := &cobra.Command{
		Use:   "seed-minwage",
		Short: "Upsert one minimum_wage row",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDB()
			if err != nil {
				return err
			}
			return minwageSeed.SeedMinimumWage(db, year, amount, unit)
		},
	}

	cmd.Flags().IntVar(&year, "year", 2025, "wage year")
	cmd.Flags().IntVar(&amount, "amount", 10030, "hourly amount in KRW")
	cmd.Flags().StringVar(&unit, "unit", "KRW/hour", "unit label")
	return cmd
}

func seedKnowledgeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed-knowledge",
		Short: "Upsert the reference datasets (wage notices, holidays, bulletins, interpretations)",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDB()
			if err != nil {
				return err
			}
			return knowledgeSeed.SeedKnowledgeFromJSON(db, file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "internals/seeds/knowledge/data_knowledge.json", "seed JSON path")
	return cmd
}
