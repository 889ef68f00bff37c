package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stacdex/stacdex/internal/logger"
	"github.com/stacdex/stacdex/internal/repositories"
	"github.com/stacdex/stacdex/internal/utils"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Bootstrap the schema and load lookup fixtures",
	Long: `seed creates the lookup and items tables if they are missing, then
loads category, status, grading company and condition names from a YAML
fixture file. Seeding is idempotent; existing names are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		log := logger.NewStdLogger()
		cfg := utils.LoadConfig(envFile)

		data, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("read seed file %s: %w", seedFile, err)
		}
		var fixtures repositories.LookupFixtures
		if err := yaml.Unmarshal(data, &fixtures); err != nil {
			return fmt.Errorf("parse seed file %s: %w", seedFile, err)
		}

		repo, err := repositories.NewDBRepository(cfg)
		if err != nil {
			return err
		}
		defer repo.Close()

		if aerr := repo.EnsureSchema(ctx); aerr != nil {
			return aerr
		}
		if aerr := repo.SeedLookups(ctx, fixtures); aerr != nil {
			return aerr
		}

		log.Infof("Seeded %d categories, %d statuses, %d grading companies, %d conditions",
			len(fixtures.Categories), len(fixtures.Statuses), len(fixtures.GradingCompanies), len(fixtures.Conditions))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "seed.yaml", "path to the lookup fixture file")
}
