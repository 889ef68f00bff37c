package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stacdex/stacdex/internal/logger"
	"github.com/stacdex/stacdex/internal/repositories"
	"github.com/stacdex/stacdex/internal/services"
	"github.com/stacdex/stacdex/internal/spreadsheet"
	"github.com/stacdex/stacdex/internal/utils"
)

var templateOut string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the import template workbook to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		log := logger.NewStdLogger()
		cfg := utils.LoadConfig(envFile)

		repo, err := repositories.NewDBRepository(cfg)
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := services.NewService(repo)
		data, err := svc.BuildTemplate(ctx)
		if err != nil {
			return err
		}

		if err := os.WriteFile(templateOut, data, 0o644); err != nil {
			return fmt.Errorf("write template %s: %w", templateOut, err)
		}
		log.Infof("Wrote import template to %s", templateOut)
		return nil
	},
}

func init() {
	templateCmd.Flags().StringVar(&templateOut, "out", spreadsheet.TemplateFilename, "output path for the template workbook")
}
