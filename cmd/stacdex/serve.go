package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stacdex/stacdex/internal/handlers"
	"github.com/stacdex/stacdex/internal/logger"
	"github.com/stacdex/stacdex/internal/repositories"
	"github.com/stacdex/stacdex/internal/services"
	"github.com/stacdex/stacdex/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the import HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := logger.NewStdLogger()
		cfg := utils.LoadConfig(envFile)

		repo, err := repositories.NewDBRepository(cfg)
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := services.NewService(repo)
		srv := handlers.NewServer(cfg, svc, log)
		return srv.Run(ctx)
	},
}
