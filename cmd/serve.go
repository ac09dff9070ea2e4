package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "task-board.com/task-board/internal/configs"
	httpapi "task-board.com/task-board/internal/http"
	"task-board.com/task-board/internal/identity"
	repository "task-board.com/task-board/internal/repositories"
	"task-board.com/task-board/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer logger.Sync()

		database := config.NewDatabase(cfg.DatabaseURL)

		taskRepo := repository.NewTaskRepository(database)
		applicantRepo := repository.NewApplicantRepository(database)

		taskService := services.NewTaskService(taskRepo)
		applicationService := services.NewApplicationService(applicantRepo)

		identityOpts := []identity.Option{}
		if cfg.ClerkAPIURL != "" {
			identityOpts = append(identityOpts, identity.WithBaseURL(cfg.ClerkAPIURL))
		}
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()

			cache := identity.NewRedisNameCache(
				redisClient,
				time.Duration(cfg.FirstNameCacheTTLSecs)*time.Second,
			)
			identityOpts = append(identityOpts, identity.WithNameCache(cache))
		}
		identityClient := identity.NewClerkClient(cfg.ClerkSecretKey, logger, identityOpts...)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService, applicationService, identityClient, logger)
		httpapi.Register(e, handler, logger, cfg.RateLimit)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
