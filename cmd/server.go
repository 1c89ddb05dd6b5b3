package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profilekit/api"
	"profilekit/config"
	"profilekit/core"
	"profilekit/database"
	"profilekit/logger"
	"profilekit/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var (
	serverPort   string
	serverMemory bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the profile REST API server",
	Long: `Serves the profile API under /api and, when metrics are enabled, Prometheus
metrics under /metrics. Press Ctrl+C to shut down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		portToUse := serverPort
		if !cmd.Flags().Changed("port") {
			portToUse = config.AppConfig.Server.Port
		}
		if portToUse == "" {
			logger.Error("Server Command: Server port is empty after checking flag and config, defaulting to 8780")
			portToUse = "8780"
		}

		var service *core.ProfileService
		if serverMemory {
			logger.Info("Server Command: Using in-memory profile store; nothing will be persisted.")
			store := database.NewMemoryStore()
			if config.AppConfig.Database.SeedDefaults {
				if _, err := database.SeedDefaultProfiles(store); err != nil {
					return fmt.Errorf("seeding default profiles: %w", err)
				}
			}
			service = core.NewProfileService(store, metricsIfEnabled())
		} else {
			svc, closeDB, err := openProfileService()
			if err != nil {
				return err
			}
			defer closeDB()
			service = svc
		}

		apiRouter := api.NewRouter(service, api.Options{
			Metrics:       metricsIfEnabled(),
			CompressLevel: config.AppConfig.Server.CompressLevel,
		})

		mainMux := http.NewServeMux()
		mainMux.Handle("/api/", http.StripPrefix("/api", apiRouter))
		if config.AppConfig.Metrics.Enabled {
			mainMux.Handle("/metrics", promhttp.Handler())
			logger.Info("Server Command: Prometheus metrics exposed on /metrics.")
		}

		server := &http.Server{
			Addr:              ":" + portToUse,
			Handler:           mainMux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server Command: Listening on :%s", portToUse)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("could not start server: %w", err)
			}
		case <-ctx.Done():
			logger.Info("Server Command: Shutdown signal received...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server Command: Graceful shutdown failed: %v", err)
			return err
		}
		logger.Info("Server Command: Gracefully stopped.")
		return nil
	},
}

func metricsIfEnabled() *metrics.Metrics {
	if !config.AppConfig.Metrics.Enabled {
		return nil
	}
	return metrics.Get()
}

func init() {
	serverCmd.Flags().StringVarP(&serverPort, "port", "p", "8780", "Port for the server to listen on (overrides config)")
	serverCmd.Flags().BoolVar(&serverMemory, "memory", false, "keep profiles in memory instead of the SQLite database")
	rootCmd.AddCommand(serverCmd)
}
