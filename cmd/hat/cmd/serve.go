/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/ssargent/hatdecoder/pkg/api"
	"github.com/ssargent/hatdecoder/pkg/hat"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the decode REST API server",
	Long: `Start an HTTP server that decodes .hat containers posted to it.

Endpoints:
  POST /api/v1/decode        JSON with team name and base64 image
  POST /api/v1/decode/image  the image itself
  GET  /api/v1/health
  GET  /metrics              Prometheus metrics

Examples:
  hat serve --port=8080
  hat serve --bind=0.0.0.0 --api-key=mysecretkey`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Server.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Server.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := loggerFrom(cmd)
		if cfg.Server.APIKey == "" {
			logger.Warn("No API key configured, the decode API is unauthenticated")
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		server := api.NewServer(hat.NewDecoder(), api.ServerConfig{
			Bind:         cfg.Server.Bind,
			Port:         cfg.Server.Port,
			APIKey:       cfg.Server.APIKey,
			MaxBodyBytes: cfg.Server.MaxBodyBytes,
		}, api.NewMetrics(reg), logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.StartServer(ctx, server, reg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key required in X-API-Key (empty disables auth)")
}
