package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aiclex/crux-invoice/internal/logger"
	"github.com/aiclex/crux-invoice/internal/registry"
	"github.com/aiclex/crux-invoice/internal/server"
)

var (
	serverAddr    string
	serverDebug   bool
	readTimeout   time.Duration
	writeTimeout  time.Duration
	serveClients  string
	serveLogLevel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for assembling and rendering invoices.

The API provides endpoints for:
  - POST /api/v1/invoices/assemble - Assemble a document from a request
  - POST /api/v1/invoices/render   - Assemble and render a PDF
  - POST /api/v1/words             - Spell an amount out in words
  - GET  /api/v1/clients           - List known clients
  - GET  /health                   - Health check

Examples:
  # Start server on default port
  crux-invoice serve

  # Start on a custom port with a client directory
  crux-invoice serve --address :9090 --clients clients.csv

  # Start in debug mode
  crux-invoice serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default from config)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "HTTP write timeout")
	serveCmd.Flags().StringVar(&serveClients, "clients", "", "Client directory CSV file")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(serveLogLevel, serverDebug)
	if err != nil {
		return err
	}
	defer log.Sync()

	var clients *registry.Directory
	if serveClients != "" {
		clients, err = registry.LoadCSV(serveClients)
		if err != nil {
			return err
		}
		printVerbose("Loaded %d clients from %s\n", clients.Len(), serveClients)
	}

	address := serverAddr
	if address == "" {
		address = cfg.Server.Address
	}

	srv := server.NewServer(&server.Config{
		Address:      address,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug || cfg.Server.Debug,
	}, cfg.Company, clients, log)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", address)
	return srv.Run()
}
