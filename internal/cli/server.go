package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goTONAddr/internal/config"
	"github.com/LeJamon/goTONAddr/internal/server/api/jsonrpc"
	"github.com/LeJamon/goTONAddr/internal/server/cache"
)

var (
	// Server flags
	port     int
	bindAddr string
)

// serverCmd represents the server command (default action)
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the address conversion server",
	Long: `Start the tonaddrd server which provides:
- HTTP JSON-RPC API endpoints (address_parse, address_encode, address_validate)
- WebSocket endpoint accepting the same methods
- Health check endpoint

This is the default command when no subcommand is specified.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// Set server as the default command
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return serverCmd.RunE(cmd, args)
	}

	// Server-specific flags; zero values defer to the configuration file.
	serverCmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	serverCmd.Flags().StringVar(&bindAddr, "bind", "", "address to bind to (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if bindAddr != "" {
		cfg.Server.Bind = bindAddr
	}

	defaults, err := encoderFromFlags(cfg.Encode.Alphabet, !cfg.Encode.Bounceable, cfg.Encode.Testnet)
	if err != nil {
		return err
	}

	var parseCache *cache.ParseCache
	if cfg.Cache.Size > 0 {
		if parseCache, err = cache.New(cfg.Cache.Size); err != nil {
			return err
		}
	}

	handler := jsonrpc.NewAddressHandler(parseCache, defaults)
	httpServer := jsonrpc.NewServer(handler)
	wsServer := jsonrpc.NewWebSocketServer(handler)

	mux := http.NewServeMux()
	mux.Handle("/", httpServer)    // Main RPC endpoint
	mux.Handle("/rpc", httpServer) // Alternative RPC endpoint
	mux.Handle("/ws", wsServer)    // WebSocket endpoint

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"tonaddrd"}`))
	})

	listenAddr := fmt.Sprintf("%s:%d", cfg.Server.Bind, cfg.Server.Port)
	timeout := time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second

	if !quiet {
		fmt.Println("Starting tonaddrd - TON address toolkit")
		fmt.Printf("  - HTTP JSON-RPC: http://localhost:%d/\n", cfg.Server.Port)
		fmt.Printf("  - WebSocket:     ws://localhost:%d/ws\n", cfg.Server.Port)
		fmt.Printf("  - Health check:  http://localhost:%d/health\n", cfg.Server.Port)
	}

	server := &http.Server{
		Addr:         listenAddr,
		Handler:      mux,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	return server.ListenAndServe()
}
