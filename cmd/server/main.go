package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_word_similarity/internal/config"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
	"github.com/baditaflorin/go_word_similarity/pkg/wordsim"
	"github.com/valyala/fasthttp"
)

// DefaultConcurrency of 0 means use fasthttp's default.
const DefaultConcurrency = 0

func main() {
	// Parse command-line flags; non-zero values override the config file
	configPath := flag.String("config", "", "Configuration file (default ~/.config/wordsim/config.toml or ./wordsim.toml)")
	port := flag.Int("port", 0, "HTTP server port")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests")
	logFile := flag.String("log-file", "", "Log file path (empty = stderr)")
	flag.Parse()

	cfg, resolved, exists, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}

	log, err := createLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting word similarity HTTP server",
		"config", resolved,
		"config_found", exists,
		"port", cfg.Server.Port,
		"read_timeout", cfg.ReadTimeout(),
		"write_timeout", cfg.WriteTimeout(),
		"max_request_size", cfg.Server.MaxRequestBytes,
		"max_batch_pairs", cfg.Server.MaxBatchPairs,
	)

	scorer, err := newScorer(cfg, log)
	if err != nil {
		log.Error("Failed to initialize scorer", "error", err)
		os.Exit(1)
	}
	log.Info("Scorer initialized successfully",
		"warm_up", cfg.Server.WarmUp,
		"cpus", runtime.NumCPU(),
	)

	api := newAPI(scorer, log, cfg.Server.MaxBatchPairs)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               api.requestHandler,
		ReadTimeout:           cfg.ReadTimeout(),
		WriteTimeout:          cfg.WriteTimeout(),
		MaxRequestBodySize:    cfg.Server.MaxRequestBytes,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // we'll handle logging ourselves
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// newScorer builds the shared scorer. Batch requests always report per-pair
// errors, so the configured error policy is not applied here.
func newScorer(cfg *config.Config, log ports.Logger) (*wordsim.Scorer, error) {
	opts := []wordsim.Option{
		wordsim.WithLogAdapter(log),
		wordsim.WithBaselineCache(cfg.Scoring.BaselineCacheSize),
		wordsim.WithWorkers(cfg.Scoring.Workers),
		wordsim.WithWindow(cfg.Scoring.Window),
		wordsim.WithErrorPolicy(wordsim.YieldErrors),
	}
	if cfg.Server.WarmUp {
		opts = append(opts, wordsim.WithWarmUp(true))
	}
	return wordsim.New(opts...)
}

// createLogger creates and configures a logger
func createLogger(cfg config.Logging) (ports.Logger, error) {
	log, err := logger.Open(cfg.File, logger.Options{
		JSON:      cfg.Format == "json",
		Async:     cfg.Async,
		AddSource: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}
