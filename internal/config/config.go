package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Run modes for the Telegram transport.
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	Token           string
	Mode            string
	RunAddress      string
	Domain          string
	OrdersFile      string
	ProductsFile    string
	PollTimeout     time.Duration
	WorkerPoolSize  int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultMode            = ModePolling
	defaultOrdersFile      = "orders.json"
	defaultProductsFile    = "products.json"
	defaultPollTimeout     = 30 * time.Second
	defaultWorkerPoolSize  = 4
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		Token:           getString(lookup, "TOKEN", ""),
		Mode:            getString(lookup, "BOT_MODE", defaultMode),
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		Domain:          getString(lookup, "DOMAIN", ""),
		OrdersFile:      getString(lookup, "ORDERS_FILE", defaultOrdersFile),
		ProductsFile:    getString(lookup, "PRODUCTS_FILE", defaultProductsFile),
		PollTimeout:     getDuration(lookup, "POLL_TIMEOUT", defaultPollTimeout),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderbot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollTimeoutStr     = cfg.PollTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "Update transport: polling or webhook")
	fs.StringVar(&cfg.Domain, "domain", cfg.Domain, "Public domain for webhook registration")
	fs.StringVar(&cfg.OrdersFile, "orders", cfg.OrdersFile, "Path to the order store file")
	fs.StringVar(&cfg.ProductsFile, "products", cfg.ProductsFile, "Path to the product catalog file")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent update workers")
	fs.StringVar(&pollTimeoutStr, "poll-timeout", pollTimeoutStr, "Long poll timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PollTimeout, err = time.ParseDuration(pollTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid poll timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if tokenFile, ok := lookup("TOKEN_FILE"); ok && tokenFile != "" {
		content, err := os.ReadFile(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("read token file: %w", err)
		}
		cfg.Token = strings.TrimSpace(string(content))
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = defaultPollTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("bot token must be provided")
	}

	if cfg.Mode != ModePolling && cfg.Mode != ModeWebhook {
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	if cfg.Mode == ModeWebhook && cfg.Domain == "" {
		return nil, fmt.Errorf("webhook mode requires a public domain")
	}

	return cfg, nil
}

// WebhookPath is the local route Telegram posts updates to. The token keeps
// the route unguessable, the same trick the platform docs suggest.
func (c *Config) WebhookPath() string {
	return "/bot/" + c.Token
}

// WebhookURL is the public endpoint registered with Telegram.
func (c *Config) WebhookURL() string {
	return "https://" + c.Domain + c.WebhookPath()
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
