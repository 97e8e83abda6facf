package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when neither a flag nor an env variable is set
const (
	DefaultAPIBaseURL  = "https://my-project-932b.onrender.com/api"
	DefaultStateDriver = "sqlite"
	DefaultStateDSN    = "dish4u.db"
	DefaultTimeout     = 15 * time.Second
	DefaultDeliveryFee = 50.0
	DefaultPort        = 3318
)

type Config struct {
	APIBaseURL  string
	StateDriver string
	StateDSN    string
	HTTPTimeout time.Duration
	DeliveryFee float64
	AdminToken  string
	LogLevel    string
	LogFormat   string
}

// ParseFlags reads global flags up to the first subcommand and returns the
// remaining arguments. Unset flags fall back to the environment, which may
// be seeded from a .env file.
func ParseFlags(args []string) (Config, []string, error) {
	var cfg Config
	var timeout string
	var fee string

	fs := flag.NewFlagSet("dish4u", flag.ContinueOnError)

	// Backend and local state
	fs.StringVar(&cfg.APIBaseURL, "api", "", "Backend base URL")
	fs.StringVar(&cfg.StateDriver, "t", "", "State store driver (sqlite or postgres)")
	fs.StringVar(&cfg.StateDSN, "d", "", "State store DSN")
	fs.StringVar(&timeout, "timeout", "", "HTTP timeout (e.g. 15s)")
	fs.StringVar(&fee, "fee", "", "Delivery fee")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminToken, "admin-token", "", "Admin bearer token (prefer env)")

	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	if err := LoadDotEnv(".env"); err != nil {
		return Config{}, nil, err
	}

	// Fall back to environment variables
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = envOr("API_BASE_URL", DefaultAPIBaseURL)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if cfg.StateDriver == "" {
		cfg.StateDriver = envOr("STATE_DRIVER", DefaultStateDriver)
	}
	if cfg.StateDriver != "sqlite" && cfg.StateDriver != "postgres" {
		return Config{}, nil, fmt.Errorf("unsupported state driver %q (use sqlite or postgres)", cfg.StateDriver)
	}
	if cfg.StateDSN == "" {
		cfg.StateDSN = envOr("STATE_DSN", DefaultStateDSN)
	}

	if timeout == "" {
		timeout = os.Getenv("HTTP_TIMEOUT")
	}
	cfg.HTTPTimeout = DefaultTimeout
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return Config{}, nil, errors.New("invalid HTTP timeout (use -timeout or HTTP_TIMEOUT, e.g. 15s)")
		}
		cfg.HTTPTimeout = d
	}

	if fee == "" {
		fee = os.Getenv("DELIVERY_FEE")
	}
	cfg.DeliveryFee = DefaultDeliveryFee
	if fee != "" {
		f, err := strconv.ParseFloat(fee, 64)
		if err != nil || f < 0 {
			return Config{}, nil, errors.New("invalid delivery fee (use -fee or DELIVERY_FEE)")
		}
		cfg.DeliveryFee = f
	}

	if cfg.AdminToken == "" {
		cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = envOr("LOG_LEVEL", "info")
	}
	cfg.LogFormat = envOr("LOG_FORMAT", "text")

	return cfg, fs.Args(), nil
}

// LoadDotEnv loads KEY=value pairs from path without overriding variables
// that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// SetupLogger installs the default slog logger for cfg and returns it.
func SetupLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var h slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h).With("app", "dish4u")
	slog.SetDefault(logger)
	return logger
}

func ParseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParsePort reads the stub server port from the -p flag or PORT env.
func ParsePort(flagValue int) (int, error) {
	if flagValue != 0 {
		return flagValue, nil
	}
	portStr := os.Getenv("PORT")
	if portStr == "" {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, errors.New("invalid PORT env variable")
	}
	return port, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
