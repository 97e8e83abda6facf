// cliparse/cliparse_test.go
package cliparse

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, rest, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Errorf("expected default API URL, got %s", cfg.APIBaseURL)
	}
	if cfg.StateDriver != "sqlite" || cfg.StateDSN != "dish4u.db" {
		t.Errorf("unexpected state store %s %s", cfg.StateDriver, cfg.StateDSN)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.DeliveryFee != 50 {
		t.Errorf("expected fee 50, got %v", cfg.DeliveryFee)
	}
	if len(rest) != 0 {
		t.Errorf("expected no remaining args, got %v", rest)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("API_BASE_URL", "http://localhost:3318/api/")
	os.Setenv("STATE_DRIVER", "postgres")
	os.Setenv("STATE_DSN", "postgres://test")
	os.Setenv("HTTP_TIMEOUT", "2s")
	os.Setenv("DELIVERY_FEE", "40")
	os.Setenv("ADMIN_TOKEN", "secret")
	defer os.Clearenv()

	cfg, _, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIBaseURL != "http://localhost:3318/api" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.APIBaseURL)
	}
	if cfg.StateDriver != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.StateDriver)
	}
	if cfg.HTTPTimeout != 2*time.Second {
		t.Errorf("expected 2s, got %v", cfg.HTTPTimeout)
	}
	if cfg.DeliveryFee != 40 {
		t.Errorf("expected fee 40, got %v", cfg.DeliveryFee)
	}
	if cfg.AdminToken != "secret" {
		t.Errorf("expected admin token from env, got %q", cfg.AdminToken)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("DELIVERY_FEE", "40")
	defer os.Clearenv()

	cfg, rest, err := ParseFlags([]string{"-fee", "25", "-d", "file:test.db", "checkout", "-first", "Asha"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.DeliveryFee != 25 {
		t.Errorf("CLI should override env: expected 25, got %v", cfg.DeliveryFee)
	}
	if strings.Join(rest, " ") != "checkout -first Asha" {
		t.Errorf("unexpected remaining args %v", rest)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	defer os.Clearenv()

	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad driver", []string{"-t", "mysql"}, nil},
		{"bad timeout", []string{"-timeout", "soon"}, nil},
		{"negative fee", nil, map[string]string{"DELIVERY_FEE": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			if _, _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ADMIN_TOKEN=from-file\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Setenv("LOG_LEVEL", "error")

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("ADMIN_TOKEN"); got != "from-file" {
		t.Errorf("expected token from .env, got %q", got)
	}
	// existing env wins
	if got := os.Getenv("LOG_LEVEL"); got != "error" {
		t.Errorf("expected LOG_LEVEL to stay error, got %q", got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := SetupLogger(Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "order_id", "ORD1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"order_id":"ORD1"`) {
		t.Errorf("expected JSON output, got %s", out)
	}
}

func TestParsePort(t *testing.T) {
	defer os.Clearenv()
	os.Clearenv()

	if p, _ := ParsePort(8080); p != 8080 {
		t.Errorf("flag should win, got %d", p)
	}
	if p, _ := ParsePort(0); p != DefaultPort {
		t.Errorf("expected default port, got %d", p)
	}
	os.Setenv("PORT", "9000")
	if p, _ := ParsePort(0); p != 9000 {
		t.Errorf("expected env port, got %d", p)
	}
	os.Setenv("PORT", "abc")
	if _, err := ParsePort(0); err == nil {
		t.Error("expected error for invalid PORT")
	}
}
