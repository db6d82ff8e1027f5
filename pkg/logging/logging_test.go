package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/storefront/pkg/logging"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &buf)

	logger.Info("view rendered", "view", "Home")

	out := buf.String()
	for _, want := range []string{"level=INFO", `msg="view rendered"`, "view=Home", "service=storefront"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)

	logger.Warn("route overridden", "path", "/detail/:id")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", record["level"])
	}
	if record["path"] != "/detail/:id" {
		t.Errorf("path = %v, want /detail/:id", record["path"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}

	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("error record missing from output %q", buf.String())
	}
}

func TestNew_Source(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText, Source: true}, &buf)

	logger.Info("route checked")

	if !strings.Contains(buf.String(), "source=") || !strings.Contains(buf.String(), "logging_test.go") {
		t.Errorf("output %q missing call site", buf.String())
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &logging.Config{}
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize() failed: %v", err)
		}
		if cfg.Level != logging.LevelInfo || cfg.Format != logging.FormatText {
			t.Errorf("got %q/%q, want info/text", cfg.Level, cfg.Format)
		}
		if cfg.Source {
			t.Error("Source = true, want false")
		}
		if cfg.RequestLevel() != slog.LevelInfo {
			t.Errorf("RequestLevel() = %v, want INFO", cfg.RequestLevel())
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(logging.EnvLevel, "error")
		t.Setenv(logging.EnvFormat, "json")
		t.Setenv(logging.EnvSource, "true")
		t.Setenv(logging.EnvRequests, "debug")

		cfg := &logging.Config{Level: logging.LevelDebug}
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize() failed: %v", err)
		}
		if cfg.Level != logging.LevelError || cfg.Format != logging.FormatJSON {
			t.Errorf("got %q/%q, want error/json", cfg.Level, cfg.Format)
		}
		if !cfg.Source {
			t.Error("Source = false, want true")
		}
		if cfg.RequestLevel() != slog.LevelDebug {
			t.Errorf("RequestLevel() = %v, want DEBUG", cfg.RequestLevel())
		}
	})
}

func TestConfig_FinalizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    logging.Config
		env    map[string]string
		prefix string
	}{
		{"level", logging.Config{Level: "trace"}, nil, "level:"},
		{"format", logging.Config{Format: "xml"}, nil, "format:"},
		{"requests", logging.Config{Requests: "verbose"}, nil, "requests:"},
		{"source env", logging.Config{}, map[string]string{logging.EnvSource: "maybe"}, "invalid LOGGING_SOURCE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := tt.cfg
			err := cfg.Finalize()
			if err == nil {
				t.Fatal("Finalize() succeeded, want error")
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("error = %q, want prefix %q", err.Error(), tt.prefix)
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText, Requests: logging.LevelInfo}
	cfg.Merge(&logging.Config{Format: logging.FormatJSON, Source: true, Requests: logging.LevelDebug})

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info (should not change)", cfg.Level)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if !cfg.Source {
		t.Error("Source = false, want true")
	}
	if cfg.Requests != logging.LevelDebug {
		t.Errorf("Requests = %q, want debug", cfg.Requests)
	}
}
