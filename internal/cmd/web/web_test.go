package web

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("INNOVASMART_WEB_HTTP_ADDR", "")
	os.Unsetenv("INNOVASMART_WEB_HTTP_ADDR")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogPretty {
		t.Fatalf("LogPretty = %t, want false", cfg.LogPretty)
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("INNOVASMART_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("INNOVASMART_WEB_ASSET_BASE_URL", "https://cdn.example.com/")
	t.Setenv("INNOVASMART_WEB_LOG_LEVEL", "debug")
	t.Setenv("INNOVASMART_WEB_LOG_PRETTY", "true")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.AssetBaseURL != "https://cdn.example.com/" {
		t.Fatalf("AssetBaseURL = %q", cfg.AssetBaseURL)
	}
	if cfg.LogLevel != "debug" || !cfg.LogPretty {
		t.Fatalf("log config = (%q, %t), want (debug, true)", cfg.LogLevel, cfg.LogPretty)
	}
}

func TestParseConfigRejectsMalformedBool(t *testing.T) {
	t.Setenv("INNOVASMART_WEB_LOG_PRETTY", "sometimes")

	if _, err := ParseConfig(); err == nil {
		t.Fatal("expected error for malformed bool")
	}
}

func execute(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg.LogWriter = &stderr
	root := NewRootCommand(cfg)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestExportCommandWritesSite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stdout, err := execute(t, Config{LogLevel: "info"}, "export", "--out", dir, "--reveal-all")
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(stdout, "index.html") {
		t.Fatalf("stdout = %q, want index.html listed", stdout)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "is-revealed") {
		t.Fatalf("reveal-all export should render revealed cards")
	}
}

func TestExportCommandRequiresOut(t *testing.T) {
	t.Parallel()

	if _, err := execute(t, Config{LogLevel: "info"}, "export"); err == nil {
		t.Fatal("expected error without --out")
	}
}

func TestServeFlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	_, err := execute(t, Config{HTTPAddr: "localhost:8080", LogLevel: "info"}, "serve", "--http-addr", "not-an-address")
	if err == nil || !strings.Contains(err.Error(), "not-an-address") {
		t.Fatalf("serve error = %v, want invalid address from flag", err)
	}
}

func TestInvalidLogLevelFails(t *testing.T) {
	t.Parallel()

	_, err := execute(t, Config{LogLevel: "loud"}, "--log-level", "loud", "export", "--out", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "init logger") {
		t.Fatalf("error = %v, want logger init failure", err)
	}
}

func TestExportRequiresOutputDir(t *testing.T) {
	t.Parallel()

	if _, err := Export(context.Background(), Config{}, ExportConfig{}); err == nil {
		t.Fatal("expected error for empty output directory")
	}
}
