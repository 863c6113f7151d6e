package app

import (
    "os"
    "path/filepath"
    "testing"
    "time"
)

// LoadEnvFiles reads KEY=VALUE pairs and populates os.Environ.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
    t.Setenv("FOO", "")
    t.Setenv("BAR", "")

    dir := t.TempDir()
    envPath := filepath.Join(dir, ".env.test")
    content := "\n# sample dotenv file\nFOO=alpha\nBAR=\"beta\"\n"
    if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
        t.Fatalf("write dotenv: %v", err)
    }

    if err := LoadEnvFiles(envPath); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }

    if got := os.Getenv("FOO"); got != "alpha" {
        t.Fatalf("FOO=%q, want alpha", got)
    }
    if got := os.Getenv("BAR"); got != "beta" {
        t.Fatalf("BAR=%q, want beta", got)
    }
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
    t.Setenv("K", "")
    dir := t.TempDir()
    a := filepath.Join(dir, ".env.a")
    b := filepath.Join(dir, ".env.b")
    if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil { t.Fatalf("write a: %v", err) }
    if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil { t.Fatalf("write b: %v", err) }

    if err := LoadEnvFiles(a, filepath.Join(dir, "missing.env"), b); err != nil {
        t.Fatalf("LoadEnvFiles error: %v", err)
    }
    if got := os.Getenv("K"); got != "second" {
        t.Fatalf("override order failed: got %q, want second", got)
    }
}

func TestApplyEnvToConfig_FromEnv(t *testing.T) {
    t.Setenv("STYLEGUARD_RULES", "/etc/styleguard/rules.yaml")
    t.Setenv("STYLEGUARD_CONTENT_TYPE", "tech")
    t.Setenv("STYLEGUARD_FORMAT", "TEXT")
    t.Setenv("STYLEGUARD_WORKERS", "8")
    t.Setenv("STYLEGUARD_ADDR", ":9090")
    t.Setenv("STYLEGUARD_DEBOUNCE", "2s")
    t.Setenv("VERBOSE", "yes")

    var cfg Config
    ApplyEnvToConfig(&cfg)
    if cfg.RulesPath != "/etc/styleguard/rules.yaml" || cfg.ContentType != "tech" {
        t.Fatalf("rules/content type not read: %+v", cfg)
    }
    if cfg.Format != FormatText {
        t.Fatalf("Format=%q, want text", cfg.Format)
    }
    if cfg.Workers != 8 || cfg.Addr != ":9090" || cfg.Debounce != 2*time.Second {
        t.Fatalf("numeric settings not read: %+v", cfg)
    }
    if !cfg.Verbose {
        t.Fatalf("VERBOSE=yes should enable verbose")
    }
}

// Values already set (from flags) win over the environment.
func TestApplyEnvToConfig_ExplicitWins(t *testing.T) {
    t.Setenv("STYLEGUARD_FORMAT", "text")
    t.Setenv("STYLEGUARD_WORKERS", "not-a-number")
    cfg := Config{Format: FormatJSON}
    ApplyEnvToConfig(&cfg)
    if cfg.Format != FormatJSON {
        t.Fatalf("flag value overridden by env: %q", cfg.Format)
    }
    if cfg.Workers != 0 {
        t.Fatalf("invalid STYLEGUARD_WORKERS should be ignored, got %d", cfg.Workers)
    }
}
