package app

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    if cfg.RulesPath == "" {
        cfg.RulesPath = strings.TrimSpace(os.Getenv("STYLEGUARD_RULES"))
    }
    if cfg.ContentType == "" {
        cfg.ContentType = strings.TrimSpace(os.Getenv("STYLEGUARD_CONTENT_TYPE"))
    }
    if cfg.Format == "" {
        cfg.Format = strings.ToLower(strings.TrimSpace(os.Getenv("STYLEGUARD_FORMAT")))
    }
    if cfg.Addr == "" {
        cfg.Addr = strings.TrimSpace(os.Getenv("STYLEGUARD_ADDR"))
    }
    if cfg.Workers == 0 {
        if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("STYLEGUARD_WORKERS"))); err == nil && n > 0 {
            cfg.Workers = n
        }
    }
    if cfg.Debounce == 0 {
        if s := os.Getenv("STYLEGUARD_DEBOUNCE"); s != "" {
            if d, err := time.ParseDuration(s); err == nil {
                cfg.Debounce = d
            }
        }
    }

    if !cfg.Verbose {
        switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
        case "1", "true", "yes", "on":
            cfg.Verbose = true
        }
    }
}
