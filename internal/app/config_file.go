package app

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "time"

    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/styleguard/internal/document"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
    Rules       string `yaml:"rules" json:"rules"`
    ContentType string `yaml:"contentType" json:"contentType"`
    Format      string `yaml:"format" json:"format"`
    Workers     int    `yaml:"workers" json:"workers"`
    PDF         string `yaml:"pdf" json:"pdf"`
    Verbose     bool   `yaml:"verbose" json:"verbose"`

    Serve struct {
        Addr string `yaml:"addr" json:"addr"`
    } `yaml:"serve" json:"serve"`

    Watch struct {
        Debounce string `yaml:"debounce" json:"debounce"`
    } `yaml:"watch" json:"watch"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := strings.ToLower(filepath.Ext(path)); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    if fc.Watch.Debounce != "" {
        if _, err := time.ParseDuration(fc.Watch.Debounce); err != nil {
            return fc, fmt.Errorf("parse config: watch.debounce: %w", err)
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset. Flags and env have already been applied; the file only
// supplies what they left empty.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if cfg.RulesPath == "" && fc.Rules != "" { cfg.RulesPath = fc.Rules }
    if cfg.ContentType == "" && fc.ContentType != "" { cfg.ContentType = fc.ContentType }
    if cfg.Format == "" && fc.Format != "" { cfg.Format = fc.Format }
    if cfg.Workers == 0 && fc.Workers > 0 { cfg.Workers = fc.Workers }
    if cfg.PDFPath == "" && fc.PDF != "" { cfg.PDFPath = fc.PDF }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
    if cfg.Addr == "" && fc.Serve.Addr != "" { cfg.Addr = fc.Serve.Addr }
    if cfg.Debounce == 0 && fc.Watch.Debounce != "" {
        if d, err := time.ParseDuration(fc.Watch.Debounce); err == nil { cfg.Debounce = d }
    }
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
    switch {
    case IsScorerCommand(cfg.Command), cfg.Command == CommandWatch:
        if len(cfg.Inputs) == 0 {
            return fmt.Errorf("config: %w", ErrNoInputs)
        }
    case cfg.Command == CommandServe:
    default:
        return fmt.Errorf("config: %w: %q", ErrUnknownCommand, cfg.Command)
    }
    for _, in := range cfg.Inputs {
        if strings.TrimSpace(in) == "" {
            return fmt.Errorf("config: %w: empty input path", ErrNoInputs)
        }
    }
    if cfg.Format != FormatJSON && cfg.Format != FormatText {
        return fmt.Errorf("config: unknown format %q (want json or text)", cfg.Format)
    }
    if cfg.Workers < 0 {
        return fmt.Errorf("config: workers must not be negative")
    }
    if cfg.Debounce < 0 {
        return fmt.Errorf("config: debounce must not be negative")
    }
    if cfg.ContentType != "" {
        if _, ok := document.ParseContentType(cfg.ContentType); !ok {
            return fmt.Errorf("config: unknown content type %q", cfg.ContentType)
        }
    }
    return nil
}
