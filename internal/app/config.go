package app

import "time"

// Commands accepted by Run. The scorer commands print one report per input
// and exit non-zero when any input fails.
const (
	CommandCheck       = "check"
	CommandWordCount   = "word-count"
	CommandStructure   = "structure"
	CommandBrandVoice  = "brand-voice"
	CommandReadability = "readability"
	CommandSuggestions = "suggestions"
	CommandServe       = "serve"
	CommandWatch       = "watch"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Defaults applied after flags, env and file config have had their say.
const (
	DefaultFormat   = FormatJSON
	DefaultWorkers  = 4
	DefaultAddr     = ":8080"
	DefaultDebounce = 500 * time.Millisecond
)

// Config holds runtime configuration for the application.
type Config struct {
	Command string
	Inputs  []string

	// Rules
	RulesPath   string
	ContentType string

	// Output
	Format  string
	PDFPath string

	// Behavior
	Workers int
	Verbose bool

	// Serve / watch
	Addr     string
	Debounce time.Duration
}

// ApplyDefaults fills whatever is still unset.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}
}

// IsScorerCommand reports whether cmd runs the scorers over input files.
func IsScorerCommand(cmd string) bool {
	switch cmd {
	case CommandCheck, CommandWordCount, CommandStructure, CommandBrandVoice, CommandReadability, CommandSuggestions:
		return true
	}
	return false
}
