package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/styleguard/internal/document"
)

// LoadFile reads a YAML or JSON rules file and overlays it on Default.
// Sections absent from the file keep their defaults; lists present in the
// file replace the default lists. The merged rules are validated.
func LoadFile(path string) (Rules, error) {
	r := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("read rules: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &r); err != nil {
			return r, fmt.Errorf("parse rules yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &r); err != nil {
			return r, fmt.Errorf("parse rules json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &r); err != nil {
			r = Default()
			if jerr := json.Unmarshal(b, &r); jerr != nil {
				return r, fmt.Errorf("parse rules: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	if err := Validate(r); err != nil {
		return r, err
	}
	return r, nil
}

var validate = validator.New()

// Validate checks the tables for internal consistency.
func Validate(r Rules) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	if _, ok := r.Profiles[document.Default]; !ok {
		return fmt.Errorf("invalid rules: profiles must include %q", document.Default)
	}
	for ct, p := range r.Profiles {
		if canon, ok := document.ParseContentType(string(ct)); !ok || canon != ct {
			return fmt.Errorf("invalid rules: unknown content type %q", ct)
		}
		if p.Min > p.Target || p.Target > p.Max {
			return fmt.Errorf("invalid rules: profile %q needs min <= target <= max", ct)
		}
	}
	if r.Lexicon.MaxSize() == 0 {
		return fmt.Errorf("invalid rules: brand voice lexicon is empty")
	}
	return nil
}
