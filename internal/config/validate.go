package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var validModels = map[string]bool{
	"":       true,
	"opus":   true,
	"sonnet": true,
	"haiku":  true,
}

// Validate checks the config for errors, sets defaults, and loads each
// protocol's instruction text from its pattern file.
func Validate(cfg *Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("config: 'name' is required")
	}
	if len(cfg.Protocols) == 0 {
		return fmt.Errorf("config: at least one protocol is required")
	}

	if !validModels[cfg.Model] {
		return fmt.Errorf("config: unknown model %q (must be opus, sonnet, or haiku)", cfg.Model)
	}
	if cfg.Model == "" {
		cfg.Model = "sonnet"
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("config: timeout must be >= 0")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15
	}
	if cfg.PatternsDir == "" {
		cfg.PatternsDir = "patterns"
	}
	if cfg.ReservoirDir == "" {
		cfg.ReservoirDir = "reservoir"
	}
	if cfg.InstanceFile == "" {
		cfg.InstanceFile = "instance.md"
	}

	seen := make(map[string]bool)
	for i := range cfg.Protocols {
		p := &cfg.Protocols[i]

		if p.Name == "" {
			return fmt.Errorf("config: protocol %d: 'name' is required", i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("config: duplicate protocol name %q", p.Name)
		}
		seen[p.Name] = true

		if p.Pattern == "" {
			return fmt.Errorf("config: protocol %q: 'pattern' is required", p.Name)
		}
		patternPath := filepath.Join(cfg.PatternsPath(), p.Pattern)
		data, err := os.ReadFile(patternPath)
		if err != nil {
			return fmt.Errorf("config: protocol %q: pattern file %q not found", p.Name, patternPath)
		}
		p.Instructions = strings.TrimSpace(string(data))

		seenLabels := make(map[string]bool)
		for _, a := range p.Accesses {
			if strings.TrimSpace(a.Label) == "" {
				return fmt.Errorf("config: protocol %q: access labels must be non-empty", p.Name)
			}
			if seenLabels[a.Label] {
				return fmt.Errorf("config: protocol %q: duplicate access label %q", p.Name, a.Label)
			}
			seenLabels[a.Label] = true
			if strings.TrimSpace(a.Source) == "" {
				return fmt.Errorf("config: protocol %q: access %q: 'source' is required", p.Name, a.Label)
			}
		}
	}

	return nil
}
