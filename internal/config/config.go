package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MemorySource is the access-binding source value that resolves to the
// working memory instead of a reservoir file. The configured instance
// filename is accepted as an equivalent spelling.
const MemorySource = "working-memory"

// Access binds a descriptive label to a source: either a reservoir filename
// or the working-memory sentinel.
type Access struct {
	Label  string
	Source string
}

// Accesses is an ordered list of access bindings. In YAML it is written as a
// mapping; declaration order is preserved.
type Accesses []Access

// UnmarshalYAML decodes a YAML mapping into bindings in document order.
func (a *Accesses) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("accesses must be a mapping of label to source")
	}
	out := make(Accesses, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var acc Access
		if err := value.Content[i].Decode(&acc.Label); err != nil {
			return err
		}
		if err := value.Content[i+1].Decode(&acc.Source); err != nil {
			return err
		}
		out = append(out, acc)
	}
	*a = out
	return nil
}

// Protocol describes one step of the chain. Immutable once loaded; the
// instruction text is read from the pattern file at Load time.
type Protocol struct {
	Name               string   `yaml:"name"`
	Pattern            string   `yaml:"pattern"`
	Included           bool     `yaml:"included"`
	RequiresCommentary bool     `yaml:"requires-commentary"`
	Accesses           Accesses `yaml:"accesses"`

	// Instructions holds the pattern file content, populated by Load.
	Instructions string `yaml:"-"`
}

// UnmarshalYAML applies field defaults before decoding.
func (p *Protocol) UnmarshalYAML(value *yaml.Node) error {
	type rawProtocol Protocol
	raw := rawProtocol{Included: true}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = Protocol(raw)
	return nil
}

type Config struct {
	Name         string     `yaml:"name"`
	Model        string     `yaml:"model"`
	Timeout      int        `yaml:"timeout"` // minutes per model call
	PatternsDir  string     `yaml:"patterns-dir"`
	ReservoirDir string     `yaml:"reservoir-dir"`
	InstanceFile string     `yaml:"instance-file"`
	Protocols    []Protocol `yaml:"protocols"`

	// BaseDir is the directory containing the config file, set by Load.
	// Relative patterns-dir, reservoir-dir and instance-file resolve
	// against it.
	BaseDir string `yaml:"-"`
}

// Load reads a YAML config file, validates it, and loads each protocol's
// instruction text. A missing pattern file is a hard Load failure.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.BaseDir = filepath.Dir(path)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ProtocolIndex returns the index of the named protocol, or -1 if not found.
func (c *Config) ProtocolIndex(name string) int {
	for i, p := range c.Protocols {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// IsMemorySource reports whether an access source refers to the working
// memory rather than a reservoir file.
func (c *Config) IsMemorySource(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return s == MemorySource || s == strings.ToLower(c.InstanceFile)
}

// PatternsPath returns the resolved patterns directory.
func (c *Config) PatternsPath() string {
	return c.resolve(c.PatternsDir)
}

// ReservoirPath returns the resolved reservoir directory.
func (c *Config) ReservoirPath() string {
	return c.resolve(c.ReservoirDir)
}

// InstancePath returns the resolved working-memory file path.
func (c *Config) InstancePath() string {
	return c.resolve(c.InstanceFile)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}
