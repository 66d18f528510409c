package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Fields absent from
// the input keep their zero values; callers that want defaults should
// start from NewConfig and call Merge, or use LoadFile.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a config file and overlays it on the defaults. Fields
// the file leaves out keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	loaded, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg := NewConfig()
	cfg.Merge(loaded)
	return cfg, nil
}

// Find searches dir for a config file by its well-known names and
// returns the first match. It returns fs.ErrNotExist when none exists.
func Find(dir string) (string, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", fs.ErrNotExist
}

// Merge overlays non-zero serializable fields from other onto c.
// CLI-only fields are never merged from files.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.SourceDir != "" {
		c.SourceDir = other.SourceDir
	}
	if other.OutputDir != "" {
		c.OutputDir = other.OutputDir
	}
	if other.MasterDoc != "" {
		c.MasterDoc = other.MasterDoc
	}
	if other.ProjectName != "" {
		c.ProjectName = other.ProjectName
	}
	if other.HighlightStyle != "" {
		c.HighlightStyle = other.HighlightStyle
	}
	if other.Exclude != nil {
		c.Exclude = make([]string, len(other.Exclude))
		copy(c.Exclude, other.Exclude)
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.Exclude != nil {
		clone.Exclude = make([]string, len(c.Exclude))
		copy(clone.Exclude, c.Exclude)
	}
	return &clone
}
