// Package config provides reading and writing of mdast configuration.
// Supports both global (~/.mdast/config.yaml) and local (.mdast/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ConnorGray/Markdown/markdown"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.mdast/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .mdast/config.yaml
	ScopeLocal
)

// Author represents the author metadata recorded in the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Render holds canonical output options.
type Render struct {
	ListMarker  *string `yaml:"list_marker,omitempty"`
	FenceTokens *int    `yaml:"fence_tokens,omitempty"`
}

// Validation bounds for configuration values.
const (
	MinFenceTokens = 3
	MaxFenceTokens = 16
)

// Config contains configuration for mdast.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Render Render `yaml:"render,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Render.ListMarker != nil {
		v := *c.Render.ListMarker
		if v != "*" && v != "-" && v != "+" {
			return fmt.Errorf("%w: list_marker must be one of \"*\", \"-\", \"+\", got %q",
				ErrInvalidValue, v)
		}
	}
	if c.Render.FenceTokens != nil {
		v := *c.Render.FenceTokens
		if v < MinFenceTokens || v > MaxFenceTokens {
			return fmt.Errorf("%w: fence_tokens must be between %d and %d, got %d",
				ErrInvalidValue, MinFenceTokens, MaxFenceTokens, v)
		}
	}
	return nil
}

// RenderOptions returns the configured canonical output options, falling
// back to the defaults for anything not set.
func (c *Config) RenderOptions() markdown.RenderOptions {
	opts := markdown.DefaultRenderOptions()
	if c.Render.ListMarker != nil && *c.Render.ListMarker != "" {
		opts.ListMarker = (*c.Render.ListMarker)[0]
	}
	if c.Render.FenceTokens != nil {
		opts.FenceTokens = *c.Render.FenceTokens
	}
	return opts
}

// AuthorString returns "Name <Email>", degrading gracefully when either
// part is missing.
func (c *Config) AuthorString() string {
	switch {
	case c.Author.Name != "" && c.Author.Email != "":
		return fmt.Sprintf("%s <%s>", c.Author.Name, c.Author.Email)
	case c.Author.Name != "":
		return c.Author.Name
	case c.Author.Email != "":
		return c.Author.Email
	default:
		return ""
	}
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".mdast", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.mdast/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mdast", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
