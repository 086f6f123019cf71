// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML
// structure and loading, while this file handles the MCP and CLI interface
// where config is accessed by string keys (e.g., "render.list_marker").
//
// Pointers are used for optional fields so "not set" (nil) is distinct
// from "explicitly set"; defaults apply only when a value is unset.

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"render.list_marker", "render.fence_tokens",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "render.list_marker":
		return string(c.RenderOptions().ListMarker), nil
	case "render.fence_tokens":
		return strconv.Itoa(c.RenderOptions().FenceTokens), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "render.list_marker":
		if value != "*" && value != "-" && value != "+" {
			return fmt.Errorf("%w: render.list_marker must be one of \"*\", \"-\", \"+\"", ErrInvalidValue)
		}
		c.Render.ListMarker = &value
	case "render.fence_tokens":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinFenceTokens || n > MaxFenceTokens {
			return fmt.Errorf("%w: render.fence_tokens must be an integer between %d and %d",
				ErrInvalidValue, MinFenceTokens, MaxFenceTokens)
		}
		c.Render.FenceTokens = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":         c.Author.Name,
		"author.email":        c.Author.Email,
		"render.list_marker":  string(c.RenderOptions().ListMarker),
		"render.fence_tokens": strconv.Itoa(c.RenderOptions().FenceTokens),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "render.list_marker":
		return c.Render.ListMarker != nil
	case "render.fence_tokens":
		return c.Render.FenceTokens != nil
	default:
		return false
	}
}
