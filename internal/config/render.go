package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const redactedValue = "********"

// Redacted returns a copy with credentials masked, safe to log or expose.
func (c Config) Redacted() Config {
	out := c.Clone()
	out.APIKey = redact(out.APIKey)
	out.APISecretKey = redact(out.APISecretKey)
	return out
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return redactedValue
}

// WriteYAML renders the redacted configuration as YAML.
func WriteYAML(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Redacted()); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush YAML: %w", err)
	}
	return nil
}
