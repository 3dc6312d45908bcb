package config

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// EncodeTOML writes cfg as TOML with indented sub-tables. Fields keep their
// struct definition order.
func EncodeTOML(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
