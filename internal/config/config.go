// Package config loads nibble's optional TOML configuration file.
//
// Example:
//
//	format = "json"
//
//	[display]
//	information = " dB"
//	duration = ""
//	speed = ",.1f| Mb/s"
//
// Display specs use the same format language as the `in` conversions and
// apply to results that were not explicitly converted.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gebn/nibble/internal/expr"
	"github.com/gebn/nibble/internal/quantity"
)

// EnvPath names the environment variable consulted when no --config flag is
// given.
const EnvPath = "NIBBLE_CONFIG"

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"text", "json"}

// Config is the resolved configuration.
type Config struct {
	// Format is the default output format, "text" or "json".
	Format string

	Display Display
}

// Display holds the format specs applied to unconverted results. An empty
// spec means the type's own default rendering.
type Display struct {
	Information string
	Duration    string
	Speed       string
}

// Default returns the configuration used when no file is loaded.
func Default() Config {
	return Config{Format: "text"}
}

type fileConfig struct {
	Format  string      `toml:"format"`
	Display fileDisplay `toml:"display"`
}

type fileDisplay struct {
	Information string `toml:"information"`
	Duration    string `toml:"duration"`
	Speed       string `toml:"speed"`
}

// ResolvePath returns flagPath if set, else $NIBBLE_CONFIG. An empty result
// means no file should be loaded.
func ResolvePath(flagPath string) string {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvPath))
}

// Load reads the file at path over Default(). Unknown keys, an invalid
// format, or a display spec that cannot render are errors.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("format") {
		format := strings.TrimSpace(raw.Format)
		if !IsValidFormat(format) {
			return Config{}, fmt.Errorf("load config: invalid format %q: must be one of %v", format, ValidFormats)
		}
		cfg.Format = format
	}

	if meta.IsDefined("display", "information") {
		cfg.Display.Information = raw.Display.Information
	}
	if meta.IsDefined("display", "duration") {
		cfg.Display.Duration = raw.Display.Duration
	}
	if meta.IsDefined("display", "speed") {
		cfg.Display.Speed = raw.Display.Speed
	}

	if err := cfg.Display.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate renders a sample value with each spec.
func (d Display) Validate() error {
	if _, err := quantity.Bits(8).Format(d.Information); err != nil {
		return fmt.Errorf("display.information: %w", err)
	}
	if _, err := quantity.Second.Format(d.Duration); err != nil {
		return fmt.Errorf("display.duration: %w", err)
	}
	if _, err := quantity.Gigabit.Format(d.Speed); err != nil {
		return fmt.Errorf("display.speed: %w", err)
	}
	return nil
}

// Render formats v with the spec for its kind. Formatted results are
// returned as they are.
func (d Display) Render(v expr.Value) (string, error) {
	switch v := v.(type) {
	case expr.Information:
		return v.Format(d.Information)
	case expr.Duration:
		return v.Format(d.Duration)
	case expr.Speed:
		return v.Format(d.Speed)
	}
	return v.String(), nil
}

// IsValidFormat reports whether format is one of ValidFormats.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
