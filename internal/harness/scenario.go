package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gebn/nibble/internal/config"
	"github.com/gebn/nibble/internal/expr"
	"github.com/gebn/nibble/internal/quantity"
)

// Scenario is a named list of expression cases.
type Scenario struct {
	// Name identifies the scenario and its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description"`

	// Display overrides how unconverted results are rendered.
	Display DisplaySpec `yaml:"display,omitempty"`

	Cases []Case `yaml:"cases"`
}

// DisplaySpec mirrors the [display] table of the config file.
type DisplaySpec struct {
	Information string `yaml:"information,omitempty"`
	Duration    string `yaml:"duration,omitempty"`
	Speed       string `yaml:"speed,omitempty"`
}

// Config converts d to the form used for rendering.
func (d DisplaySpec) Config() config.Display {
	return config.Display{
		Information: d.Information,
		Duration:    d.Duration,
		Speed:       d.Speed,
	}
}

// Case is one expression and its expected outcome. Exactly one of Want and
// Error is set.
type Case struct {
	Expr string `yaml:"expr"`

	// Want is the expected rendered text.
	Want string `yaml:"want,omitempty"`

	// Kind optionally constrains the result kind: information, duration,
	// speed or formatted.
	Kind string `yaml:"kind,omitempty"`

	// Error is the expected error class.
	Error string `yaml:"error,omitempty"`
}

var validErrors = map[string]bool{
	expr.ClassLex:                          true,
	expr.ClassParse:                        true,
	string(quantity.ErrCodeUnknownUnit):    true,
	string(quantity.ErrCodeNegative):       true,
	string(quantity.ErrCodeDivisionByZero): true,
	string(quantity.ErrCodeZeroDuration):   true,
	string(quantity.ErrCodeInfiniteSpeed):  true,
	string(quantity.ErrCodeBadFormat):      true,
	string(quantity.ErrCodeNotFinite):      true,
}

var validKinds = map[string]bool{
	"information": true,
	"duration":    true,
	"speed":       true,
	"formatted":   true,
}

// LoadScenario reads and validates a scenario file. Unknown fields are
// rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}
	if err := s.Display.Config().Validate(); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	for i, c := range s.Cases {
		if err := validateCase(i, &c); err != nil {
			return err
		}
	}
	return nil
}

func validateCase(index int, c *Case) error {
	switch {
	case c.Want == "" && c.Error == "":
		return fmt.Errorf("cases[%d]: one of want or error is required", index)
	case c.Want != "" && c.Error != "":
		return fmt.Errorf("cases[%d]: want and error are mutually exclusive", index)
	}
	if c.Error != "" && !validErrors[c.Error] {
		return fmt.Errorf("cases[%d]: unknown error class %q", index, c.Error)
	}
	if c.Kind != "" {
		if c.Error != "" {
			return fmt.Errorf("cases[%d]: kind cannot be combined with error", index)
		}
		if !validKinds[c.Kind] {
			return fmt.Errorf("cases[%d]: unknown kind %q", index, c.Kind)
		}
	}
	return nil
}
