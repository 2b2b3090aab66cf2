package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gebn/nibble/internal/expr"
	"github.com/gebn/nibble/internal/quantity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nibble.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
format = "json"

[display]
information = " dB"
duration = "s"
speed = " Mb/s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, Display{Information: " dB", Duration: "s", Speed: " Mb/s"}, cfg.Display)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[display]
speed = "Gb/s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "", cfg.Display.Information)
	assert.Equal(t, "Gb/s", cfg.Display.Speed)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed", "format = ", "load config"},
		{"unknown key", "colour = true\n", `unknown key "colour"`},
		{"unknown display key", "[display]\nrate = \"Mb/s\"\n", `unknown key "display.rate"`},
		{"invalid format", "format = \"yaml\"\n", `invalid format "yaml"`},
		{"bad information unit", "[display]\ninformation = \" zz\"\n", "display.information"},
		{"bad duration unit", "[display]\nduration = \"fortnights\"\n", "display.duration"},
		{"bad speed number format", "[display]\nspeed = \"x| Mb/s\"\n", "display.speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DisplayErrorKeepsCode(t *testing.T) {
	_, err := Load(writeConfig(t, "[display]\ninformation = \" zz\"\n"))
	require.Error(t, err)
	assert.True(t, quantity.IsUnknownUnit(err))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "/etc/nibble.toml")
	assert.Equal(t, "/tmp/flag.toml", ResolvePath("/tmp/flag.toml"))
	assert.Equal(t, "/etc/nibble.toml", ResolvePath(""))

	t.Setenv(EnvPath, "")
	assert.Equal(t, "", ResolvePath(""))
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat("text"))
	assert.True(t, IsValidFormat("json"))
	assert.False(t, IsValidFormat("JSON"))
	assert.False(t, IsValidFormat(""))
}

func TestDisplay_Render(t *testing.T) {
	tests := []struct {
		name    string
		display Display
		input   string
		want    string
	}{
		{"default information", Display{}, "10Gb", "1.16 GiB"},
		{"decimal information", Display{Information: " dB"}, "10Gb", "1.25 GB"},
		{"default duration", Display{}, "90s", "1 minute 30 seconds"},
		{"duration unit", Display{Duration: "s"}, "1h", "3,600s"},
		{"default speed", Display{}, "1Gb/s", "119.21 MiB/s"},
		{"speed unit", Display{Speed: " Mb/s"}, "1Gb/s", "1,000 Mb/s"},
		{"conversion untouched", Display{Information: " dB"}, "12 Tb in Mb", "12,000,000 Mb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := expr.Parse(tt.input)
			require.NoError(t, err)
			got, err := tt.display.Render(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
