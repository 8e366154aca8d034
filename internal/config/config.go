// Package config reads the editor's settings from environment variables.
//
// Environment variables:
//
//	IMAGE_EDITOR_LOG_LEVEL=debug      Enable debug logging (default: info)
//	IMAGE_EDITOR_CLIPBOARD=system     Use the desktop clipboard (default: memory)
//	IMAGE_EDITOR_EXPORT_FORMAT=png    Save format: jpeg, png or bmp (default: jpeg)
//	IMAGE_EDITOR_JPEG_QUALITY=75      JPEG quality 1-100 (default: 90)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/image-editor-mcp/internal/raster"
)

// Environment variable names.
const (
	EnvLogLevel     = "IMAGE_EDITOR_LOG_LEVEL"
	EnvClipboard    = "IMAGE_EDITOR_CLIPBOARD"
	EnvExportFormat = "IMAGE_EDITOR_EXPORT_FORMAT"
	EnvJPEGQuality  = "IMAGE_EDITOR_JPEG_QUALITY"
)

// Clipboard backends.
const (
	ClipboardMemory = "memory"
	ClipboardSystem = "system"
)

// Config holds the editor settings.
type Config struct {
	Debug        bool
	Clipboard    string
	ExportFormat string
	JPEGQuality  int
}

// Default returns the settings used when no variables are set.
func Default() Config {
	return Config{
		Clipboard:    ClipboardMemory,
		ExportFormat: "jpeg",
		JPEGQuality:  raster.DefaultJPEGQuality,
	}
}

// Load reads settings from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads settings through getenv. Unset or empty variables keep their defaults.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	switch level := strings.ToLower(getenv(EnvLogLevel)); level {
	case "", "info":
	case "debug":
		cfg.Debug = true
	default:
		return cfg, fmt.Errorf("%s: unknown log level %q", EnvLogLevel, level)
	}

	switch cb := strings.ToLower(getenv(EnvClipboard)); cb {
	case "":
	case ClipboardMemory, ClipboardSystem:
		cfg.Clipboard = cb
	default:
		return cfg, fmt.Errorf("%s: unknown clipboard %q", EnvClipboard, cb)
	}

	if v := getenv(EnvJPEGQuality); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvJPEGQuality, err)
		}
		cfg.JPEGQuality = q
	}

	if v := getenv(EnvExportFormat); v != "" {
		cfg.ExportFormat = strings.ToLower(v)
	}
	if _, err := cfg.Encoder(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Encoder returns the stream encoder for the configured export format.
func (c Config) Encoder() (raster.Encoder, error) {
	enc, err := raster.EncoderFor(c.ExportFormat, c.JPEGQuality)
	if err != nil {
		return enc, fmt.Errorf("%s: %w", EnvExportFormat, err)
	}
	return enc, nil
}
