// Package config loads voidcut settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// Config is the top level of a voidcut.toml file.
type Config struct {
	Geometry GeometryConfig `toml:"geometry"`
	Host     HostConfig     `toml:"host"`
	Log      LogConfig      `toml:"log"`
	Export   ExportConfig   `toml:"export"`
}

// GeometryConfig holds kernel settings.
type GeometryConfig struct {
	// Tolerance is the length below which coordinates are equal.
	Tolerance float64 `toml:"tolerance"`
}

// HostConfig holds the strings shown by the host.
type HostConfig struct {
	Prompt      string `toml:"prompt"`
	Transaction string `toml:"transaction"`
}

// LogConfig selects the log level and output format ("text" or "json").
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ExportConfig holds drawing and mesh export settings.
type ExportConfig struct {
	// SVGScale is the number of SVG pixels per model unit.
	SVGScale float64 `toml:"svg_scale"`

	// MeshCells is the marching cubes resolution of sdfx meshes.
	MeshCells int `toml:"mesh_cells"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Geometry: GeometryConfig{Tolerance: 1e-6},
		Host: HostConfig{
			Prompt:      "Select Wall",
			Transaction: "Insert wall openings",
		},
		Log:    LogConfig{Level: "info", Format: "text"},
		Export: ExportConfig{SVGScale: 100, MeshCells: 200},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML from r over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Geometry.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("geometry.tolerance must be positive, got %g", c.Geometry.Tolerance))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Export.SVGScale <= 0 {
		errs = append(errs, fmt.Errorf("export.svg_scale must be positive, got %g", c.Export.SVGScale))
	}
	if c.Export.MeshCells < 0 {
		errs = append(errs, fmt.Errorf("export.mesh_cells must not be negative, got %d", c.Export.MeshCells))
	}
	return errors.Join(errs...)
}

// NewLogger builds a logger writing to out at the configured level and
// format.
func (c LogConfig) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	if strings.ToLower(c.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
