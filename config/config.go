// SPDX-License-Identifier: MIT

// Package config loads the algoviz configuration.
//
// Sources, lowest priority first:
//
//  1. Defaults (Default)
//  2. An optional YAML file
//  3. ALGOVIZ_* environment variables
//
// The merged result is validated with struct tags before it is returned.
// Watch reloads the file on change and hands each valid result to a callback.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/registry"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrEnv wraps an environment variable that cannot be parsed.
	ErrEnv = errors.New("config: bad environment override")
)

// Config is the complete application configuration.
type Config struct {
	Graph     Graph     `yaml:"graph"`
	Animation Animation `yaml:"animation"`
	Render    Render    `yaml:"render"`
	Log       Log       `yaml:"log"`
	Metrics   Metrics   `yaml:"metrics"`
	Server    Server    `yaml:"server"`
}

// Graph controls random graph generation.
type Graph struct {
	Size       builder.Size `yaml:"size" validate:"oneof=10 25 50"`
	Seed       int64        `yaml:"seed"`
	Width      float64      `yaml:"width" validate:"gt=0"`
	Height     float64      `yaml:"height" validate:"gt=0"`
	NodeRadius float64      `yaml:"node_radius" validate:"gt=0"`
}

// Animation selects what runs and how fast.
type Animation struct {
	Variant string `yaml:"variant" validate:"required,variant"`
	Source  int    `yaml:"source" validate:"gte=0"`
	// Target -1 means the highest node id.
	Target int `yaml:"target" validate:"gte=-1"`
	// StepDelay 0 uses the variant's default pacing.
	StepDelay time.Duration `yaml:"step_delay" validate:"gte=0"`
	AutoStart bool          `yaml:"auto_start"`
}

// Render controls the terminal renderer.
type Render struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval" validate:"gt=0"`
}

// Log controls the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Metrics controls Prometheus instrumentation.
type Metrics struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required,alphanum"`
}

// Server controls the HTTP surface.
type Server struct {
	Enabled         bool          `yaml:"enabled"`
	Addr            string        `yaml:"addr" validate:"required_if=Enabled true"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Graph: Graph{
			Size:       builder.Small,
			Width:      builder.DefaultWidth,
			Height:     builder.DefaultHeight,
			NodeRadius: builder.DefaultNodeRadius,
		},
		Animation: Animation{
			Variant: "Dijkstra",
			Source:  0,
			Target:  -1,
		},
		Render: Render{
			Enabled:  true,
			Interval: 250 * time.Millisecond,
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Metrics: Metrics{
			Enabled:   true,
			Namespace: "algoviz",
		},
		Server: Server{
			Enabled:         false,
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.loadEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the YAML document at path. Unknown keys are rejected.
func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
		_, err := registry.Lookup(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("config: register variant validation: %v", err))
	}

	return v
}

// Validate checks every field against its tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, formatValidationError(err))
	}

	return nil
}

// formatValidationError joins field errors into one readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Config.")

	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be %s %s", field, map[string]string{"gt": ">", "gte": ">="}[e.Tag()], e.Param())
	case "variant":
		return fmt.Sprintf("%s: unknown variant %q", field, e.Value())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}
