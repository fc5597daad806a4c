// Package config loads oneroom.toml. Every field has a default, so the file
// and each of its tables are optional.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/hubastard/oneroom/engine/core"
	"github.com/pelletier/go-toml/v2"
)

// File is the config file name looked up in the working directory.
const File = "oneroom.toml"

type Config struct {
	Window Window `toml:"window"`
	Assets Assets `toml:"assets"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type Assets struct {
	// Font is a TTF/OTF under assets/fonts; empty selects the built-in
	// Go Regular face.
	Font         string `toml:"font"`
	Image        string `toml:"image"`
	SpriteShader string `toml:"sprite_shader"`
	TextShader   string `toml:"text_shader"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Window: Window{Title: "One Room", Width: 1000, Height: 500},
		Assets: Assets{
			Image:        "star.png",
			SpriteShader: "sprite.glsl",
			TextShader:   "text.glsl",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg, keeping cfg's values for absent keys.
// Unknown keys are rejected.
func Decode(b []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Assets.Image == "" {
		errs = append(errs, errors.New("assets.image is required"))
	}
	if c.Assets.SpriteShader == "" || c.Assets.TextShader == "" {
		errs = append(errs, errors.New("assets.sprite_shader and assets.text_shader are required"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Engine is the window/loop subset of the config.
func (c *Config) Engine() core.Config {
	return core.Config{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		VSync:  c.Window.VSync,
	}
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log.level %q: want debug, info, warn or error", s)
	}
	return l, nil
}

// Marshal renders cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
