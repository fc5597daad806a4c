package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/oneroom/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.Config{Title: "One Room", Width: 1000, Height: 500}, cfg.Engine())
	assert.Empty(t, cfg.Assets.Font)
}

func TestLoadOverridesSomeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), File)
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 800
vsync = true

[assets]
font = "kenvector_future_thin.ttf"

[log]
level = "DEBUG"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 500, cfg.Window.Height, "untouched keys keep defaults")
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, "One Room", cfg.Window.Title)
	assert.Equal(t, "kenvector_future_thin.ttf", cfg.Assets.Font)
	assert.Equal(t, "star.png", cfg.Assets.Image)

	lvl, err := ParseLevel(cfg.Log.Level)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestDecodeRejects(t *testing.T) {
	for name, src := range map[string]string{
		"unknown key":  "[window]\nfullscreen = true\n",
		"bad level":    "[log]\nlevel = \"chatty\"\n",
		"zero width":   "[window]\nwidth = 0\n",
		"no image":     "[assets]\nimage = \"\"\n",
		"syntax":       "[window\n",
		"wrong type":   "[window]\nwidth = \"wide\"\n",
		"empty shader": "[assets]\ntext_shader = \"\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			assert.Error(t, Decode([]byte(src), &cfg))
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := Default()
	want.Window.VSync = true
	want.Log.Level = "warn"

	b, err := Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(b), "sprite_shader")

	var got Config
	require.NoError(t, Decode(b, &got))
	assert.Equal(t, want, got)
}
