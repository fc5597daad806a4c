// Command oneroom opens a window and draws a keyboard-driven sprite and one
// glyph of text.
//
// Keys: WASD or arrows move, Space toggles glyph UVs, E cycles the glyph,
// F1 writes a profile capture (with -tags profile), Escape quits.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/hubastard/oneroom/engine/assets"
	"github.com/hubastard/oneroom/engine/config"
	"github.com/hubastard/oneroom/engine/core"
	glbackend "github.com/hubastard/oneroom/engine/gfx/gl"
	"github.com/hubastard/oneroom/engine/logx"
	"github.com/hubastard/oneroom/engine/platform"
	"github.com/hubastard/oneroom/engine/profiler"
	"github.com/hubastard/oneroom/engine/text"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("oneroom failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgErr := config.Load(config.File)
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	logx.Setup(level, os.Stderr)
	if cfgErr != nil {
		return cfgErr
	}

	profiler.Init(0)

	res, err := loadResources(cfg.Assets)
	if err != nil {
		return err
	}

	win, err := platform.NewGLFWWindow(cfg.Engine())
	if err != nil {
		return err
	}
	defer win.Destroy()

	w, h := win.FramebufferSize()
	dev, err := glbackend.New(win, w, h)
	if err != nil {
		return err
	}
	defer dev.Shutdown()

	game, err := NewGame(dev, res)
	if err != nil {
		return err
	}
	defer game.Close()
	res.Image = nil

	in := core.NewInput(w, h)
	(&core.Loop{}).Run(win, in, game)
	return nil
}

// loadResources reads the font and image named by the config. The decoded
// image is dropped once the game has uploaded it.
func loadResources(a config.Assets) (Resources, error) {
	res := Resources{SpriteShader: a.SpriteShader, TextShader: a.TextShader}

	var err error
	if a.Font == "" {
		res.Font, err = text.Default()
	} else {
		var data []byte
		if data, err = assets.LoadFont(a.Font); err == nil {
			res.Font, err = text.Parse(data)
		}
	}
	if err != nil {
		return res, err
	}

	if res.Image, err = assets.LoadImage(a.Image); err != nil {
		return res, err
	}
	return res, nil
}
