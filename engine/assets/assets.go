// Package assets loads the files the demo reads at startup. Paths are
// relative to Root, with one subdirectory per kind of asset.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root is the asset directory, relative to the working directory unless
// absolute.
var Root = "assets"

func path(kind, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(Root, kind, name)
}

// LoadShader returns the text of a GLSL file under shaders/.
func LoadShader(name string) (string, error) {
	b, err := os.ReadFile(path("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return string(b), nil
}

// LoadFont returns the raw bytes of a TTF/OTF file under fonts/.
func LoadFont(name string) ([]byte, error) {
	b, err := os.ReadFile(path("fonts", name))
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	return b, nil
}
