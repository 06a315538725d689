package assets

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LoadShader reads Root/shaders/name as a NUL-terminated GLSL string. Files
// without a #version directive are rejected since GL 3.3 core needs one.
func LoadShader(name string) (string, error) {
	path := filepath.Join(Root, "shaders", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	b = bytes.TrimRight(b, "\x00")
	if !bytes.Contains(b, []byte("#version")) {
		return "", fmt.Errorf("load shader %q: no #version directive", name)
	}
	return string(append(b, 0)), nil
}

// LoadShaderPair loads base.vert and base.frag. Both are attempted and every
// failure is reported.
func LoadShaderPair(base string) (vert, frag string, err error) {
	vert, verr := LoadShader(base + ".vert")
	frag, ferr := LoadShader(base + ".frag")
	if err = errors.Join(verr, ferr); err != nil {
		return "", "", err
	}
	return vert, frag, nil
}
