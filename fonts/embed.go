// Package fonts locates the font used to render cheatsheets. Candidates are
// tried in priority order: the requested file, well-known platform fonts, and
// finally the Go Regular font compiled into the binary.
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// BuiltinPrefix marks sources that are compiled into the binary.
const BuiltinPrefix = "embed:"

// builtin maps embedded font names to their TTF data.
var builtin = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
}

// DefaultBuiltin is the last-resort font.
const DefaultBuiltin = "goregular"

// Load returns an embedded font by name; path may be written "embed:goregular" or "goregular".
func Load(path string) ([]byte, error) {
	name := strings.TrimPrefix(path, BuiltinPrefix)
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: no built-in font %q", ErrFontLoad, name)
	}
	return data, nil
}
