package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/flopp/go-findfont"
)

// ErrFontLoad is returned when a font source cannot be read or parsed.
var ErrFontLoad = errors.New("font load failure")

// Source is one font candidate.
type Source struct {
	Name    string // human readable, used in logs
	Path    string // file path, or "embed:<name>" for built-in fonts
	Builtin bool
}

// Read returns the font bytes.
func (s Source) Read() ([]byte, error) {
	if s.Builtin {
		return Load(s.Path)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, s.Name, err)
	}
	return data, nil
}

// Strategy lists font candidates in priority order.
type Strategy interface {
	Candidates(requested string) []Source
}

// SystemStrategy tries the requested path, then Names looked up with Find,
// then the built-in font.
type SystemStrategy struct {
	Names []string
	Find  func(name string) (string, error)
}

// NewSystemStrategy returns a strategy using the platform's usual fonts,
// located through go-findfont.
func NewSystemStrategy() SystemStrategy {
	return SystemStrategy{Names: PlatformFonts(runtime.GOOS), Find: findfont.Find}
}

// PlatformFonts returns preferred font file names for goos.
func PlatformFonts(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"SFNS.ttf", "SFNSText.ttf", "Arial.ttf", "Helvetica.ttc"}
	case "windows":
		return []string{"arial.ttf", "segoeui.ttf"}
	default:
		return []string{"DejaVuSans.ttf", "LiberationSans-Regular.ttf", "NotoSans-Regular.ttf"}
	}
}

// Candidates implements Strategy. Duplicate paths are skipped.
func (s SystemStrategy) Candidates(requested string) []Source {
	var out []Source
	seen := map[string]bool{}
	add := func(src Source) {
		if seen[src.Path] {
			return
		}
		seen[src.Path] = true
		out = append(out, src)
	}

	switch {
	case strings.HasPrefix(requested, BuiltinPrefix):
		add(Source{Name: requested, Path: requested, Builtin: true})
	case requested != "":
		add(Source{Name: requested, Path: requested})
	}
	for _, name := range s.Names {
		if filepath.IsAbs(name) {
			add(Source{Name: name, Path: name})
			continue
		}
		if s.Find == nil {
			continue
		}
		path, err := s.Find(name)
		if err != nil || path == "" {
			continue
		}
		add(Source{Name: name, Path: path})
	}
	add(Builtin())
	return out
}

// Builtin returns the embedded fallback source.
func Builtin() Source {
	return Source{Name: "Go Regular (built-in)", Path: BuiltinPrefix + DefaultBuiltin, Builtin: true}
}
