package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/AngelaFabregues/CheatsheetImagesGenerator/layout"
)

// Length is a length as written in a config file: "48", "48px" or "36pt".
// Bare numbers are accepted in both TOML and YAML.
type Length string

func px(v float64) Length {
	return Length(strconv.FormatFloat(v, 'f', -1, 64) + "px")
}

// PX parses the length and converts it to pixels.
func (l Length) PX() (float64, error) {
	parsed, err := layout.ParseLength(string(l))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	return parsed.PX(), nil
}

// UnmarshalTOML accepts strings, integers and floats.
func (l *Length) UnmarshalTOML(v any) error {
	s, err := scalarString(v)
	if err != nil {
		return err
	}
	*l = Length(s)
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (l *Length) UnmarshalYAML(data []byte) error {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return err
	}
	s, err := scalarString(v)
	if err != nil {
		return err
	}
	*l = Length(s)
	return nil
}

func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: unsupported value %v", ErrInvalidLength, v)
	}
}

// ParseColor parses "#rgb" or "#rrggbb".
func ParseColor(s string) (layout.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return layout.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return layout.Color{R: int(r), G: int(g), B: int(b)}, nil
}
