package section

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultName is used when a title has no letters or digits.
const DefaultName = "section"

// Slug lowercases title and replaces every run of characters that are not
// letters or digits with a single "-".
func Slug(title string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return DefaultName
	}
	return b.String()
}

// Namer hands out unique file names in order of first occurrence:
// "intro", "intro-2", "intro-3", ...
type Namer struct {
	used map[string]bool
}

// NewNamer returns an empty Namer.
func NewNamer() *Namer {
	return &Namer{used: map[string]bool{}}
}

// Name returns a unique name derived from title.
func (n *Namer) Name(title string) string {
	if n.used == nil {
		n.used = map[string]bool{}
	}
	base := Slug(title)
	name := base
	for i := 2; n.used[name]; i++ {
		name = base + "-" + strconv.Itoa(i)
	}
	n.used[name] = true
	return name
}
