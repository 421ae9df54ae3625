// Package markup parses the small markdown-like language used for cheatsheets:
// "= " titles, "* " bullets and plain paragraphs.
package markup

import "fmt"

// Kind classifies a Block.
type Kind int

const (
	Paragraph Kind = iota
	Title
	Bullet
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Title:
		return "title"
	case Bullet:
		return "bullet"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText lets kinds appear by name in debug JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Block is one classified unit of source text.
type Block struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Document is the ordered list of blocks parsed from one input.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Len returns the number of blocks.
func (d Document) Len() int { return len(d.Blocks) }

// Empty reports whether the document has no blocks.
func (d Document) Empty() bool { return len(d.Blocks) == 0 }
