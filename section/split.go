// Package section splits a cheatsheet into one document per title and
// derives output file names from the titles.
package section

import "github.com/AngelaFabregues/CheatsheetImagesGenerator/markup"

// Section is a sub-document rendered as its own image. Title is empty for
// content that precedes the first title.
type Section struct {
	Title    string
	Document markup.Document
}

// Split starts a new section at every title block. Blocks before the first
// title form an untitled leading section. An empty document has no sections.
func Split(doc markup.Document) []Section {
	var (
		out     []Section
		current *Section
	)
	for _, b := range doc.Blocks {
		if b.Kind == markup.Title || current == nil {
			out = append(out, Section{})
			current = &out[len(out)-1]
			if b.Kind == markup.Title {
				current.Title = b.Text
			}
		}
		current.Document.Blocks = append(current.Document.Blocks, b)
	}
	return out
}
