package model

import "unicode/utf16"

// Str is a text value annotated with a position-ordered list of formatting
// entity spans. Spans refer to UTF-16 code-unit offsets, so all slicing goes
// through explicit re-indexing instead of Go's native byte or rune indexing.
// A Str is built once during decode and not mutated afterwards.
type Str struct {
	Text     string
	Entities []MessageEntity
}

// NewStr wraps text together with its entity spans.
func NewStr(text string, entities []MessageEntity) Str {
	return Str{Text: text, Entities: entities}
}

// String returns the plain text.
func (s Str) String() string {
	return s.Text
}

// Markdown renders the text with its entities in the markdown dialect.
func (s Str) Markdown() string {
	return UnparseMarkdown(s.Text, s.Entities)
}

// HTML renders the text with its entities in the HTML dialect.
func (s Str) HTML() string {
	return UnparseHTML(s.Text, s.Entities)
}

// LenUTF16 returns the length of the text in UTF-16 code units.
func (s Str) LenUTF16() int {
	return len(utf16.Encode([]rune(s.Text)))
}

// SliceUTF16 returns the substring covered by [from, to) in UTF-16 code
// units. Bounds are clamped to the valid range.
func (s Str) SliceUTF16(from, to int) string {
	units := utf16.Encode([]rune(s.Text))
	if from < 0 {
		from = 0
	}
	if to > len(units) {
		to = len(units)
	}
	if from >= to {
		return ""
	}
	return string(utf16.Decode(units[from:to]))
}
