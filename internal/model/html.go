package model

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"unicode/utf16"
)

// htmlTags returns the opening and closing tag pair for an entity, or
// ok=false for entity kinds with no HTML representation.
func htmlTags(e MessageEntity) (open, close string, ok bool) {
	switch e.Type {
	case EntityBold:
		return "<b>", "</b>", true
	case EntityItalic:
		return "<i>", "</i>", true
	case EntityUnderline:
		return "<u>", "</u>", true
	case EntityStrikethrough:
		return "<s>", "</s>", true
	case EntitySpoiler:
		return "<spoiler>", "</spoiler>", true
	case EntityCode:
		return "<code>", "</code>", true
	case EntityPre:
		if e.Language != "" {
			return fmt.Sprintf("<pre language=%q>", e.Language), "</pre>", true
		}
		return "<pre>", "</pre>", true
	case EntityBlockquote:
		if e.Collapsed {
			return "<blockquote expandable>", "</blockquote>", true
		}
		return "<blockquote>", "</blockquote>", true
	case EntityTextLink:
		return fmt.Sprintf("<a href=%q>", e.URL), "</a>", true
	case EntityTextMention:
		if e.User == nil {
			return "", "", false
		}
		return fmt.Sprintf("<a href=\"tg://user?id=%d\">", e.User.ID), "</a>", true
	case EntityCustomEmoji:
		return fmt.Sprintf("<emoji id=\"%d\">", e.CustomEmojiID), "</emoji>", true
	default:
		return "", "", false
	}
}

// UnparseHTML re-serializes text plus entity spans into the HTML dialect.
// Text between tags is HTML-escaped; offsets are UTF-16 code units.
func UnparseHTML(text string, entities []MessageEntity) string {
	units := utf16.Encode([]rune(text))
	ins := tagInsertions(entities, htmlTags)

	// At equal positions closes go first, innermost span first, then opens
	// in declaration order, keeping coextensive spans properly nested.
	sort.SliceStable(ins, func(i, j int) bool {
		if ins[i].pos != ins[j].pos {
			return ins[i].pos < ins[j].pos
		}
		if ins[i].open != ins[j].open {
			return !ins[i].open
		}
		if ins[i].open {
			return ins[i].seq < ins[j].seq
		}
		return ins[i].seq > ins[j].seq
	})

	var b strings.Builder
	prev := 0
	for _, in := range ins {
		pos := in.pos
		if pos < prev {
			pos = prev
		}
		if pos > len(units) {
			pos = len(units)
		}
		b.WriteString(html.EscapeString(string(utf16.Decode(units[prev:pos]))))
		b.WriteString(in.tag)
		prev = pos
	}
	b.WriteString(html.EscapeString(string(utf16.Decode(units[prev:]))))
	return b.String()
}
