package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Markdown delimiters understood by the dialect.
const (
	mdBold      = "**"
	mdItalic    = "__"
	mdUnderline = "--"
	mdStrike    = "~~"
	mdSpoiler   = "||"
	mdCode      = "`"
	mdPre       = "```"
)

type tagInsertion struct {
	pos  int
	seq  int
	tag  string
	open bool
}

// markdownTags returns the opening and closing delimiter pair for an entity,
// or ok=false for entity kinds that carry no markdown representation.
func markdownTags(e MessageEntity) (open, close string, ok bool) {
	switch e.Type {
	case EntityBold:
		return mdBold, mdBold, true
	case EntityItalic:
		return mdItalic, mdItalic, true
	case EntityUnderline:
		return mdUnderline, mdUnderline, true
	case EntityStrikethrough:
		return mdStrike, mdStrike, true
	case EntitySpoiler:
		return mdSpoiler, mdSpoiler, true
	case EntityCode:
		return mdCode, mdCode, true
	case EntityPre:
		return mdPre + e.Language + "\n", mdPre, true
	case EntityTextLink:
		return "[", "](" + e.URL + ")", true
	case EntityTextMention:
		if e.User == nil {
			return "", "", false
		}
		return "[", fmt.Sprintf("](tg://user?id=%d)", e.User.ID), true
	case EntityCustomEmoji:
		return "![", fmt.Sprintf("](tg://emoji?id=%d)", e.CustomEmojiID), true
	default:
		return "", "", false
	}
}

func tagInsertions(entities []MessageEntity, tags func(MessageEntity) (string, string, bool)) []tagInsertion {
	ins := make([]tagInsertion, 0, 2*len(entities))
	seq := 0
	for _, e := range entities {
		open, close, ok := tags(e)
		if !ok {
			continue
		}
		ins = append(ins, tagInsertion{pos: e.Offset, seq: seq, tag: open, open: true})
		ins = append(ins, tagInsertion{pos: e.Offset + e.Length, seq: seq, tag: close})
		seq++
	}
	return ins
}

// UnparseMarkdown re-serializes text plus entity spans into the markdown
// dialect. Offsets are interpreted as UTF-16 code units.
func UnparseMarkdown(text string, entities []MessageEntity) string {
	ins := tagInsertions(entities, markdownTags)
	if len(ins) == 0 {
		return text
	}

	units := utf16.Encode([]rune(text))

	// Insert back to front so earlier positions stay valid. At equal
	// positions the rendered order must be closes in reverse declaration
	// order, then opens in declaration order, so spans close innermost
	// first; inserting back to front reverses that.
	sort.Slice(ins, func(i, j int) bool {
		if ins[i].pos != ins[j].pos {
			return ins[i].pos > ins[j].pos
		}
		if ins[i].open != ins[j].open {
			return ins[i].open
		}
		if ins[i].open {
			return ins[i].seq > ins[j].seq
		}
		return ins[i].seq < ins[j].seq
	})

	for _, in := range ins {
		pos := in.pos
		if pos < 0 {
			pos = 0
		}
		if pos > len(units) {
			pos = len(units)
		}
		tag := utf16.Encode([]rune(in.tag))
		next := make([]uint16, 0, len(units)+len(tag))
		next = append(next, units[:pos]...)
		next = append(next, tag...)
		next = append(next, units[pos:]...)
		units = next
	}

	return string(utf16.Decode(units))
}

// ParseMarkdown parses the markdown dialect back into plain text plus entity
// spans. It is the inverse of UnparseMarkdown for the supported entity kinds;
// unmatched delimiters are kept as literal text.
func ParseMarkdown(text string) (string, []MessageEntity) {
	units := utf16.Encode([]rune(text))
	out := make([]uint16, 0, len(units))
	var entities []MessageEntity

	i := 0
	for i < len(units) {
		// Pre and code spans win over every other delimiter.
		if hasAt(units, i, mdPre) {
			if body, lang, next, ok := scanPre(units, i); ok {
				entities = append(entities, MessageEntity{
					Type:     EntityPre,
					Offset:   len(out),
					Length:   len(body),
					Language: lang,
				})
				out = append(out, body...)
				i = next
				continue
			}
		}
		if hasAt(units, i, mdCode) {
			if end := indexFrom(units, i+1, mdCode); end >= 0 {
				body := units[i+1 : end]
				entities = append(entities, MessageEntity{
					Type:   EntityCode,
					Offset: len(out),
					Length: len(body),
				})
				out = append(out, body...)
				i = end + 1
				continue
			}
		}
		if link, ok := scanLink(units, i); ok {
			e := MessageEntity{Offset: len(out), Length: len(link.label)}
			switch {
			case strings.HasPrefix(link.url, "tg://user?id="):
				id, err := strconv.ParseInt(strings.TrimPrefix(link.url, "tg://user?id="), 10, 64)
				if err != nil {
					e.Type = EntityTextLink
					e.URL = link.url
				} else {
					e.Type = EntityTextMention
					e.User = &User{ID: id}
				}
			case link.emoji && strings.HasPrefix(link.url, "tg://emoji?id="):
				id, err := strconv.ParseInt(strings.TrimPrefix(link.url, "tg://emoji?id="), 10, 64)
				if err != nil {
					e.Type = EntityTextLink
					e.URL = link.url
				} else {
					e.Type = EntityCustomEmoji
					e.CustomEmojiID = id
				}
			default:
				e.Type = EntityTextLink
				e.URL = link.url
			}
			entities = append(entities, e)
			out = append(out, link.label...)
			i = link.next
			continue
		}
		if delim, typ, ok := twoCharDelim(units, i); ok {
			if end := closingDelim(units, i+2, delim); end >= 0 {
				inner, innerEntities := ParseMarkdown(string(utf16.Decode(units[i+2 : end])))
				innerUnits := utf16.Encode([]rune(inner))
				entities = append(entities, MessageEntity{
					Type:   typ,
					Offset: len(out),
					Length: len(innerUnits),
				})
				for _, ie := range innerEntities {
					ie.Offset += len(out)
					entities = append(entities, ie)
				}
				out = append(out, innerUnits...)
				i = end + 2
				continue
			}
		}
		out = append(out, units[i])
		i++
	}

	sort.SliceStable(entities, func(a, b int) bool { return entities[a].Offset < entities[b].Offset })
	if len(entities) == 0 {
		entities = nil
	}
	return string(utf16.Decode(out)), entities
}

type parsedLink struct {
	label []uint16
	url   string
	emoji bool
	next  int
}

// scanLink recognizes [label](url) and ![label](url) starting at i.
func scanLink(units []uint16, i int) (parsedLink, bool) {
	emoji := false
	start := i
	if hasAt(units, i, "![") {
		emoji = true
		start = i + 1
	} else if !hasAt(units, i, "[") {
		return parsedLink{}, false
	}
	closeBracket := indexFrom(units, start+1, "]")
	if closeBracket < 0 || !hasAt(units, closeBracket+1, "(") {
		return parsedLink{}, false
	}
	closeParen := indexFrom(units, closeBracket+2, ")")
	if closeParen < 0 {
		return parsedLink{}, false
	}
	return parsedLink{
		label: units[start+1 : closeBracket],
		url:   string(utf16.Decode(units[closeBracket+2 : closeParen])),
		emoji: emoji,
		next:  closeParen + 1,
	}, true
}

// scanPre recognizes ```lang\nbody``` starting at i.
func scanPre(units []uint16, i int) (body []uint16, lang string, next int, ok bool) {
	end := indexFrom(units, i+3, mdPre)
	if end < 0 {
		return nil, "", 0, false
	}
	inner := units[i+3 : end]
	if nl := indexFrom(inner, 0, "\n"); nl >= 0 {
		lang = string(utf16.Decode(inner[:nl]))
		inner = inner[nl+1:]
	}
	return inner, lang, end + 3, true
}

func twoCharDelim(units []uint16, i int) (string, EntityType, bool) {
	for delim, typ := range map[string]EntityType{
		mdBold:      EntityBold,
		mdItalic:    EntityItalic,
		mdUnderline: EntityUnderline,
		mdStrike:    EntityStrikethrough,
		mdSpoiler:   EntitySpoiler,
	} {
		if hasAt(units, i, delim) {
			return delim, typ, true
		}
	}
	return "", "", false
}

func closingDelim(units []uint16, from int, delim string) int {
	return indexFrom(units, from, delim)
}

func hasAt(units []uint16, i int, s string) bool {
	pat := utf16.Encode([]rune(s))
	if i < 0 || i+len(pat) > len(units) {
		return false
	}
	for k, u := range pat {
		if units[i+k] != u {
			return false
		}
	}
	return true
}

func indexFrom(units []uint16, from int, s string) int {
	pat := utf16.Encode([]rune(s))
	if len(pat) == 0 {
		return -1
	}
	for i := from; i+len(pat) <= len(units); i++ {
		match := true
		for k, u := range pat {
			if units[i+k] != u {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
