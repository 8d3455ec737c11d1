// Package model_test tests text rendering and entity span handling.
package model_test

import (
	"reflect"
	"testing"

	"github.com/sanpater/pyrogram/internal/model"
)

func TestStrUTF16(t *testing.T) {
	t.Parallel()

	// The thumbs-up emoji occupies two UTF-16 code units.
	s := model.NewStr("👍 ok", nil)

	if got := s.LenUTF16(); got != 5 {
		t.Errorf("LenUTF16() = %d, want 5", got)
	}
	if got := s.SliceUTF16(3, 5); got != "ok" {
		t.Errorf("SliceUTF16(3, 5) = %q, want %q", got, "ok")
	}
	if got := s.SliceUTF16(0, 2); got != "👍" {
		t.Errorf("SliceUTF16(0, 2) = %q, want the emoji", got)
	}
	if got := s.SliceUTF16(4, 2); got != "" {
		t.Errorf("SliceUTF16(4, 2) = %q, want empty for an inverted range", got)
	}
	if got := s.SliceUTF16(-3, 99); got != "👍 ok" {
		t.Errorf("SliceUTF16(-3, 99) = %q, want the whole text", got)
	}
}

func TestUnparseMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		entities []model.MessageEntity
		want     string
	}{
		{
			name: "no entities",
			text: "plain",
			want: "plain",
		},
		{
			name: "bold over a hashtag",
			text: "hi #pyrogram",
			entities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 3, Length: 9},
			},
			want: "hi **#pyrogram**",
		},
		{
			name: "hashtag alone has no markdown form",
			text: "hi #pyrogram",
			entities: []model.MessageEntity{
				{Type: model.EntityHashtag, Offset: 3, Length: 9},
			},
			want: "hi #pyrogram",
		},
		{
			name: "offsets count utf-16 units",
			text: "👍 bold",
			entities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 3, Length: 4},
			},
			want: "👍 **bold**",
		},
		{
			name: "text link",
			text: "see docs now",
			entities: []model.MessageEntity{
				{Type: model.EntityTextLink, Offset: 4, Length: 4, URL: "https://example.org"},
			},
			want: "see [docs](https://example.org) now",
		},
		{
			name: "text mention",
			text: "ask Dan",
			entities: []model.MessageEntity{
				{Type: model.EntityTextMention, Offset: 4, Length: 3, User: &model.User{ID: 42}},
			},
			want: "ask [Dan](tg://user?id=42)",
		},
		{
			name: "custom emoji",
			text: "x 😀",
			entities: []model.MessageEntity{
				{Type: model.EntityCustomEmoji, Offset: 2, Length: 2, CustomEmojiID: 5368141691},
			},
			want: "x ![😀](tg://emoji?id=5368141691)",
		},
		{
			name: "pre with language",
			text: "fmt.Println()",
			entities: []model.MessageEntity{
				{Type: model.EntityPre, Offset: 0, Length: 13, Language: "go"},
			},
			want: "```go\nfmt.Println()```",
		},
		{
			name: "nested bold and italic",
			text: "both",
			entities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 0, Length: 4},
				{Type: model.EntityItalic, Offset: 0, Length: 4},
			},
			want: "**__both__**",
		},
		{
			name: "adjacent spans",
			text: "abcd",
			entities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 0, Length: 2},
				{Type: model.EntityItalic, Offset: 2, Length: 2},
			},
			want: "**ab**__cd__",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := model.UnparseMarkdown(tc.text, tc.entities); got != tc.want {
				t.Errorf("UnparseMarkdown() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantText     string
		wantEntities []model.MessageEntity
	}{
		{
			name:     "plain text",
			input:    "plain",
			wantText: "plain",
		},
		{
			name:     "bold",
			input:    "hi **#pyrogram**",
			wantText: "hi #pyrogram",
			wantEntities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 3, Length: 9},
			},
		},
		{
			name:     "unmatched delimiter stays literal",
			input:    "2 ** 3",
			wantText: "2 ** 3",
		},
		{
			name:     "code span",
			input:    "run `x := 1` first",
			wantText: "run x := 1 first",
			wantEntities: []model.MessageEntity{
				{Type: model.EntityCode, Offset: 4, Length: 6},
			},
		},
		{
			name:     "pre with language",
			input:    "```go\nfmt.Println()```",
			wantText: "fmt.Println()",
			wantEntities: []model.MessageEntity{
				{Type: model.EntityPre, Offset: 0, Length: 13, Language: "go"},
			},
		},
		{
			name:     "link",
			input:    "see [docs](https://example.org) now",
			wantText: "see docs now",
			wantEntities: []model.MessageEntity{
				{Type: model.EntityTextLink, Offset: 4, Length: 4, URL: "https://example.org"},
			},
		},
		{
			name:     "user mention link",
			input:    "ask [Dan](tg://user?id=42)",
			wantText: "ask Dan",
			wantEntities: []model.MessageEntity{
				{Type: model.EntityTextMention, Offset: 4, Length: 3, User: &model.User{ID: 42}},
			},
		},
		{
			name:     "custom emoji link",
			input:    "x ![😀](tg://emoji?id=5368141691)",
			wantText: "x 😀",
			wantEntities: []model.MessageEntity{
				{Type: model.EntityCustomEmoji, Offset: 2, Length: 2, CustomEmojiID: 5368141691},
			},
		},
		{
			name:     "nested delimiters",
			input:    "**__both__**",
			wantText: "both",
			wantEntities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 0, Length: 4},
				{Type: model.EntityItalic, Offset: 0, Length: 4},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotText, gotEntities := model.ParseMarkdown(tc.input)
			if gotText != tc.wantText {
				t.Errorf("ParseMarkdown() text = %q, want %q", gotText, tc.wantText)
			}
			if !reflect.DeepEqual(gotEntities, tc.wantEntities) {
				t.Errorf("ParseMarkdown() entities = %+v, want %+v", gotEntities, tc.wantEntities)
			}
		})
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	t.Parallel()

	s := model.NewStr("hi #pyrogram", []model.MessageEntity{
		{Type: model.EntityBold, Offset: 3, Length: 9},
	})

	rendered := s.Markdown()
	if rendered != "hi **#pyrogram**" {
		t.Fatalf("Markdown() = %q, want %q", rendered, "hi **#pyrogram**")
	}

	text, entities := model.ParseMarkdown(rendered)
	if text != s.Text {
		t.Errorf("round trip text = %q, want %q", text, s.Text)
	}
	if !reflect.DeepEqual(entities, s.Entities) {
		t.Errorf("round trip entities = %+v, want %+v", entities, s.Entities)
	}
}
