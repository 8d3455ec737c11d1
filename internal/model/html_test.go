package model_test

import (
	"testing"

	"github.com/sanpater/pyrogram/internal/model"
)

func TestUnparseHTML(t *testing.T) {
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
			name: "bold",
			text: "hi #pyrogram",
			entities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 3, Length: 9},
			},
			want: "hi <b>#pyrogram</b>",
		},
		{
			name: "nested bold and italic",
			text: "both",
			entities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 0, Length: 4},
				{Type: model.EntityItalic, Offset: 0, Length: 4},
			},
			want: "<b><i>both</i></b>",
		},
		{
			name: "adjacent spans",
			text: "abcd",
			entities: []model.MessageEntity{
				{Type: model.EntityBold, Offset: 0, Length: 2},
				{Type: model.EntityItalic, Offset: 2, Length: 2},
			},
			want: "<b>ab</b><i>cd</i>",
		},
		{
			name: "surrounding text is escaped",
			text: "a < b & c",
			entities: []model.MessageEntity{
				{Type: model.EntityItalic, Offset: 4, Length: 1},
			},
			want: "a &lt; <i>b</i> &amp; c",
		},
		{
			name: "blockquote",
			text: "quoted",
			entities: []model.MessageEntity{
				{Type: model.EntityBlockquote, Offset: 0, Length: 6},
			},
			want: "<blockquote>quoted</blockquote>",
		},
		{
			name: "expandable blockquote",
			text: "quoted",
			entities: []model.MessageEntity{
				{Type: model.EntityBlockquote, Offset: 0, Length: 6, Collapsed: true},
			},
			want: "<blockquote expandable>quoted</blockquote>",
		},
		{
			name: "pre with language",
			text: "fmt.Println()",
			entities: []model.MessageEntity{
				{Type: model.EntityPre, Offset: 0, Length: 13, Language: "go"},
			},
			want: "<pre language=\"go\">fmt.Println()</pre>",
		},
		{
			name: "text mention",
			text: "ask Dan",
			entities: []model.MessageEntity{
				{Type: model.EntityTextMention, Offset: 4, Length: 3, User: &model.User{ID: 42}},
			},
			want: "ask <a href=\"tg://user?id=42\">Dan</a>",
		},
		{
			name: "custom emoji",
			text: "😀",
			entities: []model.MessageEntity{
				{Type: model.EntityCustomEmoji, Offset: 0, Length: 2, CustomEmojiID: 5368141691},
			},
			want: "<emoji id=\"5368141691\">😀</emoji>",
		},
		{
			name: "spoiler",
			text: "secret",
			entities: []model.MessageEntity{
				{Type: model.EntitySpoiler, Offset: 0, Length: 6},
			},
			want: "<spoiler>secret</spoiler>",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := model.UnparseHTML(tc.text, tc.entities); got != tc.want {
				t.Errorf("UnparseHTML() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStrHTML(t *testing.T) {
	t.Parallel()

	s := model.NewStr("hi #pyrogram", []model.MessageEntity{
		{Type: model.EntityBold, Offset: 3, Length: 9},
	})
	if got := s.HTML(); got != "hi <b>#pyrogram</b>" {
		t.Errorf("HTML() = %q, want %q", got, "hi <b>#pyrogram</b>")
	}
}
