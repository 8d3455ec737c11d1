package decoder

import (
	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/model"
)

// decodeEntities converts raw formatting entities, resolving mention targets
// through the users table. Variants this layer does not understand are
// dropped rather than surfaced as unknowns.
func decodeEntities(raw []tg.MessageEntityClass, tables Tables) []model.MessageEntity {
	if len(raw) == 0 {
		return nil
	}
	out := make([]model.MessageEntity, 0, len(raw))
	for _, re := range raw {
		e, ok := decodeEntity(re, tables)
		if !ok {
			continue
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeEntity(raw tg.MessageEntityClass, tables Tables) (model.MessageEntity, bool) {
	e := model.MessageEntity{
		Offset: raw.GetOffset(),
		Length: raw.GetLength(),
	}
	switch re := raw.(type) {
	case *tg.MessageEntityMention:
		e.Type = model.EntityMention
	case *tg.MessageEntityHashtag:
		e.Type = model.EntityHashtag
	case *tg.MessageEntityCashtag:
		e.Type = model.EntityCashtag
	case *tg.MessageEntityBotCommand:
		e.Type = model.EntityBotCommand
	case *tg.MessageEntityURL:
		e.Type = model.EntityURL
	case *tg.MessageEntityEmail:
		e.Type = model.EntityEmail
	case *tg.MessageEntityPhone:
		e.Type = model.EntityPhoneNumber
	case *tg.MessageEntityBold:
		e.Type = model.EntityBold
	case *tg.MessageEntityItalic:
		e.Type = model.EntityItalic
	case *tg.MessageEntityUnderline:
		e.Type = model.EntityUnderline
	case *tg.MessageEntityStrike:
		e.Type = model.EntityStrikethrough
	case *tg.MessageEntitySpoiler:
		e.Type = model.EntitySpoiler
	case *tg.MessageEntityCode:
		e.Type = model.EntityCode
	case *tg.MessageEntityPre:
		e.Type = model.EntityPre
		e.Language = re.Language
	case *tg.MessageEntityTextURL:
		e.Type = model.EntityTextLink
		e.URL = re.URL
	case *tg.MessageEntityMentionName:
		e.Type = model.EntityTextMention
		e.User = userFromTables(tables, re.UserID)
	case *tg.MessageEntityBlockquote:
		e.Type = model.EntityBlockquote
		e.Collapsed = re.Collapsed
	case *tg.MessageEntityBankCard:
		e.Type = model.EntityBankCard
	case *tg.MessageEntityCustomEmoji:
		e.Type = model.EntityCustomEmoji
		e.CustomEmojiID = re.DocumentID
	default:
		return model.MessageEntity{}, false
	}
	return e, true
}
