package decoder

import (
	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/model"
)

// decodeReactions converts the aggregated reaction counters. Nil in, nil
// out; a record with no usable entries also yields nil.
func decodeReactions(raw *tg.MessageReactions) *model.MessageReactions {
	if raw == nil {
		return nil
	}
	out := &model.MessageReactions{}
	for _, rc := range raw.Results {
		reaction := model.Reaction{Count: rc.Count}
		if order, ok := rc.GetChosenOrder(); ok {
			reaction.ChosenOrder = order
			reaction.IsChosen = true
		}
		switch r := rc.Reaction.(type) {
		case *tg.ReactionEmoji:
			reaction.Emoji = r.Emoticon
		case *tg.ReactionCustomEmoji:
			reaction.CustomEmojiID = r.DocumentID
		case *tg.ReactionPaid:
			reaction.IsPaid = true
		default:
			continue
		}
		out.Reactions = append(out.Reactions, reaction)
	}
	if len(out.Reactions) == 0 {
		return nil
	}
	return out
}
