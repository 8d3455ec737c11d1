package decoder

import (
	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/model"
)

// decodeReplyMarkup converts one of the four keyboard markup kinds. Unknown
// kinds yield no markup.
func decodeReplyMarkup(raw tg.ReplyMarkupClass) model.ReplyMarkup {
	switch markup := raw.(type) {
	case *tg.ReplyKeyboardForceReply:
		force := model.ForceReply{
			SingleUse: markup.SingleUse,
			Selective: markup.Selective,
		}
		force.Placeholder, _ = markup.GetPlaceholder()
		return force
	case *tg.ReplyKeyboardMarkup:
		keyboard := model.ReplyKeyboardMarkup{
			ResizeKeyboard: markup.Resize,
			OneTime:        markup.SingleUse,
			Selective:      markup.Selective,
			Persistent:     markup.Persistent,
		}
		keyboard.Placeholder, _ = markup.GetPlaceholder()
		for _, row := range markup.Rows {
			var buttons []model.KeyboardButton
			for _, b := range row.Buttons {
				buttons = append(buttons, decodeKeyboardButton(b))
			}
			keyboard.Rows = append(keyboard.Rows, buttons)
		}
		return keyboard
	case *tg.ReplyInlineMarkup:
		keyboard := model.InlineKeyboardMarkup{}
		for _, row := range markup.Rows {
			var buttons []model.InlineKeyboardButton
			for _, b := range row.Buttons {
				buttons = append(buttons, decodeInlineButton(b))
			}
			keyboard.Rows = append(keyboard.Rows, buttons)
		}
		return keyboard
	case *tg.ReplyKeyboardHide:
		return model.ReplyKeyboardRemove{Selective: markup.Selective}
	default:
		return nil
	}
}

func decodeKeyboardButton(raw tg.KeyboardButtonClass) model.KeyboardButton {
	button := model.KeyboardButton{Text: raw.GetText()}
	switch b := raw.(type) {
	case *tg.KeyboardButtonRequestPhone:
		button.RequestContact = true
	case *tg.KeyboardButtonRequestGeoLocation:
		button.RequestLocation = true
	case *tg.KeyboardButtonRequestPoll:
		button.RequestPoll = true
		button.RequestQuiz, _ = b.GetQuiz()
	case *tg.KeyboardButtonSimpleWebView:
		button.WebAppURL = b.URL
	}
	return button
}

func decodeInlineButton(raw tg.KeyboardButtonClass) model.InlineKeyboardButton {
	button := model.InlineKeyboardButton{Text: raw.GetText()}
	switch b := raw.(type) {
	case *tg.KeyboardButtonURL:
		button.URL = b.URL
	case *tg.KeyboardButtonCallback:
		button.CallbackData = b.Data
	case *tg.KeyboardButtonSwitchInline:
		if b.SamePeer {
			button.SwitchInlineQueryCurrentChat = b.Query
		} else {
			button.SwitchInlineQuery = b.Query
		}
	case *tg.KeyboardButtonWebView:
		button.WebAppURL = b.URL
	case *tg.KeyboardButtonGame:
		button.IsGame = true
	case *tg.KeyboardButtonBuy:
		button.IsPay = true
	}
	return button
}
