package decoder

import (
	"github.com/gotd/td/tg"

	"github.com/sanpater/pyrogram/internal/model"
	"github.com/sanpater/pyrogram/internal/peers"
)

// applyMedia maps one raw media record onto the message's payload cluster
// and tag. The return value reports whether an attachment is present at
// all, which is not the same as the tag being set: a document record whose
// file is stripped keeps the attachment slot occupied with no tag, while an
// unknown variant or an empty link preview count as no attachment.
func applyMedia(media tg.MessageMediaClass, out *model.Message, tables Tables) bool {
	switch m := media.(type) {
	case *tg.MessageMediaPhoto:
		ttl, _ := m.GetTTLSeconds()
		if photo, ok := m.GetPhoto(); ok {
			out.Photo = decodePhoto(photo, ttl)
		}
		out.Media = model.MediaPhoto
		out.HasMediaSpoiler = m.Spoiler
	case *tg.MessageMediaGeo:
		out.Location = decodeLocation(m.Geo)
		out.Media = model.MediaLocation
	case *tg.MessageMediaContact:
		out.Contact = &model.Contact{
			PhoneNumber: m.PhoneNumber,
			FirstName:   m.FirstName,
			LastName:    m.LastName,
			UserID:      m.UserID,
			VCard:       m.Vcard,
		}
		out.Media = model.MediaContact
	case *tg.MessageMediaVenue:
		venue := &model.Venue{
			Title:     m.Title,
			Address:   m.Address,
			Provider:  m.Provider,
			VenueID:   m.VenueID,
			VenueType: m.VenueType,
		}
		if loc := decodeLocation(m.Geo); loc != nil {
			venue.Location = *loc
		}
		out.Venue = venue
		out.Media = model.MediaVenue
	case *tg.MessageMediaGame:
		out.Game = &model.Game{
			ID:          m.Game.ID,
			Title:       m.Game.Title,
			ShortName:   m.Game.ShortName,
			Description: m.Game.Description,
			Photo:       decodePhoto(m.Game.Photo, 0),
		}
		out.Media = model.MediaGame
	case *tg.MessageMediaGiveaway:
		giveaway := &model.Giveaway{
			Quantity:           m.Quantity,
			UntilDate:          unixTime(m.UntilDate),
			OnlyNewSubscribers: m.OnlyNewSubscribers,
			WinnersAreVisible:  m.WinnersAreVisible,
		}
		for _, id := range m.Channels {
			giveaway.ChatIDs = append(giveaway.ChatIDs, peers.ChannelID(id))
		}
		giveaway.Months, _ = m.GetMonths()
		giveaway.Stars, _ = m.GetStars()
		giveaway.CountriesISO2, _ = m.GetCountriesISO2()
		giveaway.PrizeDescription, _ = m.GetPrizeDescription()
		out.Giveaway = giveaway
		out.Media = model.MediaGiveaway
	case *tg.MessageMediaGiveawayResults:
		winners := &model.GiveawayWinners{
			ChatID:            peers.ChannelID(m.ChannelID),
			GiveawayMessageID: m.LaunchMsgID,
			WinnersCount:      m.WinnersCount,
			UnclaimedCount:    m.UnclaimedCount,
			UntilDate:         unixTime(m.UntilDate),
			IsRefunded:        m.Refunded,
		}
		for _, id := range m.Winners {
			if u := userFromTables(tables, id); u != nil {
				winners.Winners = append(winners.Winners, u)
			}
		}
		winners.Months, _ = m.GetMonths()
		winners.Stars, _ = m.GetStars()
		winners.PrizeDescription, _ = m.GetPrizeDescription()
		out.GiveawayWinners = winners
		out.Media = model.MediaGiveawayWinners
	case *tg.MessageMediaInvoice:
		out.Invoice = &model.Invoice{
			Title:                    m.Title,
			Description:              m.Description,
			Currency:                 m.Currency,
			TotalAmount:              m.TotalAmount,
			StartParameter:           m.StartParam,
			IsTest:                   m.Test,
			ShippingAddressRequested: m.ShippingAddressRequested,
		}
		out.Media = model.MediaInvoice
	case *tg.MessageMediaStory:
		out.Story = &model.StoryReference{
			ID:         m.ID,
			ChatID:     peers.ID(m.Peer),
			ViaMention: m.ViaMention,
		}
		out.Media = model.MediaStory
	case *tg.MessageMediaDocument:
		applyDocument(m, out)
	case *tg.MessageMediaWebPage:
		page, ok := m.Webpage.(*tg.WebPage)
		if !ok {
			return false
		}
		out.WebPage = decodeWebPage(page)
		out.Media = model.MediaWebPage
	case *tg.MessageMediaPoll:
		out.Poll = decodePoll(m)
		out.Media = model.MediaPoll
	case *tg.MessageMediaDice:
		out.Dice = &model.Dice{
			Emoji: m.Emoticon,
			Value: m.Value,
		}
		out.Media = model.MediaDice
	case *tg.MessageMediaPaidMedia:
		out.PaidMedia = &model.PaidMediaInfo{
			StarsAmount: m.StarsAmount,
			Count:       len(m.ExtendedMedia),
		}
		out.Media = model.MediaPaidMedia
	default:
		return false
	}
	return true
}

// applyDocument runs the secondary dispatch over the document's attributes:
// animation, then sticker, then video or round video, then audio or voice,
// else plain document.
func applyDocument(m *tg.MessageMediaDocument, out *model.Message) {
	raw, ok := m.GetDocument()
	doc, isDoc := raw.(*tg.Document)
	if !ok || !isDoc {
		return
	}
	ttl, _ := m.GetTTLSeconds()
	attrs := collectDocAttrs(doc.Attributes)

	switch {
	case attrs.animated:
		out.Animation = decodeAnimation(doc, attrs)
		out.Media = model.MediaAnimation
		out.HasMediaSpoiler = m.Spoiler
	case attrs.sticker != nil:
		out.Sticker = decodeSticker(doc, attrs)
		out.Media = model.MediaSticker
	case attrs.video != nil:
		if attrs.video.RoundMessage {
			out.VideoNote = decodeVideoNote(doc, attrs.video)
			out.Media = model.MediaVideoNote
		} else {
			out.Video = decodeVideo(doc, attrs, ttl)
			out.Media = model.MediaVideo
			out.HasMediaSpoiler = m.Spoiler

			altDocs, _ := m.GetAltDocuments()
			for _, alt := range altDocs {
				altDoc, ok := alt.(*tg.Document)
				if !ok {
					continue
				}
				altAttrs := collectDocAttrs(altDoc.Attributes)
				if altAttrs.video == nil {
					continue
				}
				out.AlternativeVideos = append(out.AlternativeVideos, decodeVideo(altDoc, altAttrs, 0))
			}
		}
	case attrs.audio != nil:
		if attrs.audio.Voice {
			out.Voice = decodeVoice(doc, attrs.audio)
			out.Media = model.MediaVoice
		} else {
			out.Audio = decodeAudio(doc, attrs)
			out.Media = model.MediaAudio
		}
	default:
		out.Document = &model.Document{
			ID:       doc.ID,
			FileName: attrs.fileName,
			MimeType: doc.MimeType,
			FileSize: doc.Size,
			Date:     unixTime(doc.Date),
		}
		out.Media = model.MediaDocument
	}
}

// docAttrs indexes a document's attribute list by kind.
type docAttrs struct {
	fileName    string
	animated    bool
	hasStickers bool
	sticker     *tg.DocumentAttributeSticker
	video       *tg.DocumentAttributeVideo
	audio       *tg.DocumentAttributeAudio
	image       *tg.DocumentAttributeImageSize
}

func collectDocAttrs(list []tg.DocumentAttributeClass) docAttrs {
	var attrs docAttrs
	for _, a := range list {
		switch attr := a.(type) {
		case *tg.DocumentAttributeFilename:
			attrs.fileName = attr.FileName
		case *tg.DocumentAttributeAnimated:
			attrs.animated = true
		case *tg.DocumentAttributeHasStickers:
			attrs.hasStickers = true
		case *tg.DocumentAttributeSticker:
			attrs.sticker = attr
		case *tg.DocumentAttributeVideo:
			attrs.video = attr
		case *tg.DocumentAttributeAudio:
			attrs.audio = attr
		case *tg.DocumentAttributeImageSize:
			attrs.image = attr
		}
	}
	return attrs
}

// decodePhoto reduces a raw photo to its largest available size. Stripped
// and path thumbnails are skipped.
func decodePhoto(photo tg.PhotoClass, ttl int) *model.Photo {
	p, ok := photo.(*tg.Photo)
	if !ok {
		return nil
	}
	out := &model.Photo{
		ID:          p.ID,
		Date:        unixTime(p.Date),
		HasStickers: p.HasStickers,
		TTLSeconds:  ttl,
	}
	for _, size := range p.Sizes {
		switch s := size.(type) {
		case *tg.PhotoSize:
			if s.W*s.H >= out.Width*out.Height {
				out.Width = s.W
				out.Height = s.H
				out.FileSize = int64(s.Size)
			}
		case *tg.PhotoSizeProgressive:
			if s.W*s.H >= out.Width*out.Height {
				out.Width = s.W
				out.Height = s.H
				if n := len(s.Sizes); n > 0 {
					out.FileSize = int64(s.Sizes[n-1])
				}
			}
		}
	}
	return out
}

func decodeLocation(geo tg.GeoPointClass) *model.Location {
	point, ok := geo.(*tg.GeoPoint)
	if !ok {
		return nil
	}
	loc := &model.Location{
		Longitude: point.Long,
		Latitude:  point.Lat,
	}
	loc.AccuracyRadius, _ = point.GetAccuracyRadius()
	return loc
}

func decodeVideo(doc *tg.Document, attrs docAttrs, ttl int) *model.Video {
	video := &model.Video{
		ID:         doc.ID,
		FileName:   attrs.fileName,
		MimeType:   doc.MimeType,
		FileSize:   doc.Size,
		Date:       unixTime(doc.Date),
		TTLSeconds: ttl,
	}
	if v := attrs.video; v != nil {
		video.Width = v.W
		video.Height = v.H
		video.Duration = v.Duration
		video.SupportsStreaming = v.SupportsStreaming
		video.NoSound = v.Nosound
	}
	return video
}

func decodeVideoNote(doc *tg.Document, attr *tg.DocumentAttributeVideo) *model.VideoNote {
	return &model.VideoNote{
		ID:       doc.ID,
		Length:   attr.W,
		Duration: attr.Duration,
		MimeType: doc.MimeType,
		FileSize: doc.Size,
		Date:     unixTime(doc.Date),
	}
}

func decodeAnimation(doc *tg.Document, attrs docAttrs) *model.Animation {
	anim := &model.Animation{
		ID:       doc.ID,
		FileName: attrs.fileName,
		MimeType: doc.MimeType,
		FileSize: doc.Size,
		Date:     unixTime(doc.Date),
	}
	if v := attrs.video; v != nil {
		anim.Width = v.W
		anim.Height = v.H
		anim.Duration = v.Duration
	} else if img := attrs.image; img != nil {
		anim.Width = img.W
		anim.Height = img.H
	}
	return anim
}

func decodeAudio(doc *tg.Document, attrs docAttrs) *model.Audio {
	audio := &model.Audio{
		ID:       doc.ID,
		Duration: attrs.audio.Duration,
		FileName: attrs.fileName,
		MimeType: doc.MimeType,
		FileSize: doc.Size,
		Date:     unixTime(doc.Date),
	}
	audio.Performer, _ = attrs.audio.GetPerformer()
	audio.Title, _ = attrs.audio.GetTitle()
	return audio
}

func decodeVoice(doc *tg.Document, attr *tg.DocumentAttributeAudio) *model.Voice {
	voice := &model.Voice{
		ID:       doc.ID,
		Duration: attr.Duration,
		MimeType: doc.MimeType,
		FileSize: doc.Size,
		Date:     unixTime(doc.Date),
	}
	voice.Waveform, _ = attr.GetWaveform()
	return voice
}

func decodeSticker(doc *tg.Document, attrs docAttrs) *model.Sticker {
	sticker := &model.Sticker{
		ID:         doc.ID,
		Emoji:      attrs.sticker.Alt,
		IsMask:     attrs.sticker.Mask,
		IsAnimated: doc.MimeType == "application/x-tgsticker",
		IsVideo:    doc.MimeType == "video/webm",
		FileName:   attrs.fileName,
		MimeType:   doc.MimeType,
		FileSize:   doc.Size,
		Date:       unixTime(doc.Date),
	}
	if img := attrs.image; img != nil {
		sticker.Width = img.W
		sticker.Height = img.H
	} else if v := attrs.video; v != nil {
		sticker.Width = v.W
		sticker.Height = v.H
	}
	return sticker
}

// stickerFromDocument decodes a sticker carried outside a media record,
// such as the one attached to a star gift.
func stickerFromDocument(raw tg.DocumentClass) *model.Sticker {
	doc, ok := raw.(*tg.Document)
	if !ok {
		return nil
	}
	attrs := collectDocAttrs(doc.Attributes)
	if attrs.sticker == nil {
		return nil
	}
	return decodeSticker(doc, attrs)
}

// DecodeStory converts a raw story item into a domain story. chatID is the
// signed id of the story's owner peer.
func DecodeStory(item *tg.StoryItem, chatID int64, tables Tables) *model.Story {
	if item == nil {
		return nil
	}
	out := &model.Story{
		ID:             item.ID,
		ChatID:         chatID,
		Date:           unixTime(item.Date),
		ExpireDate:     unixTime(item.ExpireDate),
		IsPinned:       item.Pinned,
		IsPublic:       item.Public,
		IsCloseFriends: item.CloseFriends,
	}
	if caption, ok := item.GetCaption(); ok && caption != "" {
		entities, _ := item.GetEntities()
		str := model.NewStr(caption, decodeEntities(entities, tables))
		out.Caption = &str
	}
	switch media := item.Media.(type) {
	case *tg.MessageMediaPhoto:
		if photo, ok := media.GetPhoto(); ok {
			out.Photo = decodePhoto(photo, 0)
		}
	case *tg.MessageMediaDocument:
		if raw, ok := media.GetDocument(); ok {
			if doc, isDoc := raw.(*tg.Document); isDoc {
				attrs := collectDocAttrs(doc.Attributes)
				if attrs.video != nil {
					out.Video = decodeVideo(doc, attrs, 0)
				}
			}
		}
	}
	return out
}

func decodeWebPage(page *tg.WebPage) *model.WebPage {
	out := &model.WebPage{
		ID:         page.ID,
		URL:        page.URL,
		DisplayURL: page.DisplayURL,
	}
	out.Type, _ = page.GetType()
	out.SiteName, _ = page.GetSiteName()
	out.Title, _ = page.GetTitle()
	out.Description, _ = page.GetDescription()
	out.Author, _ = page.GetAuthor()
	out.EmbedURL, _ = page.GetEmbedURL()
	out.EmbedType, _ = page.GetEmbedType()
	out.Duration, _ = page.GetDuration()
	return out
}

func decodePoll(m *tg.MessageMediaPoll) *model.Poll {
	poll := &model.Poll{
		ID:                    m.Poll.ID,
		Question:              m.Poll.Question.Text,
		IsClosed:              m.Poll.Closed,
		IsAnonymous:           !m.Poll.PublicVoters,
		IsQuiz:                m.Poll.Quiz,
		AllowsMultipleAnswers: m.Poll.MultipleChoice,
	}
	poll.TotalVoterCount, _ = m.Results.GetTotalVoters()

	voters := map[string]*tg.PollAnswerVoters{}
	if results, ok := m.Results.GetResults(); ok {
		for i := range results {
			voters[string(results[i].Option)] = &results[i]
		}
	}
	for i, answer := range m.Poll.Answers {
		option := model.PollOption{
			Text: answer.Text.Text,
			Data: answer.Option,
		}
		if v := voters[string(answer.Option)]; v != nil {
			option.VoterCount = v.Voters
			if v.Chosen {
				poll.ChosenOptionIDs = append(poll.ChosenOptionIDs, i)
			}
		}
		poll.Options = append(poll.Options, option)
	}
	return poll
}
