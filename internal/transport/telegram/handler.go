package telegram

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	messageDomain "github.com/reshetovitsme/tag-relay-bot/internal/modules/message/domain"
	relayService "github.com/reshetovitsme/tag-relay-bot/internal/modules/relay/service"
)

// Handler receives bot updates and feeds them into the relay pipeline.
type Handler struct {
	relayService *relayService.Service
}

// New creates a new Telegram handler
func New(relayService *relayService.Service) *Handler {
	return &Handler{relayService: relayService}
}

// HandleUpdate processes incoming updates. Nothing may escape it: a
// panic or error in one update must not take down the polling loop.
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered from panic in update handler", "panic", r)
		}
	}()

	msg := update.Message
	if msg == nil {
		msg = update.ChannelPost
	}
	if msg == nil {
		return
	}

	inbound := toDomain(msg)
	if err := h.relayService.Relay(ctx, inbound); err != nil {
		slog.Error("Error relaying message", "chat_id", inbound.ChatID, "message_id", inbound.MessageID, "error", err)
	}
}

// toDomain converts a Telegram message into the relay pipeline's view.
// When a message somehow carries more than one kind of media, exactly
// one attachment is chosen, in the priority photo > document > video.
func toDomain(msg *models.Message) *messageDomain.Message {
	m := &messageDomain.Message{
		ChatID:    strconv.FormatInt(msg.Chat.ID, 10),
		MessageID: int64(msg.ID),
		Text:      msg.Text,
		Caption:   msg.Caption,
	}

	if msg.From != nil {
		m.Sender = messageDomain.Sender{
			Username:  msg.From.Username,
			FirstName: msg.From.FirstName,
			LastName:  msg.From.LastName,
		}
	}

	switch {
	case len(msg.Photo) > 0:
		m.Attachment = &messageDomain.Attachment{
			Type:   messageDomain.MediaTypePhoto,
			FileID: largestPhoto(msg.Photo).FileID,
		}
	case msg.Document != nil:
		m.Attachment = &messageDomain.Attachment{
			Type:   messageDomain.MediaTypeDocument,
			FileID: msg.Document.FileID,
		}
	case msg.Video != nil:
		m.Attachment = &messageDomain.Attachment{
			Type:   messageDomain.MediaTypeVideo,
			FileID: msg.Video.FileID,
		}
	}

	return m
}

// largestPhoto picks the variant with the largest pixel area instead of
// relying on the API delivering the size list in ascending order.
func largestPhoto(sizes []models.PhotoSize) models.PhotoSize {
	best := sizes[0]
	for _, size := range sizes[1:] {
		if size.Width*size.Height > best.Width*best.Height {
			best = size
		}
	}
	return best
}
