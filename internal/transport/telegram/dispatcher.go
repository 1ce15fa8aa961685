package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Dispatcher sends relayed messages through the Telegram Bot API. It is
// the production implementation of the relay service's Dispatcher.
type Dispatcher struct {
	bot *bot.Bot
}

// NewDispatcher creates a dispatcher over an initialized bot client.
func NewDispatcher(b *bot.Bot) *Dispatcher {
	return &Dispatcher{bot: b}
}

func (d *Dispatcher) SendText(ctx context.Context, chatID, text string) error {
	_, err := d.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	return err
}

func (d *Dispatcher) SendPhoto(ctx context.Context, chatID, fileID, caption string) error {
	_, err := d.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileString{Data: fileID},
		Caption: caption,
	})
	return err
}

func (d *Dispatcher) SendDocument(ctx context.Context, chatID, fileID, caption string) error {
	_, err := d.bot.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   chatID,
		Document: &models.InputFileString{Data: fileID},
		Caption:  caption,
	})
	return err
}

func (d *Dispatcher) SendVideo(ctx context.Context, chatID, fileID, caption string) error {
	_, err := d.bot.SendVideo(ctx, &bot.SendVideoParams{
		ChatID:  chatID,
		Video:   &models.InputFileString{Data: fileID},
		Caption: caption,
	})
	return err
}
