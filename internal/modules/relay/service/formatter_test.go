package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	messageDomain "github.com/reshetovitsme/tag-relay-bot/internal/modules/message/domain"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ann", DisplayName(messageDomain.Sender{FirstName: "Ann"}))
	assert.Equal(t, "Ann Lee", DisplayName(messageDomain.Sender{FirstName: "Ann", LastName: "Lee"}))
	assert.Equal(t, "@annl", DisplayName(messageDomain.Sender{
		Username: "annl", FirstName: "Ann", LastName: "Lee",
	}), "username takes priority over name fields")
}

func TestPermalink(t *testing.T) {
	assert.Equal(t, "https://t.me/c/1234567890/42", Permalink("-1001234567890", 42))
	assert.Equal(t, "https://t.me/c/987654/7", Permalink("987654", 7), "ids without the supergroup marker pass through")
}

func TestFormat(t *testing.T) {
	msg := &messageDomain.Message{
		ChatID:    "-1001234567890",
		MessageID: 42,
		Text:      "see #news today",
		Sender:    messageDomain.Sender{Username: "annl"},
	}

	assert.Equal(t, "@annl пишет: \"see #news today\"\n\nhttps://t.me/c/1234567890/42", Format(msg))
}

func TestFormat_CaptionFallback(t *testing.T) {
	msg := &messageDomain.Message{
		ChatID:    "-1001234567890",
		MessageID: 43,
		Caption:   "photo with #news",
		Sender:    messageDomain.Sender{FirstName: "Ann"},
	}

	assert.Equal(t, "Ann пишет: \"photo with #news\"\n\nhttps://t.me/c/1234567890/43", Format(msg))
}
