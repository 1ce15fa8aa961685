package domain

import "fmt"

// Sender describes the author of an inbound message.
type Sender struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Attachment represents the single piece of media carried by a message.
type Attachment struct {
	Type   MediaType `json:"type"`
	FileID string    `json:"file_id"`
}

// Message is the read-only view of an inbound Telegram message as seen
// by the relay pipeline.
type Message struct {
	ChatID     string      `json:"chat_id"`
	MessageID  int64       `json:"message_id"`
	Text       string      `json:"text"`
	Caption    string      `json:"caption"`
	Sender     Sender      `json:"sender"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// Content returns the message text, falling back to the media caption
// when the message has no text of its own.
func (m *Message) Content() string {
	if m.Text != "" {
		return m.Text
	}
	return m.Caption
}

// Key returns the dedup identity of the message. The chat id is part of
// the key so message ids from different chats cannot collide.
func (m *Message) Key() string {
	return fmt.Sprintf("%s:%d", m.ChatID, m.MessageID)
}
