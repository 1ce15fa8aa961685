package domain

import "time"

// Entry is one relayed message kept for the recent-relays feed.
type Entry struct {
	ChatID    string    `json:"chat_id"`
	MessageID int64     `json:"message_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Link      string    `json:"link"`
	RelayedAt time.Time `json:"relayed_at"`
}
