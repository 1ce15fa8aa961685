package repository

import (
	"github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/domain"
)

// Repository holds the most recently relayed messages for the RSS feed.
// Like the dedup cache it is in-memory only and not durable.
type Repository interface {
	Add(entry domain.Entry)
	Recent() []domain.Entry
}
