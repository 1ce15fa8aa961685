package service

import (
	"fmt"
	"time"

	"github.com/gorilla/feeds"

	"github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/domain"
	"github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/repository"
)

// Service renders the recently relayed messages as an RSS feed.
type Service struct {
	repo repository.Repository
}

// New creates a new feed service
func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// GenerateFeed builds an RSS feed of the most recently relayed messages.
func (s *Service) GenerateFeed(baseURL string) *feeds.Feed {
	entries := s.repo.Recent()

	feed := &feeds.Feed{
		Title:       "Tag Relay - Recently Relayed Messages",
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/feed", baseURL)},
		Description: "Messages recently relayed to the destination chat",
		Created:     time.Now(),
	}
	if len(entries) > 0 {
		feed.Updated = entries[0].RelayedAt
	}

	for _, entry := range entries {
		feed.Items = append(feed.Items, s.entryToFeedItem(entry))
	}

	return feed
}

func (s *Service) entryToFeedItem(entry domain.Entry) *feeds.Item {
	title := truncate(entry.Text, 100)
	if title == "" {
		title = fmt.Sprintf("Message %d", entry.MessageID)
	}

	return &feeds.Item{
		Title:       title,
		Link:        &feeds.Link{Href: entry.Link},
		Description: entry.Text,
		Author:      &feeds.Author{Name: entry.Author},
		Created:     entry.RelayedAt,
		Id:          fmt.Sprintf("%s-%d", entry.ChatID, entry.MessageID),
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
