package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/samber/oops"

	dedupService "github.com/reshetovitsme/tag-relay-bot/internal/modules/dedup/service"
	feedDomain "github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/domain"
	feedRepo "github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/repository"
	messageDomain "github.com/reshetovitsme/tag-relay-bot/internal/modules/message/domain"
	"github.com/reshetovitsme/tag-relay-bot/internal/modules/relay/domain"
	tagService "github.com/reshetovitsme/tag-relay-bot/internal/modules/tag/service"
	"github.com/reshetovitsme/tag-relay-bot/internal/shared/config"
	sharedErrors "github.com/reshetovitsme/tag-relay-bot/internal/shared/errors"
)

// Dispatcher is the outbound side of the messaging platform. Each send
// may fail; the relay treats a failure as terminal for that message.
type Dispatcher interface {
	SendText(ctx context.Context, chatID, text string) error
	SendPhoto(ctx context.Context, chatID, fileID, caption string) error
	SendDocument(ctx context.Context, chatID, fileID, caption string) error
	SendVideo(ctx context.Context, chatID, fileID, caption string) error
}

// Service runs the relay pipeline: source check, dedup check, tag check,
// then formatting and dispatch to the destination chat.
type Service struct {
	destination string
	sources     map[string]struct{}
	matcher     *tagService.Matcher
	dedup       *dedupService.Service
	feed        feedRepo.Repository
	dispatcher  Dispatcher
	now         func() time.Time
}

// New creates a new relay service
func New(cfg *config.Config, matcher *tagService.Matcher, dedup *dedupService.Service, feed feedRepo.Repository) *Service {
	return &Service{
		destination: cfg.DestinationChat,
		sources: lo.SliceToMap(cfg.SourceChats, func(id string) (string, struct{}) {
			return id, struct{}{}
		}),
		matcher: matcher,
		dedup:   dedup,
		feed:    feed,
		now:     time.Now,
	}
}

// SetDispatcher sets the outbound client. The bot is constructed after
// its handlers, so the dispatcher arrives late, same as the bot itself.
func (s *Service) SetDispatcher(d Dispatcher) {
	s.dispatcher = d
}

// Decide runs the pipeline stages in order, cheapest first. The order is
// part of the contract: a duplicate from a non-source chat reports
// not_a_source_chat, and a duplicate never reaches the tag matcher.
func (s *Service) Decide(msg *messageDomain.Message) domain.Decision {
	if _, ok := s.sources[msg.ChatID]; !ok {
		return domain.Drop(domain.DropReasonNotASourceChat)
	}
	if s.dedup.Seen(msg.Key()) {
		return domain.Drop(domain.DropReasonDuplicate)
	}
	if !s.matcher.Matches(msg.Content()) {
		return domain.Drop(domain.DropReasonNoTagMatch)
	}

	// Marked processed before any send attempt: a message whose send
	// fails downstream must not be retried on redelivery.
	s.dedup.MarkProcessed(msg.Key())
	return domain.Accept()
}

// Relay decides and, when accepted, dispatches the formatted copy to the
// destination chat. A dispatch failure is returned for logging only; the
// dedup mark stays in place and the message is never re-sent.
func (s *Service) Relay(ctx context.Context, msg *messageDomain.Message) error {
	decision := s.Decide(msg)
	if !decision.Accepted {
		slog.Debug("Message dropped", "chat_id", msg.ChatID, "message_id", msg.MessageID, "reason", decision.Reason)
		return nil
	}

	if s.dispatcher == nil {
		return sharedErrors.ErrDispatcherNotSet
	}

	text := Format(msg)
	if err := s.dispatch(ctx, msg, text); err != nil {
		return oops.With("chat_id", msg.ChatID, "message_id", msg.MessageID, "context", "failed to relay message").Wrap(err)
	}

	s.feed.Add(feedDomain.Entry{
		ChatID:    msg.ChatID,
		MessageID: msg.MessageID,
		Author:    DisplayName(msg.Sender),
		Text:      msg.Content(),
		Link:      Permalink(msg.ChatID, msg.MessageID),
		RelayedAt: s.now(),
	})

	slog.Info("Message relayed", "chat_id", msg.ChatID, "message_id", msg.MessageID)
	return nil
}

// dispatch selects the send primitive by attachment type, in the fixed
// priority photo > document > video > plain text.
func (s *Service) dispatch(ctx context.Context, msg *messageDomain.Message, text string) error {
	if att := msg.Attachment; att != nil {
		switch att.Type {
		case messageDomain.MediaTypePhoto:
			return s.dispatcher.SendPhoto(ctx, s.destination, att.FileID, text)
		case messageDomain.MediaTypeDocument:
			return s.dispatcher.SendDocument(ctx, s.destination, att.FileID, text)
		case messageDomain.MediaTypeVideo:
			return s.dispatcher.SendVideo(ctx, s.destination, att.FileID, text)
		}
	}
	return s.dispatcher.SendText(ctx, s.destination, text)
}

// SourceCount returns the number of configured source chats.
func (s *Service) SourceCount() int {
	return len(s.sources)
}
