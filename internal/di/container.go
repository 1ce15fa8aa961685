package di

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/samber/do/v2"
	"github.com/samber/oops"

	dedupRepo "github.com/reshetovitsme/tag-relay-bot/internal/modules/dedup/repository"
	dedupService "github.com/reshetovitsme/tag-relay-bot/internal/modules/dedup/service"
	feedRepo "github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/repository"
	feedService "github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/service"
	relayService "github.com/reshetovitsme/tag-relay-bot/internal/modules/relay/service"
	tagService "github.com/reshetovitsme/tag-relay-bot/internal/modules/tag/service"
	"github.com/reshetovitsme/tag-relay-bot/internal/shared/config"
	telegramHandler "github.com/reshetovitsme/tag-relay-bot/internal/transport/telegram"
	httpServer "github.com/reshetovitsme/tag-relay-bot/internal/transport/http"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Dedup Store
	do.Provide(injector, func(i do.Injector) (dedupRepo.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return dedupRepo.NewMemory(cfg.ProcessedTTL, cfg.ProcessedMaxSize), nil
	})

	// Register Dedup Service
	do.Provide(injector, func(i do.Injector) (*dedupService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		store := do.MustInvoke[dedupRepo.Store](i)
		return dedupService.New(store, cfg.SweepInterval), nil
	})

	// Register Tag Matcher
	do.Provide(injector, func(i do.Injector) (*tagService.Matcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return tagService.New(cfg.Tags), nil
	})

	// Register Feed Repository
	do.Provide(injector, func(i do.Injector) (feedRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return feedRepo.NewMemory(cfg.FeedSize), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		repo := do.MustInvoke[feedRepo.Repository](i)
		return feedService.New(repo), nil
	})

	// Register Relay Service
	do.Provide(injector, func(i do.Injector) (*relayService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		matcher := do.MustInvoke[*tagService.Matcher](i)
		dedup := do.MustInvoke[*dedupService.Service](i)
		feed := do.MustInvoke[feedRepo.Repository](i)
		return relayService.New(cfg, matcher, dedup, feed), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		relay := do.MustInvoke[*relayService.Service](i)
		return telegramHandler.New(relay), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		feed := do.MustInvoke[*feedService.Service](i)
		dedup := do.MustInvoke[*dedupService.Service](i)
		relay := do.MustInvoke[*relayService.Service](i)
		server := httpServer.New(cfg, feed, dedup, relay)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot (needs to be initialized after handlers are ready)
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := do.MustInvoke[*telegramHandler.Handler](i)

		opts := []bot.Option{
			bot.WithDefaultHandler(handler.HandleUpdate),
		}
		if cfg.TelegramAPIURL != "" {
			opts = append(opts, bot.WithServerURL(cfg.TelegramAPIURL))
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		// Outbound sends go through the bot client as well
		relay := do.MustInvoke[*relayService.Service](i)
		relay.SetDispatcher(telegramHandler.NewDispatcher(b))

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	// Shutdown bot if it exists
	if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
		b.Close(ctx)
	}

	// Stop the dedup sweep loop if it exists
	if dedup, err := do.Invoke[*dedupService.Service](injector); err == nil && dedup != nil {
		dedup.Stop()
	}

	return nil
}
