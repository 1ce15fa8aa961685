package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/reshetovitsme/tag-relay-bot/internal/shared/errors"
)

type Config struct {
	TelegramBotToken string        `koanf:"telegram_bot_token"`
	TelegramAPIURL   string        `koanf:"telegram_api_url"`
	SourceChats      []string      `koanf:"source_chats"`
	DestinationChat  string        `koanf:"destination_chat"`
	Tags             []string      `koanf:"tags"`
	ProcessedTTL     time.Duration `koanf:"processed_ttl"`
	ProcessedMaxSize int           `koanf:"processed_max_size"`
	SweepInterval    time.Duration `koanf:"sweep_interval"`
	FeedSize         int           `koanf:"feed_size"`
	HTTPPort         string        `koanf:"http_port"`
	AppEnv           AppEnv        `koanf:"app_env"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = koanfjson.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("telegram_api_url") {
		k.Set("telegram_api_url", "https://api.telegram.org")
	}
	if !k.Exists("processed_ttl") {
		k.Set("processed_ttl", "24h")
	}
	if !k.Exists("processed_max_size") {
		k.Set("processed_max_size", 5000)
	}
	if !k.Exists("sweep_interval") {
		k.Set("sweep_interval", "5m")
	}
	if !k.Exists("feed_size") {
		k.Set("feed_size", 50)
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	cfg := Config{
		TelegramBotToken: k.String("telegram_bot_token"),
		TelegramAPIURL:   k.String("telegram_api_url"),
		ProcessedTTL:     k.Duration("processed_ttl"),
		ProcessedMaxSize: k.Int("processed_max_size"),
		SweepInterval:    k.Duration("sweep_interval"),
		FeedSize:         k.Int("feed_size"),
		HTTPPort:         k.String("http_port"),
	}

	// Chat ids may arrive as a JSON array (of strings or numbers), a
	// native list from a config file, or a comma-separated string.
	cfg.SourceChats = coerceChatIDs(k.Get("source_chats"))
	cfg.DestinationChat = coerceChatID(k.Get("destination_chat"))

	// A malformed tag specification falls back to an empty set, so the
	// bot relays nothing instead of crashing or relaying everything.
	cfg.Tags = NormalizeTags(parseTagSpec(k.Get("tags")))

	// Parse AppEnv from string if needed
	if appEnvStr := k.String("app_env"); appEnvStr != "" {
		if env, err := ParseAppEnv(appEnvStr); err == nil {
			cfg.AppEnv = env
		} else {
			cfg.AppEnv = AppEnvProduction
		}
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	// Validate required fields
	if cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}
	if cfg.DestinationChat == "" {
		return nil, errors.ErrMissingDestinationChat
	}

	return &cfg, nil
}

// NormalizeTags lowercases tags, strips a leading '#' and drops blanks.
func NormalizeTags(tags []string) []string {
	return lo.FilterMap(tags, func(tag string, _ int) (string, bool) {
		tag = strings.TrimSpace(tag)
		tag = strings.TrimPrefix(tag, "#")
		tag = strings.ToLower(tag)
		return tag, tag != ""
	})
}

// parseTagSpec accepts either a JSON array of tag strings or a single
// tag string. Invalid JSON yields no tags at all (fail closed).
func parseTagSpec(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var tags []string
			if err := json.Unmarshal([]byte(trimmed), &tags); err != nil {
				slog.Warn("Invalid tag specification, no tags configured", "error", err)
				return nil
			}
			return tags
		}
		return []string{trimmed}
	case []interface{}:
		return lo.FilterMap(v, func(item interface{}, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		})
	case []string:
		return v
	default:
		slog.Warn("Invalid tag specification, no tags configured", "type", fmt.Sprintf("%T", value))
		return nil
	}
}

// coerceChatIDs accepts a JSON array of strings or numbers, a native
// list, or a comma-separated string, and coerces every id to a string.
func coerceChatIDs(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return []string{}
		}
		if strings.HasPrefix(trimmed, "[") {
			var raw []interface{}
			if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
				slog.Warn("Invalid source chat specification", "error", err)
				return []string{}
			}
			return coerceChatIDs(raw)
		}
		parts := strings.Split(trimmed, ",")
		return lo.FilterMap(parts, func(part string, _ int) (string, bool) {
			part = strings.TrimSpace(part)
			return part, part != ""
		})
	case []interface{}:
		return lo.FilterMap(v, func(item interface{}, _ int) (string, bool) {
			id := coerceChatID(item)
			return id, id != ""
		})
	case []string:
		return v
	default:
		return []string{}
	}
}

// coerceChatID renders a single chat id value as a string.
func coerceChatID(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}
