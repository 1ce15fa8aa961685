package errors

import "errors"

var (
	ErrMissingBotToken        = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingDestinationChat = errors.New("DESTINATION_CHAT environment variable is required")
	ErrDispatcherNotSet       = errors.New("dispatcher not initialized")
)
