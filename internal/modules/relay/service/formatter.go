package service

import (
	"fmt"
	"strings"

	messageDomain "github.com/reshetovitsme/tag-relay-bot/internal/modules/message/domain"
)

// DisplayName renders the author: @username when available, otherwise
// the first name with the last name appended when present.
func DisplayName(sender messageDomain.Sender) string {
	if sender.Username != "" {
		return "@" + sender.Username
	}
	if sender.LastName != "" {
		return sender.FirstName + " " + sender.LastName
	}
	return sender.FirstName
}

// Permalink builds the t.me link to the original message. The "-100"
// supergroup marker is not part of the public chat id and is stripped.
func Permalink(chatID string, messageID int64) string {
	return fmt.Sprintf("https://t.me/c/%s/%d", strings.TrimPrefix(chatID, "-100"), messageID)
}

// Format builds the relayed copy of the message. The phrasing, the
// quoting and the two newlines before the link are a fixed contract.
// The quoted text keeps the matched tag.
func Format(msg *messageDomain.Message) string {
	return fmt.Sprintf("%s пишет: \"%s\"\n\n%s",
		DisplayName(msg.Sender), msg.Content(), Permalink(msg.ChatID, msg.MessageID))
}
