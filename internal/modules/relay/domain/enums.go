//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// DropReason represents why a message was not relayed
// ENUM(not_a_source_chat,duplicate,no_tag_match)
type DropReason string
