//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// MediaType represents the type of media content
// ENUM(photo,document,video)
type MediaType string
