package quote

import (
	"strings"
	"time"
)

// Quote is the quote-of-the-day document, keyed by lowercase weekday name.
// The quote field is rich text and rendered as-is by the client.
type Quote struct {
	Day       string    `json:"day"`
	Quote     string    `json:"quote"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Today returns the key for the current weekday.
func Today() string {
	return strings.ToLower(time.Now().Weekday().String())
}
