package dashboard

import (
	"fmt"

	"backend-myhike/internal/hike"
	"backend-myhike/internal/profile"
)

// Card is the renderable value for one trail. The client template fills its
// fields verbatim; nothing here touches the page.
type Card struct {
	HikeID       string  `json:"hike_id"`
	Title        string  `json:"title"`
	Body         string  `json:"body"`
	Length       float64 `json:"length"`
	ImageURL     string  `json:"image_url"`
	ReadMoreURL  string  `json:"read_more_url"`
	BookmarkIcon string  `json:"bookmark_icon"`
}

// View is the assembled dashboard: the greeting plus one card per trail, in
// collection iteration order.
type View struct {
	Greeting string `json:"greeting"`
	Cards    []Card `json:"cards"`
}

// NewCard maps a trail record and its bookmark state to a card.
func NewCard(h hike.Hike, bookmarked bool) Card {
	body := h.Details
	if body == "" {
		body = fmt.Sprintf("Located in %s.", h.City)
	}
	return Card{
		HikeID:       h.ID,
		Title:        h.Name,
		Body:         body,
		Length:       h.Length,
		ImageURL:     "./images/" + h.Code + ".jpg",
		ReadMoreURL:  "eachHike.html?docID=" + h.ID,
		BookmarkIcon: profile.BookmarkIcon(bookmarked),
	}
}
