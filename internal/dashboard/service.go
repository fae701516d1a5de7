package dashboard

import (
	"context"
	"log"

	"backend-myhike/internal/hike"
	"backend-myhike/internal/profile"
)

type Service struct {
	profiles *profile.Service
	hikes    *hike.Service
}

func NewService(profiles *profile.Service, hikes *hike.Service) *Service {
	return &Service{profiles: profiles, hikes: hikes}
}

// Build assembles the dashboard for a signed-in user: profile first, then the
// trail collection. A trail fetch failure is logged and yields the partial
// greeting-only view; the dashboard renders incomplete rather than failing.
func (s *Service) Build(ctx context.Context, userID, authName, authEmail string) (View, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return View{}, err
	}

	view := View{
		Greeting: profile.DisplayName(p.Name, authName, authEmail) + "!",
	}

	hikes, err := s.hikes.ListHikes(ctx)
	if err != nil {
		log.Printf("error getting hikes: %v", err)
		return view, nil
	}

	for _, h := range hikes {
		view.Cards = append(view.Cards, NewCard(h, p.Bookmarked(h.ID)))
	}
	return view, nil
}
