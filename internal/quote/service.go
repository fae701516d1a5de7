package quote

import (
	"context"
	"encoding/json"

	"backend-myhike/internal/db"
)

type Service struct {
	db   db.Querier
	feed *Feed
}

func NewService(db db.Querier, feed *Feed) *Service {
	return &Service{db: db, feed: feed}
}

func (s *Service) Get(ctx context.Context, day string) (Quote, error) {
	row := s.db.QueryRow(ctx, `
		SELECT day, quote, updated_at FROM quotes WHERE day=$1
	`, day)
	var q Quote
	if err := row.Scan(&q.Day, &q.Quote, &q.UpdatedAt); err != nil {
		return Quote{}, err
	}
	return q, nil
}

// Set upserts the day's quote and emits a snapshot to every subscriber.
func (s *Service) Set(ctx context.Context, day, text string) (Quote, error) {
	q := Quote{Day: day, Quote: text}
	row := s.db.QueryRow(ctx, `
		INSERT INTO quotes (day, quote)
		VALUES ($1,$2)
		ON CONFLICT (day) DO UPDATE SET quote=EXCLUDED.quote, updated_at=now()
		RETURNING updated_at
	`, day, text)
	if err := row.Scan(&q.UpdatedAt); err != nil {
		return Quote{}, err
	}

	if s.feed != nil {
		payload, _ := json.Marshal(q)
		s.feed.Broadcast(day, payload)
	}
	return q, nil
}
