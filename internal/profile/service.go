package profile

import (
	"context"
	"errors"

	"backend-myhike/internal/db"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Get reads the profile document and bookmark set. A missing profile row is
// not an error; it reads as an empty profile.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	p := Profile{UserID: userID}

	err := s.db.QueryRow(ctx, `
		SELECT name FROM profiles WHERE user_id=$1
	`, userID).Scan(&p.Name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT hike_id FROM bookmarks WHERE user_id=$1
	`, userID)
	if err != nil {
		return Profile{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var hikeID string
		if err := rows.Scan(&hikeID); err != nil {
			return Profile{}, err
		}
		p.Bookmarks = append(p.Bookmarks, hikeID)
	}
	return p, nil
}

// SetName upserts the profile document's name field.
func (s *Service) SetName(ctx context.Context, userID, name string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO profiles (user_id, name)
		VALUES ($1,$2)
		ON CONFLICT (user_id) DO UPDATE SET name=EXCLUDED.name, updated_at=now()
	`, userID, name)
	return err
}

// Toggle flips membership of hikeID in the user's bookmark set and returns
// the resulting membership. Each call works against fresh store state: the
// delete-then-insert pair decides on what the database holds now, and the
// (user_id, hike_id) primary key keeps the set free of duplicates under
// concurrent toggles.
func (s *Service) Toggle(ctx context.Context, userID, hikeID string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM bookmarks WHERE user_id=$1 AND hike_id=$2
	`, userID, hikeID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO bookmarks (user_id, hike_id)
		VALUES ($1,$2)
		ON CONFLICT DO NOTHING
	`, userID, hikeID)
	if err != nil {
		return false, err
	}
	return true, nil
}
