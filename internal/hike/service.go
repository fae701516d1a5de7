package hike

import (
	"context"

	"backend-myhike/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// CreateHike inserts a trail record. last_updated is assigned by the
// database at insert time, not by the caller.
func (s *Service) CreateHike(ctx context.Context, input Hike) (Hike, error) {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO hikes (id, code, name, city, level, details, length, hike_time, lat, lng)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING last_updated
	`, input.ID, input.Code, input.Name, input.City, input.Level, input.Details, input.Length, input.HikeTime, input.Lat, input.Lng)
	if err := row.Scan(&input.LastUpdated); err != nil {
		return Hike{}, err
	}
	return input, nil
}

func (s *Service) GetHike(ctx context.Context, id string) (Hike, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, code, name, city, level, details, length, hike_time, lat, lng, last_updated
		FROM hikes WHERE id=$1
	`, id)
	var h Hike
	if err := row.Scan(&h.ID, &h.Code, &h.Name, &h.City, &h.Level, &h.Details, &h.Length, &h.HikeTime, &h.Lat, &h.Lng, &h.LastUpdated); err != nil {
		return Hike{}, err
	}
	return h, nil
}

// ListHikes returns the full collection. Iteration order is whatever the
// database returns.
func (s *Service) ListHikes(ctx context.Context) ([]Hike, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, code, name, city, level, details, length, hike_time, lat, lng, last_updated
		FROM hikes
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hikes []Hike
	for rows.Next() {
		var h Hike
		if err := rows.Scan(&h.ID, &h.Code, &h.Name, &h.City, &h.Level, &h.Details, &h.Length, &h.HikeTime, &h.Lat, &h.Lng, &h.LastUpdated); err != nil {
			return nil, err
		}
		hikes = append(hikes, h)
	}
	return hikes, nil
}

func (s *Service) CountHikes(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM hikes`).Scan(&count)
	return count, err
}
