package hike

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// sampleHikes are the fixed records inserted into an empty collection.
var sampleHikes = []Hike{
	{
		Code:     "BBY01",
		Name:     "Burnaby Lake Park Trail",
		City:     "Burnaby",
		Level:    "easy",
		Details:  "A lovely place for a lunch walk.",
		Length:   10,
		HikeTime: 60,
		Lat:      49.2467,
		Lng:      -122.9187,
	},
	{
		Code:     "AM01",
		Name:     "Buntzen Lake Trail",
		City:     "Anmore",
		Level:    "moderate",
		Details:  "Close to town, and relaxing.",
		Length:   10.5,
		HikeTime: 80,
		Lat:      49.3399,
		Lng:      -122.859,
	},
	{
		Code:     "NV01",
		Name:     "Mount Seymour Trail",
		City:     "North Vancouver",
		Level:    "hard",
		Details:  "Amazing ski slope views.",
		Length:   8.2,
		HikeTime: 120,
		Lat:      49.3884,
		Lng:      -122.9409,
	},
}

// Seed populates the hikes table with the sample records when it is empty.
// The code column carries a unique constraint and the insert is
// ON CONFLICT DO NOTHING, so two instances racing on an empty table cannot
// produce duplicates. Returns the number of records inserted.
func (s *Service) Seed(ctx context.Context) (int, error) {
	count, err := s.CountHikes(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Printf("hikes already exist, skipping seed")
		return 0, nil
	}

	log.Printf("hikes collection is empty, seeding sample data")
	inserted := 0
	for _, sample := range sampleHikes {
		tag, err := s.db.Exec(ctx, `
			INSERT INTO hikes (id, code, name, city, level, details, length, hike_time, lat, lng)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (code) DO NOTHING
		`, uuid.NewString(), sample.Code, sample.Name, sample.City, sample.Level, sample.Details, sample.Length, sample.HikeTime, sample.Lat, sample.Lng)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
