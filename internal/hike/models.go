package hike

import "time"

type Hike struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Level       string    `json:"level"`
	Details     string    `json:"details"`
	Length      float64   `json:"length"`
	HikeTime    int       `json:"hike_time"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	LastUpdated time.Time `json:"last_updated"`
}
