package entities

import "time"

type Partner struct {
	ID        string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	IsBlocked bool
	CreatedAt time.Time
}
