package partner

import "time"

type PartnerDB struct {
	ID        string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	IsBlocked bool
	CreatedAt time.Time
}
