package rider

import "strings"

func isValidRiderID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
