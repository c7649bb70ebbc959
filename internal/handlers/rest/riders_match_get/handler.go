package riders_match_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"motoflash/internal/dto"
	"motoflash/internal/entities"
	"motoflash/internal/service/matching"
	"motoflash/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	criteria, ok := parseCriteria(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	candidates, err := h.service.FindMatchingRiders(r.Context(), criteria)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrInvalidCoordinate),
			errors.Is(err, matching.ErrInvalidRadius):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.MatchList{
		Riders: make([]dto.MatchCandidate, 0, len(candidates)),
		Count:  len(candidates),
	}
	for _, candidate := range candidates {
		response.Riders = append(response.Riders, dto.NewMatchCandidate(candidate))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseCriteria(r *http.Request) (entities.MatchingCriteria, bool) {
	query := r.URL.Query()

	latitude, err := strconv.ParseFloat(query.Get("latitude"), 64)
	if err != nil {
		return entities.MatchingCriteria{}, false
	}

	longitude, err := strconv.ParseFloat(query.Get("longitude"), 64)
	if err != nil {
		return entities.MatchingCriteria{}, false
	}

	criteria := entities.MatchingCriteria{
		Latitude:  latitude,
		Longitude: longitude,
	}

	if value := query.Get("radiusKm"); value != "" {
		radius, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return entities.MatchingCriteria{}, false
		}
		criteria.RadiusKm = radius
	}

	deliveryLat := query.Get("deliveryLatitude")
	deliveryLng := query.Get("deliveryLongitude")
	if deliveryLat != "" && deliveryLng != "" {
		destLat, err := strconv.ParseFloat(deliveryLat, 64)
		if err != nil {
			return entities.MatchingCriteria{}, false
		}
		destLng, err := strconv.ParseFloat(deliveryLng, 64)
		if err != nil {
			return entities.MatchingCriteria{}, false
		}
		criteria.TripGeometry = &entities.TripGeometry{
			StoreLat:    latitude,
			StoreLng:    longitude,
			DeliveryLat: destLat,
			DeliveryLng: destLng,
		}
	}

	return criteria, true
}
