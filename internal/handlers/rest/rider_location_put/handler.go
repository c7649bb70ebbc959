package rider_location_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"motoflash/internal/dto"
	"motoflash/internal/entities"
	"motoflash/internal/service/rider"
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
	var locationDTO dto.RiderLocationUpdate
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	locationEntity := entities.RiderLocation{
		RiderID:    locationDTO.RiderID,
		Latitude:   locationDTO.Latitude,
		Longitude:  locationDTO.Longitude,
		IsOnline:   locationDTO.IsOnline,
		ReportedAt: time.Now().UTC(),
	}

	riderEntity, err := h.service.UpdateLocation(r.Context(), locationEntity)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidCoordinate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Rider{
		ID:            riderEntity.ID,
		Name:          riderEntity.Name,
		IsOnline:      riderEntity.IsOnline,
		Latitude:      riderEntity.CurrentLat,
		Longitude:     riderEntity.CurrentLng,
		LoyaltyPoints: riderEntity.LoyaltyPoints,
		AverageRating: riderEntity.AverageRating,
		VehicleType:   riderEntity.VehicleType.String(),
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
