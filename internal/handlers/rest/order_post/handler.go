package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"motoflash/internal/dto"
	"motoflash/internal/entities"
	"motoflash/internal/service/order"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var priority *entities.OrderPriorityType
	if orderCreateDTO.Priority != nil {
		priorityType := entities.OrderPriorityType(*orderCreateDTO.Priority)
		priority = &priorityType
	}

	orderCreateEntity := entities.OrderCreate{
		StoreID:           orderCreateDTO.StoreID,
		StoreName:         orderCreateDTO.StoreName,
		StoreAddress:      orderCreateDTO.StoreAddress,
		StoreLatitude:     orderCreateDTO.StoreLatitude,
		StoreLongitude:    orderCreateDTO.StoreLongitude,
		DeliveryAddress:   orderCreateDTO.DeliveryAddress,
		DeliveryLatitude:  orderCreateDTO.DeliveryLatitude,
		DeliveryLongitude: orderCreateDTO.DeliveryLongitude,
		RecipientName:     orderCreateDTO.RecipientName,
		RecipientPhone:    orderCreateDTO.RecipientPhone,
		Notes:             orderCreateDTO.Notes,
		Value:             orderCreateDTO.Value,
		DeliveryFee:       orderCreateDTO.DeliveryFee,
		Priority:          priority,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrPartnerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrPartnerBlocked):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewDeliveryOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
