package orders_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"motoflash/internal/dto"
	"motoflash/internal/entities"
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
	filter, ok := parseFilter(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders, total, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.OrderList{
		Orders: make([]dto.DeliveryOrder, 0, len(orders)),
		Total:  total,
	}
	for i := range orders {
		response.Orders = append(response.Orders, dto.NewDeliveryOrder(&orders[i]))
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

func parseFilter(r *http.Request) (entities.OrderFilter, bool) {
	var filter entities.OrderFilter

	query := r.URL.Query()

	if value := query.Get("status"); value != "" {
		status := entities.OrderStatusType(value)
		switch status {
		case entities.OrderPending, entities.OrderAccepted, entities.OrderInProgress,
			entities.OrderCompleted, entities.OrderCancelled:
			filter.Status = &status
		default:
			return entities.OrderFilter{}, false
		}
	}

	if value := query.Get("riderId"); value != "" {
		filter.RiderID = &value
	}

	if value := query.Get("storeId"); value != "" {
		filter.StoreID = &value
	}

	if value := query.Get("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return entities.OrderFilter{}, false
		}
		filter.Limit = &limit
	}

	if value := query.Get("offset"); value != "" {
		offset, err := strconv.Atoi(value)
		if err != nil || offset < 0 {
			return entities.OrderFilter{}, false
		}
		filter.Offset = &offset
	}

	return filter, true
}
