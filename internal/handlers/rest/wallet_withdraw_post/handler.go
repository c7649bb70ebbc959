package wallet_withdraw_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"motoflash/internal/dto"
	"motoflash/internal/service/wallet"
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
	riderID := mux.Vars(r)["riderId"]

	var withdrawDTO dto.Withdraw
	err := json.NewDecoder(r.Body).Decode(&withdrawDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	transaction, err := h.service.Withdraw(r.Context(), riderID, withdrawDTO.Amount)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount),
			errors.Is(err, wallet.ErrInsufficientFunds):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.NewWalletTransaction(*transaction)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
