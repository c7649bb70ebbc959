package wallet_get

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	riderID := mux.Vars(r)["riderId"]

	walletEntity, transactions, err := h.service.GetWallet(r.Context(), riderID)
	if err != nil {
		// a registered rider without a wallet is an integrity failure,
		// so ErrWalletNotFound maps to 500 as well
		if errors.Is(err, wallet.ErrWalletNotFound) {
			h.log.With(
				logger.NewField("rider_id", riderID),
			).Error("wallet missing for rider")
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.WalletDetails{
		Wallet:       dto.NewWallet(walletEntity),
		Transactions: make([]dto.WalletTransaction, 0, len(transactions)),
	}
	for _, transaction := range transactions {
		response.Transactions = append(response.Transactions, dto.NewWalletTransaction(transaction))
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
