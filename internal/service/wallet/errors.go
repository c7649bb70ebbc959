package wallet

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrWalletNotFound for an existing rider is an integrity failure:
	// wallets are created together with the rider at registration.
	ErrWalletNotFound = errors.New("wallet not found")

	ErrInsufficientFunds = errors.New("insufficient funds")
)
