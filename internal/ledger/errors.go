package ledger

import "errors"

var (
	ErrInvalidAddress      error = errors.New("invalid address format")
	ErrInvalidAmount       error = errors.New("amount must be positive")
	ErrInsufficientBalance error = errors.New("insufficient balance")
	ErrSupplyOverflow      error = errors.New("total supply overflow")
	ErrInvalidHash         error = errors.New("invalid transaction hash")
	ErrTransactionNotFound error = errors.New("transaction not found")
)
