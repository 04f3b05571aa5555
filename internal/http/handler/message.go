package handler

import (
	"errors"
	"net/http"

	"tokenledger/internal/ledger"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Data    any    `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

// errorResponse maps a service error to its status code. Details of unexpected
// errors stay in the logs.
func errorResponse(message string, err error) (Response, int) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}

	switch {
	case errors.Is(err, ledger.ErrInvalidAddress),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidHash):
		return resp, http.StatusBadRequest
	case errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrSupplyOverflow):
		return resp, http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return resp, http.StatusNotFound
	}

	resp.Error = "unexpected error occurred"
	return resp, http.StatusInternalServerError
}
