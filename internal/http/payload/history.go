package payload

import (
	"fmt"
	"net/url"
	"strconv"

	"tokenledger/internal/ledger"

	"github.com/jellydator/validation"
)

const MaxHistoryLimit = 1000

type HistoryRequest struct {
	Limit int
}

// NewHistoryRequest reads the optional limit query parameter.
func NewHistoryRequest(values url.Values) (HistoryRequest, error) {
	raw := values.Get("limit")
	if raw == "" {
		return HistoryRequest{Limit: ledger.DefaultHistoryLimit}, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return HistoryRequest{}, fmt.Errorf("parse limit %q: %w", raw, err)
	}
	return HistoryRequest{Limit: limit}, nil
}

func (h HistoryRequest) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Limit, validation.Required, validation.Min(1), validation.Max(MaxHistoryLimit)),
	)
}
