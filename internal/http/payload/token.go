package payload

import (
	"tokenledger/internal/core"

	"github.com/jellydator/validation"
)

type MintRequest struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

func (m *MintRequest) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.To, validation.Required),
		validation.Field(&m.Amount, validation.Required, validation.Min(int64(1))),
	)
}

func (m MintRequest) ToMessage() core.MintMessage {
	return core.MintMessage{
		To:     m.To,
		Amount: m.Amount,
	}
}

type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

func (t *TransferRequest) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.From, validation.Required),
		validation.Field(&t.To, validation.Required),
		validation.Field(&t.Amount, validation.Required, validation.Min(int64(1))),
	)
}

func (t TransferRequest) ToMessage() core.TransferMessage {
	return core.TransferMessage{
		From:   t.From,
		To:     t.To,
		Amount: t.Amount,
	}
}

type BurnRequest struct {
	From   string `json:"from"`
	Amount int64  `json:"amount"`
}

func (b *BurnRequest) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.From, validation.Required),
		validation.Field(&b.Amount, validation.Required, validation.Min(int64(1))),
	)
}

func (b BurnRequest) ToMessage() core.BurnMessage {
	return core.BurnMessage{
		From:   b.From,
		Amount: b.Amount,
	}
}
