package handler

import (
	"net/http"

	"tokenledger/internal/core"
	"tokenledger/internal/ledger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenService . TokenService
type TokenService interface {
	Mint(msg core.MintMessage) (core.TransactionRecord, error)
	Transfer(msg core.TransferMessage) (core.TransactionRecord, error)
	Burn(msg core.BurnMessage) (core.TransactionRecord, error)
	Balance(input string) (core.BalanceRecord, error)
	Holders(search string) []ledger.Holder
	History(limit int) []core.TransactionRecord
	Info() core.InfoRecord
	Reset() error
	LookupTransactions(rlphex string) ([]core.TransactionRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
