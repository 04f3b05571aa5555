package core

import (
	"tokenledger/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Symbol() string
	Mint(to string, amount int64) (ledger.Transaction, error)
	Transfer(from, to string, amount int64) (ledger.Transaction, error)
	Burn(from string, amount int64) (ledger.Transaction, error)
	BalanceOf(address string) (int64, error)
	AllHolders() []ledger.Holder
	SearchHolder(term string) []ledger.Holder
	TransactionHistory(limit int) []ledger.Transaction
	TransactionByHash(hash common.Hash) (ledger.Transaction, error)
	TokenInfo() ledger.TokenInfo
}

// LedgerFactory builds the ledger used at start up and after every reset.
type LedgerFactory func() (Ledger, error)
