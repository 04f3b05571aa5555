package core

import "tokenledger/internal/ledger"

type MintMessage struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type TransferMessage struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type BurnMessage struct {
	From   string `json:"from"`
	Amount int64  `json:"amount"`
}

// TransactionRecord is a ledger transaction together with its feed line.
type TransactionRecord struct {
	ledger.Transaction
	Description string `json:"description"`
	Time        string `json:"time"`
}

type BalanceRecord struct {
	Address    string `json:"address"`
	Balance    int64  `json:"balance"`
	Display    string `json:"display"`
	Exact      string `json:"exact"`
	Percentage string `json:"percentage"`
}

type InfoRecord struct {
	ledger.TokenInfo
	TotalSupplyDisplay       string `json:"totalSupplyDisplay"`
	CirculatingSupplyDisplay string `json:"circulatingSupplyDisplay"`
}
