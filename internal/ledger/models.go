package ledger

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type TxType string

const (
	TxMint     TxType = "mint"
	TxTransfer TxType = "transfer"
	TxBurn     TxType = "burn"
)

// Transaction is an entry of the ledger log. From is nil for mints and To is nil for burns.
// Hash is a random identifier, it is not derived from the transaction content.
type Transaction struct {
	Type      TxType          `json:"type"`
	From      *common.Address `json:"from"`
	To        *common.Address `json:"to"`
	Amount    int64           `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
	Hash      common.Hash     `json:"hash"`
}

func (t Transaction) clone() Transaction {
	if t.From != nil {
		from := *t.From
		t.From = &from
	}
	if t.To != nil {
		to := *t.To
		t.To = &to
	}
	return t
}

// Holder is a ranked address with a strictly positive balance.
type Holder struct {
	Address    common.Address `json:"address"`
	Balance    int64          `json:"balance"`
	Percentage string         `json:"percentage"` // share of total supply, 2 decimals
	Rank       int            `json:"rank"`
}

type TokenInfo struct {
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	TotalSupply       int64  `json:"totalSupply"`
	TotalHolders      int    `json:"totalHolders"`
	CirculatingSupply int64  `json:"circulatingSupply"`
}
