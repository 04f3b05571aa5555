// Package display renders ledger values for people: scaled numbers, shortened
// addresses and one line descriptions of transactions.
package display

import (
	"fmt"
	"strconv"
	"time"

	"tokenledger/internal/ledger"

	"github.com/Rhymond/go-money"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// FormatNumber scales n with a K or M suffix and two decimals once it reaches a thousand.
func FormatNumber(n int64) string {
	d := decimal.NewFromInt(n)
	switch {
	case d.GreaterThanOrEqual(million):
		return d.Div(million).StringFixed(2) + "M"
	case d.GreaterThanOrEqual(thousand):
		return d.Div(thousand).StringFixed(2) + "K"
	}
	return strconv.FormatInt(n, 10)
}

// FormatAmount writes every digit of n grouped by thousands, followed by the symbol.
func FormatAmount(n int64, symbol string) string {
	return money.NewFormatter(0, ".", ",", symbol, "1 $").Format(n)
}

// FormatAddress keeps the first six and last four characters of addr.
func FormatAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

func FormatTime(t time.Time) string {
	return t.Local().Format(time.RFC1123)
}

// Describe summarises tx for a transaction feed.
func Describe(tx ledger.Transaction, symbol string) string {
	amount := FormatNumber(tx.Amount)
	switch tx.Type {
	case ledger.TxMint:
		return fmt.Sprintf("Minted %s %s to %s", amount, symbol, shortAddress(tx.To))
	case ledger.TxTransfer:
		return fmt.Sprintf("Transferred %s %s from %s to %s", amount, symbol, shortAddress(tx.From), shortAddress(tx.To))
	case ledger.TxBurn:
		return fmt.Sprintf("Burned %s %s from %s", amount, symbol, shortAddress(tx.From))
	}
	return fmt.Sprintf("Unknown %s transaction of %s %s", tx.Type, amount, symbol)
}

func shortAddress(addr *common.Address) string {
	if addr == nil {
		return ""
	}
	return FormatAddress(addr.Hex())
}
