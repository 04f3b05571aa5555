package ledger

import (
	"bytes"
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AllHolders ranks every address with a positive balance, largest first.
// Equal balances are ordered by address so ranks are reproducible.
func (l *Ledger) AllHolders() []Holder {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.holders()
}

// SearchHolder keeps the holders whose address contains term, ignoring case.
// Ranks are those of the full list.
func (l *Ledger) SearchHolder(term string) []Holder {
	term = strings.ToLower(term)

	l.mu.RLock()
	defer l.mu.RUnlock()

	all := l.holders()
	matches := make([]Holder, 0, len(all))
	for _, h := range all {
		if strings.Contains(strings.ToLower(h.Address.Hex()), term) {
			matches = append(matches, h)
		}
	}
	return matches
}

func (l *Ledger) TotalHolders() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.totalHolders()
}

// Percentage renders balance as a share of total with the given number of decimals.
// A zero total yields zero.
func Percentage(balance, total int64, places int32) string {
	if total == 0 {
		return decimal.Zero.StringFixed(places)
	}
	return decimal.NewFromInt(balance).
		Mul(hundred).
		Div(decimal.NewFromInt(total)).
		StringFixed(places)
}

func (l *Ledger) holders() []Holder {
	holders := make([]Holder, 0, len(l.balances))
	for addr, balance := range l.balances {
		if balance > 0 {
			holders = append(holders, Holder{Address: addr, Balance: balance})
		}
	}

	slices.SortFunc(holders, func(a, b Holder) int {
		if c := cmp.Compare(b.Balance, a.Balance); c != 0 {
			return c
		}
		return bytes.Compare(a.Address.Bytes(), b.Address.Bytes())
	})

	for i := range holders {
		holders[i].Rank = i + 1
		holders[i].Percentage = Percentage(holders[i].Balance, l.totalSupply, 2)
	}
	return holders
}

func (l *Ledger) totalHolders() int {
	count := 0
	for _, balance := range l.balances {
		if balance > 0 {
			count++
		}
	}
	return count
}
