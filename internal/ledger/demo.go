package ledger

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const demoWindow = 7 * 24 * time.Hour

var demoHolders = []struct {
	address string
	balance int64
}{
	{"0x1234567890123456789012345678901234567890", 1_000_000},
	{"0xabcdefabcdefabcdefabcdefabcdefabcdefabcd", 500_000},
	{"0x9876543210987654321098765432109876543210", 250_000},
	{"0xfedcbafedcbafedcbafedcbafedcbafedcbafedc", 100_000},
	{"0x1111111111111111111111111111111111111111", 75_000},
}

// seedDemoHolders mints every demo holder at a random instant of the week before now
// and keeps the log in chronological order.
func (l *Ledger) seedDemoHolders(now time.Time) error {
	for _, h := range demoHolders {
		at := now.Add(-time.Duration(rand.Int64N(int64(demoWindow))))
		if _, err := l.mint(common.HexToAddress(h.address), h.balance, at); err != nil {
			return err
		}
	}

	slices.SortStableFunc(l.transactions, func(a, b *Transaction) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return nil
}
