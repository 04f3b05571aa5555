package ledger

import (
	"crypto/rand"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const DefaultHistoryLimit = 50

// DefaultOwner receives the initial supply unless WithOwner says otherwise.
var DefaultOwner = common.HexToAddress("0x1234567890123456789012345678901234567890")

var TimeNow = time.Now

// Ledger holds the balances, the total supply and the transaction log of a single token.
// All methods are safe for concurrent use; every mutation runs as one critical section.
type Ledger struct {
	mu sync.RWMutex

	name        string
	symbol      string
	owner       common.Address
	seedDemo    bool
	totalSupply int64
	balances    map[common.Address]int64

	// oldest first, readers reverse it
	transactions []*Transaction
	byHash       map[common.Hash]*Transaction
}

type Option func(*Ledger)

// WithOwner sets the address credited with the initial supply.
func WithOwner(owner common.Address) Option {
	return func(l *Ledger) {
		l.owner = owner
	}
}

// WithDemoHolders pre-mints a fixed set of demo holders at construction.
func WithDemoHolders() Option {
	return func(l *Ledger) {
		l.seedDemo = true
	}
}

// New is a constructor function for the Ledger type. A positive initialSupply is minted to the owner.
func New(name, symbol string, initialSupply int64, opts ...Option) (*Ledger, error) {
	if initialSupply < 0 {
		return nil, fmt.Errorf("%w: initial supply %d", ErrInvalidAmount, initialSupply)
	}

	l := &Ledger{
		name:     name,
		symbol:   symbol,
		owner:    DefaultOwner,
		balances: make(map[common.Address]int64),
		byHash:   make(map[common.Hash]*Transaction),
	}
	for _, opt := range opts {
		opt(l)
	}

	now := TimeNow()
	if l.seedDemo {
		if err := l.seedDemoHolders(now); err != nil {
			return nil, fmt.Errorf("seed demo holders: %w", err)
		}
	}
	if initialSupply > 0 {
		if _, err := l.mint(l.owner, initialSupply, now); err != nil {
			return nil, fmt.Errorf("mint initial supply: %w", err)
		}
	}

	return l, nil
}

func (l *Ledger) Name() string {
	return l.name
}

func (l *Ledger) Symbol() string {
	return l.symbol
}

func (l *Ledger) TotalSupply() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.totalSupply
}

// CirculatingSupply equals the total supply, nothing is ever locked.
func (l *Ledger) CirculatingSupply() int64 {
	return l.TotalSupply()
}

// Mint credits amount new tokens to the given address.
func (l *Ledger) Mint(to string, amount int64) (Transaction, error) {
	toAddr, err := ParseAddress(to)
	if err != nil {
		return Transaction{}, err
	}
	if err := checkAmount(amount); err != nil {
		return Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.mint(toAddr, amount, TimeNow())
}

// Transfer moves amount tokens from one address to another. A transfer to self is
// recorded but leaves the balance unchanged.
func (l *Ledger) Transfer(from, to string, amount int64) (Transaction, error) {
	fromAddr, err := ParseAddress(from)
	if err != nil {
		return Transaction{}, err
	}
	toAddr, err := ParseAddress(to)
	if err != nil {
		return Transaction{}, err
	}
	if err := checkAmount(amount); err != nil {
		return Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkFunds(fromAddr, amount); err != nil {
		return Transaction{}, err
	}

	l.balances[fromAddr] -= amount
	l.balances[toAddr] += amount

	return l.record(TxTransfer, &fromAddr, &toAddr, amount, TimeNow()), nil
}

// Burn destroys amount tokens held by the given address.
func (l *Ledger) Burn(from string, amount int64) (Transaction, error) {
	fromAddr, err := ParseAddress(from)
	if err != nil {
		return Transaction{}, err
	}
	if err := checkAmount(amount); err != nil {
		return Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkFunds(fromAddr, amount); err != nil {
		return Transaction{}, err
	}

	l.balances[fromAddr] -= amount
	l.totalSupply -= amount

	return l.record(TxBurn, &fromAddr, nil, amount, TimeNow()), nil
}

// BalanceOf returns the balance of address, zero when it was never seen.
func (l *Ledger) BalanceOf(address string) (int64, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return 0, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balances[addr], nil
}

// TransactionHistory returns up to limit transactions, newest first.
// A non-positive limit selects DefaultHistoryLimit.
func (l *Ledger) TransactionHistory(limit int) []Transaction {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.transactions)
	if limit > n {
		limit = n
	}

	history := make([]Transaction, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		history = append(history, l.transactions[i].clone())
	}
	return history
}

// Transaction looks up a transaction by its 0x-prefixed hash.
func (l *Ledger) Transaction(hash string) (Transaction, error) {
	h, err := ParseHash(hash)
	if err != nil {
		return Transaction{}, err
	}
	return l.TransactionByHash(h)
}

func (l *Ledger) TransactionByHash(hash common.Hash) (Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tx, ok := l.byHash[hash]
	if !ok {
		return Transaction{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, hash.Hex())
	}
	return tx.clone(), nil
}

func (l *Ledger) TokenInfo() TokenInfo {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return TokenInfo{
		Name:              l.name,
		Symbol:            l.symbol,
		TotalSupply:       l.totalSupply,
		TotalHolders:      l.totalHolders(),
		CirculatingSupply: l.totalSupply,
	}
}

func (l *Ledger) mint(to common.Address, amount int64, at time.Time) (Transaction, error) {
	if l.totalSupply > math.MaxInt64-amount {
		return Transaction{}, fmt.Errorf("%w: minting %d on top of %d", ErrSupplyOverflow, amount, l.totalSupply)
	}

	l.balances[to] += amount
	l.totalSupply += amount

	return l.record(TxMint, nil, &to, amount, at), nil
}

func (l *Ledger) checkFunds(from common.Address, amount int64) error {
	if balance := l.balances[from]; balance < amount {
		return fmt.Errorf("%w: %s holds %d, needs %d", ErrInsufficientBalance, from.Hex(), balance, amount)
	}
	return nil
}

func (l *Ledger) record(typ TxType, from, to *common.Address, amount int64, at time.Time) Transaction {
	tx := &Transaction{
		Type:      typ,
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: at,
		Hash:      l.newTxHash(),
	}
	l.transactions = append(l.transactions, tx)
	l.byHash[tx.Hash] = tx

	return tx.clone()
}

func (l *Ledger) newTxHash() common.Hash {
	for {
		var h common.Hash
		if _, err := rand.Read(h[:]); err != nil {
			// crypto/rand never fails on supported platforms
			panic(fmt.Sprintf("read random hash: %v", err))
		}
		if _, taken := l.byHash[h]; !taken {
			return h
		}
	}
}

func checkAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	return nil
}
