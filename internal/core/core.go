package core

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tokenledger/internal/display"
	"tokenledger/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"go.uber.org/zap"
)

// TokenService is the entry point of the presentation layer. It turns display names
// into addresses, forwards the calls to the current ledger and decorates the results.
type TokenService struct {
	logs      *zap.SugaredLogger
	newLedger LedgerFactory

	mu     sync.RWMutex
	ledger Ledger
}

// NewTokenService is a constructor function for the TokenService type.
func NewTokenService(logger *zap.SugaredLogger, factory LedgerFactory) (*TokenService, error) {
	l, err := factory()
	if err != nil {
		return nil, fmt.Errorf("create ledger: %w", err)
	}

	return &TokenService{
		logs:      logger,
		newLedger: factory,
		ledger:    l,
	}, nil
}

// Mint credits new tokens to the recipient, a name or an address.
func (s *TokenService) Mint(msg MintMessage) (TransactionRecord, error) {
	to, err := ResolveAddress(msg.To)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("resolve recipient: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, err := s.ledger.Mint(to, msg.Amount)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("mint: %w", err)
	}

	s.logs.Infow("tokens minted", "to", to, "amount", msg.Amount, "hash", tx.Hash.Hex())
	return s.toRecord(tx), nil
}

// Transfer moves tokens between two parties, each given as a name or an address.
func (s *TokenService) Transfer(msg TransferMessage) (TransactionRecord, error) {
	from, err := ResolveAddress(msg.From)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("resolve sender: %w", err)
	}
	to, err := ResolveAddress(msg.To)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("resolve recipient: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, err := s.ledger.Transfer(from, to, msg.Amount)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("transfer: %w", err)
	}

	s.logs.Infow("tokens transferred", "from", from, "to", to, "amount", msg.Amount, "hash", tx.Hash.Hex())
	return s.toRecord(tx), nil
}

// Burn destroys tokens held by the given party.
func (s *TokenService) Burn(msg BurnMessage) (TransactionRecord, error) {
	from, err := ResolveAddress(msg.From)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("resolve holder: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, err := s.ledger.Burn(from, msg.Amount)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("burn: %w", err)
	}

	s.logs.Infow("tokens burned", "from", from, "amount", msg.Amount, "hash", tx.Hash.Hex())
	return s.toRecord(tx), nil
}

// Balance reports the balance of a party and its share of the supply with four decimals.
func (s *TokenService) Balance(input string) (BalanceRecord, error) {
	address, err := ResolveAddress(input)
	if err != nil {
		return BalanceRecord{}, fmt.Errorf("resolve address: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	balance, err := s.ledger.BalanceOf(address)
	if err != nil {
		return BalanceRecord{}, fmt.Errorf("balance of: %w", err)
	}
	info := s.ledger.TokenInfo()

	return BalanceRecord{
		Address:    common.HexToAddress(address).Hex(),
		Balance:    balance,
		Display:    fmt.Sprintf("%s %s", display.FormatNumber(balance), info.Symbol),
		Exact:      display.FormatAmount(balance, info.Symbol),
		Percentage: ledger.Percentage(balance, info.TotalSupply, 4),
	}, nil
}

// Holders returns the ranked holders, narrowed to addresses containing search when it is not blank.
func (s *TokenService) Holders(search string) []ledger.Holder {
	search = strings.TrimSpace(search)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if search == "" {
		return s.ledger.AllHolders()
	}
	return s.ledger.SearchHolder(search)
}

func (s *TokenService) History(limit int) []TransactionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.toRecords(s.ledger.TransactionHistory(limit))
}

func (s *TokenService) Info() InfoRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := s.ledger.TokenInfo()
	return InfoRecord{
		TokenInfo:                info,
		TotalSupplyDisplay:       display.FormatNumber(info.TotalSupply),
		CirculatingSupplyDisplay: display.FormatNumber(info.CirculatingSupply),
	}
}

// Reset discards the current ledger and starts over with a fresh one.
func (s *TokenService) Reset() error {
	l, err := s.newLedger()
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}

	s.mu.Lock()
	s.ledger = l
	s.mu.Unlock()

	s.logs.Infow("ledger reset", "symbol", l.Symbol())
	return nil
}

// LookupTransactions returns the transactions named by a hex encoded RLP list of hashes,
// in request order. Unknown hashes are skipped.
func (s *TokenService) LookupTransactions(rlphex string) ([]TransactionRecord, error) {
	hashes, err := ParseRLP(rlphex)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]ledger.Transaction, 0, len(hashes))
	var missing []string
	for _, hash := range hashes {
		tx, err := s.ledger.TransactionByHash(hash)
		if err != nil {
			if errors.Is(err, ledger.ErrTransactionNotFound) {
				missing = append(missing, hash.Hex())
				continue
			}
			return nil, fmt.Errorf("get transaction by hash: %w", err)
		}
		txs = append(txs, tx)
	}

	if len(missing) > 0 {
		s.logs.Infow("transactions not found", "hashes", missing)
	}
	return s.toRecords(txs), nil
}

// ParseRLP decodes a hex encoded RLP list of 32 byte transaction hashes.
func ParseRLP(rlphex string) ([]common.Hash, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(rlphex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex string: %w", ledger.ErrInvalidHash, err)
	}

	var hashBytes [][]byte
	if err := rlp.DecodeBytes(data, &hashBytes); err != nil {
		return nil, fmt.Errorf("%w: decode rlp bytes: %w", ledger.ErrInvalidHash, err)
	}

	hashes := make([]common.Hash, len(hashBytes))
	for i, b := range hashBytes {
		if len(b) != common.HashLength {
			return nil, fmt.Errorf("%w: item %d has %d bytes", ledger.ErrInvalidHash, i, len(b))
		}
		hashes[i] = common.BytesToHash(b)
	}
	return hashes, nil
}

func (s *TokenService) toRecord(tx ledger.Transaction) TransactionRecord {
	return TransactionRecord{
		Transaction: tx,
		Description: display.Describe(tx, s.ledger.Symbol()),
		Time:        display.FormatTime(tx.Timestamp),
	}
}

func (s *TokenService) toRecords(txs []ledger.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(txs))
	for i, tx := range txs {
		records[i] = s.toRecord(tx)
	}
	return records
}
