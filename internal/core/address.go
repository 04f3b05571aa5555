package core

import (
	"fmt"
	"strings"

	"tokenledger/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// ResolveAddress accepts either a well formed address, returned as is, or a display
// name, which is mapped to its derived address.
func ResolveAddress(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty address", ledger.ErrInvalidAddress)
	}
	if ledger.IsValidAddress(input) {
		return input, nil
	}
	return DeriveAddress(input).Hex(), nil
}

// DeriveAddress maps a name to the last 20 bytes of its Keccak-256 digest.
// It is a stable identity for demo users, not a key derived address.
func DeriveAddress(name string) common.Address {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	return common.BytesToAddress(h.Sum(nil)[12:])
}
