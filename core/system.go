package core

import (
	"crypto/ed25519"
	"fmt"

	"github.com/shopspring/decimal"
)

// System stores system information.
type System struct {
	Admins         []string
	ClientID       string
	Members        []*Member
	Threshold      uint8
	VoteAsset      string
	VoteAmount     decimal.Decimal
	PrivateKey     ed25519.PrivateKey
	SignKey        ed25519.PrivateKey
	PriceThreshold uint8
	PaymentAssets  PaymentAssetTable
	Location       string
	Genesis        int64
	Version        string
}

// MemberIDs member ids
func (s *System) MemberIDs() []string {
	ids := make([]string, len(s.Members))
	for idx, m := range s.Members {
		ids[idx] = m.ClientID
	}

	return ids
}

// IsMember check whether the user is a multisig member
func (s *System) IsMember(userID string) bool {
	for _, m := range s.Members {
		if m.ClientID == userID {
			return true
		}
	}

	return false
}

// IsAdmin is admin
func (s *System) IsAdmin(userID string) bool {
	if len(s.Admins) == 0 {
		return false
	}

	for _, a := range s.Admins {
		if a == userID {
			return true
		}
	}

	return false
}

// Validate reject a bad multisig configuration before anything runs
func (s *System) Validate() error {
	if len(s.Members) == 0 {
		return fmt.Errorf("system: no members: %w", ErrInvalidConfiguration)
	}

	if s.Threshold == 0 || int(s.Threshold) > len(s.Members) {
		return fmt.Errorf("system: threshold %d out of range [1, %d]: %w", s.Threshold, len(s.Members), ErrInvalidConfiguration)
	}

	seen := make(map[string]bool, len(s.Members))
	for _, m := range s.Members {
		if seen[m.ClientID] {
			return fmt.Errorf("system: duplicate member %s: %w", m.ClientID, ErrInvalidConfiguration)
		}
		seen[m.ClientID] = true
	}

	return nil
}
