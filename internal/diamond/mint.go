package diamond

import (
	"time"

	"diamond/pkg/number"

	"github.com/shopspring/decimal"
)

const (
	// TokenDecimals mint amounts are truncated to this precision
	TokenDecimals = 8

	// MaxPriceAge oracle prices older than this are rejected
	MaxPriceAge = 60 * time.Second

	// PauseCooldown minimum interval between a pause and the following unpause
	PauseCooldown = 15 * time.Minute

	// MaxBlacklistSize bounded blacklist capacity
	MaxBlacklistSize = 100
)

// DefaultPriceDeviation max relative deviation between the fixed rate and
// the oracle observation before a price is treated as implausible
var DefaultPriceDeviation = decimal.New(1, -1) // 10%

// MintAmount token amount minted for a payment at the given rate.
// The result is truncated, the dust stays with the vault.
func MintAmount(payment, rate decimal.Decimal) decimal.Decimal {
	if !payment.IsPositive() || !rate.IsPositive() {
		return decimal.Zero
	}

	return number.Floor(payment.Div(rate), TokenDecimals)
}

// SupplyAfterMint total supply after minting amount, or false if it breaks the cap
func SupplyAfterMint(total, amount, max decimal.Decimal) (decimal.Decimal, bool) {
	next := total.Add(amount)
	if next.GreaterThan(max) {
		return total, false
	}

	return next, true
}

// PlausiblePrice check the observed price against the reference rate
func PlausiblePrice(reference, observed, tolerance decimal.Decimal) bool {
	if !observed.IsPositive() || !reference.IsPositive() {
		return false
	}

	deviation := observed.Sub(reference).Abs().Div(reference)
	return deviation.LessThanOrEqual(tolerance)
}

// PriceExpired check the price timestamp against now
func PriceExpired(timestamp, now time.Time) bool {
	return now.Sub(timestamp) > MaxPriceAge || timestamp.After(now.Add(MaxPriceAge))
}

// CanUnpause check the pause cooldown
func CanUnpause(pausedAt, now time.Time) bool {
	return now.Sub(pausedAt) >= PauseCooldown
}
