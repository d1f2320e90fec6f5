package diamond

import (
	"testing"
	"time"

	"diamond/pkg/number"

	"github.com/bmizerany/assert"
)

func TestMintAmount(t *testing.T) {
	cases := map[string]struct {
		payment string
		rate    string
		expect  string
	}{
		"whole":      {"100", "1", "100"},
		"discounted": {"100", "0.8", "125"},
		"truncated":  {"1", "3", "0.33333333"},
		"dust":       {"0.00000001", "1000", "0"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			amount := MintAmount(number.Decimal(c.payment), number.Decimal(c.rate))
			assert.Equal(t, c.expect, amount.String())
		})
	}
}

func TestMintAmountRejectsNonPositive(t *testing.T) {
	assert.Equal(t, "0", MintAmount(number.Decimal("0"), number.Decimal("1")).String())
	assert.Equal(t, "0", MintAmount(number.Decimal("-1"), number.Decimal("1")).String())
	assert.Equal(t, "0", MintAmount(number.Decimal("1"), number.Decimal("0")).String())
}

func TestSupplyAfterMint(t *testing.T) {
	total := number.Decimal("8000000")
	max := number.Decimal("100000000")

	next, ok := SupplyAfterMint(total, number.Decimal("1000"), max)
	assert.Equal(t, true, ok)
	assert.Equal(t, "8001000", next.String())

	_, ok = SupplyAfterMint(total, number.Decimal("92000000.00000001"), max)
	assert.Equal(t, false, ok)

	next, ok = SupplyAfterMint(total, number.Decimal("92000000"), max)
	assert.Equal(t, true, ok)
	assert.Equal(t, "100000000", next.String())
}

func TestPlausiblePrice(t *testing.T) {
	ref := number.Decimal("1")
	tolerance := number.Decimal("0.1")

	assert.Equal(t, true, PlausiblePrice(ref, number.Decimal("1.05"), tolerance))
	assert.Equal(t, true, PlausiblePrice(ref, number.Decimal("0.9"), tolerance))
	assert.Equal(t, false, PlausiblePrice(ref, number.Decimal("1.2"), tolerance))
	assert.Equal(t, false, PlausiblePrice(ref, number.Decimal("0"), tolerance))
}

func TestPriceExpired(t *testing.T) {
	now := time.Now()

	assert.Equal(t, false, PriceExpired(now.Add(-30*time.Second), now))
	assert.Equal(t, true, PriceExpired(now.Add(-61*time.Second), now))
	assert.Equal(t, true, PriceExpired(now.Add(2*time.Minute), now))
}

func TestCanUnpause(t *testing.T) {
	now := time.Now()

	assert.Equal(t, false, CanUnpause(now.Add(-10*time.Minute), now))
	assert.Equal(t, true, CanUnpause(now.Add(-15*time.Minute), now))
}
