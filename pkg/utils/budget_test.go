package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		duration  int
		amount    int
		daily     int
		level     string
		estimated bool
	}{
		{"euro mid-range boundary", "€300", 3, 300, 100, BudgetLevelMidRange, false},
		{"euro budget", "€120", 3, 120, 40, BudgetLevelBudget, false},
		{"euro luxury", "€900", 3, 900, 300, BudgetLevelLuxury, false},
		{"dollar with separator", "$1,200", 4, 1200, 300, BudgetLevelLuxury, false},
		{"plain digits default euro", "450", 3, 450, 150, BudgetLevelLuxury, false},
		{"code instead of symbol", "300 EUR", 3, 300, 100, BudgetLevelMidRange, false},
		{"empty falls back to default", "", 5, DefaultBudgetAmount, 200, BudgetLevelLuxury, true},
		{"no digits falls back to default", "cheap please", 10, DefaultBudgetAmount, 100, BudgetLevelMidRange, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseBudget(tt.raw, tt.duration)
			assert.Equal(t, tt.amount, info.Amount)
			assert.Equal(t, tt.daily, info.Daily)
			assert.Equal(t, tt.level, info.Level)
			assert.Equal(t, tt.estimated, info.Estimated)
		})
	}
}

func TestParseBudgetCurrencyNormalization(t *testing.T) {
	// 80 GBP/day is worth more than 80 EUR/day and must tip into luxury.
	gbp := ParseBudget("£240", 3)
	assert.Equal(t, "GBP", gbp.Currency)
	assert.Equal(t, 80, gbp.Daily)
	assert.Equal(t, BudgetLevelMidRange, gbp.Level)

	gbpHigh := ParseBudget("£270", 3)
	assert.Equal(t, 90, gbpHigh.Daily)
	assert.Equal(t, BudgetLevelLuxury, gbpHigh.Level)

	// Yen daily amounts are tiny in euro terms.
	jpy := ParseBudget("¥20000", 3)
	assert.Equal(t, "JPY", jpy.Currency)
	assert.Equal(t, BudgetLevelBudget, jpy.Level)

	// A$100/day is €60/day, mid-range, and displays with its own symbol.
	aud := ParseBudget("300 AUD", 3)
	assert.Equal(t, "AUD", aud.Currency)
	assert.Equal(t, BudgetLevelMidRange, aud.Level)
	assert.Equal(t, "A$300", aud.Display)
	assert.Equal(t, "A$100", aud.DisplayDaily)

	symbolic := ParseBudget("A$300", 3)
	assert.Equal(t, "AUD", symbolic.Currency)
	assert.Equal(t, "A$300", symbolic.Display)
}

func TestParseBudgetSymbolDetectionIsOrdered(t *testing.T) {
	// Two symbols in one string always resolve the same way.
	for i := 0; i < 20; i++ {
		info := ParseBudget("€100 ($110)", 2)
		assert.Equal(t, "EUR", info.Currency)
	}

	// The A$ prefix wins over the bare dollar it contains.
	info := ParseBudget("A$500", 5)
	assert.Equal(t, "AUD", info.Currency)
}

func TestParseBudgetDisplayStrings(t *testing.T) {
	info := ParseBudget("€300", 3)
	assert.Equal(t, "€300", info.Display)
	assert.Equal(t, "€100", info.DisplayDaily)

	est := ParseBudget("", 2)
	assert.Equal(t, "€1000 (estimated)", est.Display)
	assert.Equal(t, "€500", est.DisplayDaily)
}

func TestParseBudgetZeroDuration(t *testing.T) {
	info := ParseBudget("€100", 0)
	assert.Equal(t, 100, info.Daily)
}
