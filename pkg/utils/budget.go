package utils

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Budget levels used by prompt construction and static guide rendering.
const (
	BudgetLevelBudget   = "budget"
	BudgetLevelMidRange = "mid-range"
	BudgetLevelLuxury   = "luxury"
)

// DefaultBudgetAmount is substituted when the user gave no parseable budget.
const DefaultBudgetAmount = 1000

// eurRates converts a detected currency into euros before classifying the
// daily spend. Rough long-run averages; classification bands are wide enough
// that precision does not matter here.
var eurRates = map[string]float64{
	"EUR": 1.0,
	"USD": 0.90,
	"GBP": 1.15,
	"TRY": 0.03,
	"JPY": 0.006,
	"AUD": 0.60,
}

// currencySymbols is scanned in order, so detection is deterministic when a
// string carries more than one symbol. "A$" must precede the bare dollar or
// Australian amounts would read as USD.
var currencySymbols = []struct {
	Symbol string
	Code   string
}{
	{"A$", "AUD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"₺", "TRY"},
	{"¥", "JPY"},
	{"$", "USD"},
}

// BudgetInfo is the fully derived budget picture for one trip.
type BudgetInfo struct {
	Amount       int    // magnitude in the stated currency
	Currency     string // ISO code, EUR when undetectable
	Daily        int    // Amount / duration, rounded
	Level        string // budget | mid-range | luxury
	Display      string // e.g. "€300" or "€1000 (estimated)"
	DisplayDaily string // e.g. "€100"
	Estimated    bool   // true when the default amount was substituted
}

// ParseBudget derives the daily budget and spending level from a free-form
// budget string such as "€300", "$1,200" or "450". Missing or unparseable
// input falls back to the default amount; it never fails.
func ParseBudget(raw string, durationDays int) BudgetInfo {
	if durationDays < 1 {
		durationDays = 1
	}

	currency := detectCurrency(raw)
	amount := extractDigits(raw)

	info := BudgetInfo{Currency: currency}
	if amount <= 0 {
		info.Amount = DefaultBudgetAmount
		info.Currency = "EUR"
		info.Estimated = true
	} else {
		info.Amount = amount
	}

	info.Daily = int(math.Round(float64(info.Amount) / float64(durationDays)))
	info.Level = classifyDaily(info.Daily, info.Currency)

	symbol := symbolFor(info.Currency)
	if info.Estimated {
		info.Display = fmt.Sprintf("%s%d (estimated)", symbol, info.Amount)
	} else {
		info.Display = fmt.Sprintf("%s%d", symbol, info.Amount)
	}
	info.DisplayDaily = fmt.Sprintf("%s%d", symbol, info.Daily)
	return info
}

// classifyDaily applies the spending bands on the euro-normalized daily
// amount: under 50 is budget, up to and including 100 is mid-range, above
// that luxury.
func classifyDaily(daily int, currency string) string {
	rate, ok := eurRates[currency]
	if !ok {
		rate = 1.0
	}
	eurDaily := float64(daily) * rate
	switch {
	case eurDaily < 50:
		return BudgetLevelBudget
	case eurDaily <= 100:
		return BudgetLevelMidRange
	default:
		return BudgetLevelLuxury
	}
}

func detectCurrency(raw string) string {
	for _, c := range currencySymbols {
		if strings.Contains(raw, c.Symbol) {
			return c.Code
		}
	}
	upper := strings.ToUpper(raw)
	for _, c := range currencySymbols {
		if strings.Contains(upper, c.Code) {
			return c.Code
		}
	}
	return "EUR"
}

func symbolFor(currency string) string {
	for _, c := range currencySymbols {
		if c.Code == currency {
			return c.Symbol
		}
	}
	return "€"
}

func extractDigits(raw string) int {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n := 0
	for _, r := range b.String() {
		n = n*10 + int(r-'0')
		if n > 100_000_000 {
			return 100_000_000
		}
	}
	return n
}
