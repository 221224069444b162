package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripDurationFromStrings(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2026-01-10", "2026-01-13", 3},
		{"one night", "2026-06-15", "2026-06-16", 1},
		{"same day clamps to one", "2026-06-15", "2026-06-15", 1},
		{"reversed clamps to one", "2026-06-20", "2026-06-15", 1},
		{"garbage clamps to one", "soon", "later", 1},
		{"week", "2024-06-15", "2024-06-22", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TripDurationFromStrings(tt.checkIn, tt.checkOut))
		})
	}
}
