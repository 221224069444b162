package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCityCode(t *testing.T) {
	tests := []struct {
		city string
		code string
	}{
		{"London", "LON"},
		{"london", "LON"},
		{"  LONDON  ", "LON"},
		{"Milano", "MIL"},
		{"New York City", "NYC"},
		{"São Paulo", "SAO"},
		{"Praha", "PRG"},
		{"Zürich", "ZRH"},
	}
	for _, tt := range tests {
		code, ok := ResolveCityCode(tt.city)
		require.True(t, ok, "expected %q to resolve", tt.city)
		assert.Equal(t, tt.code, code.Code)
	}

	_, ok := ResolveCityCode("Springfield")
	assert.False(t, ok)
}

func TestSynthesizeCityCode(t *testing.T) {
	assert.Equal(t, "SPR", SynthesizeCityCode("Springfield"))
	assert.Equal(t, "BAD", SynthesizeCityCode("Bad Gastein"))
	assert.Equal(t, "ULM", SynthesizeCityCode("Ulm"))
	assert.Equal(t, "AXX", SynthesizeCityCode("A1"))
	assert.Equal(t, "XXX", SynthesizeCityCode("123"))
}

func TestNormalizeCityKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"São Paulo", "sao paulo"},
		{"SAO  PAULO", "sao paulo"},
		{"Saint-Étienne", "saint etienne"},
		{"L'Aquila", "l aquila"},
		{"  Kraków  ", "krakow"},
		{"st. louis", "st louis"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCityKey(tt.in), "input %q", tt.in)
	}
}
