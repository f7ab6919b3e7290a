package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio"
)

func TestParsePositions(t *testing.T) {
	p, err := parsePositions("USD", []string{"AAPL:10:Apple Inc.", "msft:5", "GOOGL:2.5:Alphabet Inc."})
	require.NoError(t, err)

	got := p.Positions()
	require.Len(t, got, 3)

	assert.Equal(t, "AAPL", got[0].Symbol)
	assert.Equal(t, "Apple Inc.", got[0].Name)
	assert.True(t, got[0].Quantity.Equal(folio.Q(10)))

	// Symbols are upcased, the name defaults to the symbol.
	assert.Equal(t, "MSFT", got[1].Symbol)
	assert.Equal(t, "MSFT", got[1].Name)

	// Fractional quantities are fine.
	assert.True(t, got[2].Quantity.Equal(folio.Q(2.5)))

	assert.Equal(t, "USD", p.Currency())
}

func TestParsePositions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no positions", nil},
		{"missing quantity", []string{"AAPL"}},
		{"empty symbol", []string{":10"}},
		{"bad quantity", []string{"AAPL:ten"}},
		{"zero quantity", []string{"AAPL:0"}},
		{"negative quantity", []string{"AAPL:-3"}},
		{"duplicate symbol", []string{"AAPL:10", "AAPL:5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePositions("USD", tt.args)
			assert.Error(t, err)
		})
	}
}
