package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name 	 string
		amount 	 string
		decimals int
		want 	 string
		wantErr  bool
	}{
		{name: "whole tokens", amount: "5", decimals: 18, want: "5000000000000000000"},
		{name: "fractional usdc", amount: "1.5", decimals: 6, want: "1500000"},
		{name: "full precision", amount: "0.00000001", decimals: 8, want: "1"},
		{name: "too much precision", amount: "0.0000001", decimals: 6, wantErr: true},
		{name: "not a number", amount: "ten", decimals: 18, wantErr: true},
		{name: "negative", amount: "-3", decimals: 18, wantErr: true},
		{name: "zero", amount: "0", decimals: 18, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBaseUnits(tt.amount, tt.decimals)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFromBaseUnits(t *testing.T) {
	tests := []struct {
		name 	 string
		amount 	 string
		decimals int
		want 	 string
	}{
		{name: "whole tokens", amount: "5000000000000000000", decimals: 18, want: "5"},
		{name: "fractional usdc", amount: "1500000", decimals: 6, want: "1.5"},
		{name: "smallest unit", amount: "1", decimals: 8, want: "0.00000001"},
		{name: "zero", amount: "0", decimals: 18, want: "0"},
		{name: "no decimals", amount: "42", decimals: 0, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := new(big.Int).SetString(tt.amount, 10)
			require.True(t, ok)
			assert.Equal(t, tt.want, FromBaseUnits(amount, tt.decimals))
		})
	}
}

func TestIsTxHash(t *testing.T) {
	assert.True(t, IsTxHash("0x"+string(make64('a'))))
	assert.False(t, IsTxHash("0x123"))
	assert.False(t, IsTxHash(string(make64('a'))+"00"))
	assert.False(t, IsTxHash("0x"+string(make64('g'))))
}

func make64(c byte) []byte {
	b := make([]byte, 64)
	for i := range b {
		b[i] = c
	}
	return b
}
