package chain

import (
	"math/big"
	"strings"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/ethereum/go-ethereum/common"
)

// IsHexAddress reports whether s is a 20-byte hex address
func IsHexAddress(s string) bool {
	return common.IsHexAddress(s)
}

// IsTxHash reports whether s is a 32-byte hex string with 0x prefix
func IsTxHash(s string) bool {
	if len(s) != 66 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for _, c := range s[2:] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// FromBaseUnits renders base units as a decimal string, trimming trailing
// zeros, e.g. 1500000 with 6 decimals -> "1.5"
func FromBaseUnits(amount *big.Int, decimals int) string {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r := new(big.Rat).SetFrac(amount, scale)
	s := r.FloatString(decimals)
	if decimals > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// ToBaseUnits converts a decimal amount string to base units of a token,
// e.g. "1.5" with 6 decimals -> 1500000. Fractional dust beyond the token's
// precision is rejected.
func ToBaseUnits(amount string, decimals int) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(amount)
	if !ok || r.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	if !r.IsInt() {
		return nil, domain.ErrInvalidAmount
	}
	return new(big.Int).Set(r.Num()), nil
}
