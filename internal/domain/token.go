package domain

// EscrowToken - поддерживаемые токены с фиксированными адресами контрактов
type EscrowToken struct {
	Key 	 string
	Name 	 string
	Address  string
	Decimals int
}

// SupportedTokens lists the five currencies offered by the escrow flow.
// The zero address means the chain's native coin.
var SupportedTokens = []EscrowToken{
	{Key: "matic", Name: "MATIC/ETH", Address: "0x0000000000000000000000000000000000000000", Decimals: 18},
	{Key: "usdc", Name: "USDC", Address: "0x6CaFd179B1ab5D9674A45FeA6D2D2B30fDd40f63", Decimals: 6},
	{Key: "usdt", Name: "USDT", Address: "0x3813e82e6f7098b9583FC0F33a962D02018B6803", Decimals: 6},
	{Key: "dai", Name: "DAI", Address: "0x001B3B4d0F3714CA98ba10F6042daEbF0B1B7b6F", Decimals: 18},
	{Key: "wbtc", Name: "WBTC", Address: "0x1bfd67037b42cf73acf2047067bd4f2c47d9bfd6", Decimals: 8},
}

func TokenByKey(key string) (EscrowToken, bool) {
	for _, t := range SupportedTokens {
		if t.Key == key {
			return t, true
		}
	}
	return EscrowToken{}, false
}
