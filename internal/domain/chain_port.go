package domain

import (
	"context"
	"math/big"
)

// EscrowDeposit - расшифрованное событие EscrowCreated из квитанции транзакции
type EscrowDeposit struct {
	EscrowID 	 *big.Int
	Client 		 string
	Freelancer 	 string
	Amount 		 *big.Int
	TokenAddress string
}

// ChainPort is the fixed-ABI surface the bot calls on-chain. No retries:
// callers surface failures to the user and stop.
type ChainPort interface {
	LogTicket(ctx context.Context, metadataHash, txHash string) (string, error)
	TotalTickets(ctx context.Context) (*big.Int, error)
	CreateEscrowToken(ctx context.Context, freelancer, tokenAddress string, amount *big.Int) (string, error)
	AcceptEscrow(ctx context.Context, escrowID *big.Int) (string, error)
	CompleteWork(ctx context.Context, escrowID *big.Int) (string, error)
	ReleaseFunds(ctx context.Context, escrowID *big.Int) (string, error)
	TokenBalance(ctx context.Context, account string) (*big.Int, error)
	VerifyEscrowDeposit(ctx context.Context, txHash string) (*EscrowDeposit, error)
	EscrowAddress() string
	MetadataHash(recordID string) string
}

// RatesPort serves the spot prices shown on the escrow panel
type RatesPort interface {
	GetPrices(ctx context.Context) (map[string]float64, error)
}
