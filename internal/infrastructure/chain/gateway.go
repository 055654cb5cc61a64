package chain

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/LavaJover/shvark-deal-bot/internal/config"
	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Gateway binds the escrow, reward token and ticket registry contracts to
// one signing key. Stateless: every method is a single RPC round trip.
type Gateway struct {
	client 		   *ethclient.Client
	opts 		   *bind.TransactOpts
	escrowABI 	   abi.ABI
	escrow 		   *bind.BoundContract
	escrowAddr 	   common.Address
	token 		   *bind.BoundContract
	ticketRegistry *bind.BoundContract
}

func MustInitGateway(cfg *config.DealBotConfig) *Gateway {
	gw, err := NewGateway(cfg)
	if err != nil {
		log.Fatalf("failed to init chain gateway: %v", err)
	}
	return gw
}

func NewGateway(cfg *config.DealBotConfig) (*Gateway, error) {
	client, err := ethclient.Dial(cfg.Chain.RpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.Chain.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	chainID, err := client.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("transactor: %w", err)
	}

	escrowABI, err := abi.JSON(strings.NewReader(escrowServiceABI))
	if err != nil {
		return nil, fmt.Errorf("escrow abi: %w", err)
	}
	tokenABI, err := abi.JSON(strings.NewReader(rewardTokenABI))
	if err != nil {
		return nil, fmt.Errorf("token abi: %w", err)
	}
	registryABI, err := abi.JSON(strings.NewReader(ticketRegistryABI))
	if err != nil {
		return nil, fmt.Errorf("registry abi: %w", err)
	}

	escrowAddr := common.HexToAddress(cfg.Chain.EscrowAddress)

	return &Gateway{
		client: client,
		opts: opts,
		escrowABI: escrowABI,
		escrow: bind.NewBoundContract(escrowAddr, escrowABI, client, client, client),
		escrowAddr: escrowAddr,
		token: bind.NewBoundContract(common.HexToAddress(cfg.Chain.TokenAddress), tokenABI, client, client, client),
		ticketRegistry: bind.NewBoundContract(common.HexToAddress(cfg.Chain.TicketRegistryAddress), registryABI, client, client, client),
	}, nil
}

func (g *Gateway) txOpts(ctx context.Context) *bind.TransactOpts {
	opts := *g.opts
	opts.Context = ctx
	return &opts
}

func (g *Gateway) LogTicket(ctx context.Context, metadataHash, txHash string) (string, error) {
	tx, err := g.ticketRegistry.Transact(g.txOpts(ctx), "logTicket", metadataHash, txHash)
	if err != nil {
		return "", fmt.Errorf("logTicket: %w", err)
	}
	receipt, err := bind.WaitMined(ctx, g.client, tx)
	if err != nil {
		return "", fmt.Errorf("logTicket wait: %w", err)
	}
	return receipt.TxHash.Hex(), nil
}

func (g *Gateway) TotalTickets(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	if err := g.ticketRegistry.Call(&bind.CallOpts{Context: ctx}, &out, "getTotalTickets"); err != nil {
		return nil, fmt.Errorf("getTotalTickets: %w", err)
	}
	return out[0].(*big.Int), nil
}

func (g *Gateway) CreateEscrowToken(ctx context.Context, freelancer, tokenAddress string, amount *big.Int) (string, error) {
	tx, err := g.escrow.Transact(g.txOpts(ctx), "createEscrowToken",
		common.HexToAddress(freelancer), common.HexToAddress(tokenAddress), amount)
	if err != nil {
		return "", fmt.Errorf("createEscrowToken: %w", err)
	}
	return tx.Hash().Hex(), nil
}

func (g *Gateway) AcceptEscrow(ctx context.Context, escrowID *big.Int) (string, error) {
	tx, err := g.escrow.Transact(g.txOpts(ctx), "acceptEscrow", escrowID)
	if err != nil {
		return "", fmt.Errorf("acceptEscrow: %w", err)
	}
	return tx.Hash().Hex(), nil
}

func (g *Gateway) CompleteWork(ctx context.Context, escrowID *big.Int) (string, error) {
	tx, err := g.escrow.Transact(g.txOpts(ctx), "completeWork", escrowID)
	if err != nil {
		return "", fmt.Errorf("completeWork: %w", err)
	}
	return tx.Hash().Hex(), nil
}

func (g *Gateway) ReleaseFunds(ctx context.Context, escrowID *big.Int) (string, error) {
	tx, err := g.escrow.Transact(g.txOpts(ctx), "releaseFunds", escrowID)
	if err != nil {
		return "", fmt.Errorf("releaseFunds: %w", err)
	}
	return tx.Hash().Hex(), nil
}

func (g *Gateway) TokenBalance(ctx context.Context, account string) (*big.Int, error) {
	var out []interface{}
	if err := g.token.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", common.HexToAddress(account)); err != nil {
		return nil, fmt.Errorf("balanceOf: %w", err)
	}
	return out[0].(*big.Int), nil
}

// VerifyEscrowDeposit looks up the user-supplied transaction hash and decodes
// the EscrowCreated event from its receipt. There is no listener correlating
// deposits to flows: this lookup is the only confirmation mechanism.
func (g *Gateway) VerifyEscrowDeposit(ctx context.Context, txHash string) (*domain.EscrowDeposit, error) {
	receipt, err := g.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		return nil, fmt.Errorf("receipt lookup: %w", err)
	}
	if receipt.Status != 1 {
		return nil, fmt.Errorf("transaction failed or not mined")
	}

	eventID := g.escrowABI.Events["EscrowCreated"].ID
	for _, lg := range receipt.Logs {
		if lg.Address != g.escrowAddr || len(lg.Topics) == 0 || lg.Topics[0] != eventID {
			continue
		}
		event := struct {
			EscrowId 	 *big.Int
			Client 		 common.Address
			Freelancer 	 common.Address
			Amount 		 *big.Int
			TokenAddress common.Address
		}{}
		if err := g.escrow.UnpackLog(&event, "EscrowCreated", *lg); err != nil {
			return nil, fmt.Errorf("decode EscrowCreated: %w", err)
		}
		return &domain.EscrowDeposit{
			EscrowID: event.EscrowId,
			Client: event.Client.Hex(),
			Freelancer: event.Freelancer.Hex(),
			Amount: event.Amount,
			TokenAddress: event.TokenAddress.Hex(),
		}, nil
	}
	return nil, fmt.Errorf("EscrowCreated event not found in receipt")
}

func (g *Gateway) EscrowAddress() string {
	return g.escrowAddr.Hex()
}

// MetadataHash - keccak256 от ID записи тикета
func (g *Gateway) MetadataHash(recordID string) string {
	return crypto.Keccak256Hash([]byte(recordID)).Hex()
}
