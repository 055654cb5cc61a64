package usecase

import (
	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/chain"
)

type DefaultWalletUsecase struct {
	walletRepo domain.WalletRepository
}

func NewDefaultWalletUsecase(walletRepo domain.WalletRepository) *DefaultWalletUsecase {
	return &DefaultWalletUsecase{walletRepo: walletRepo}
}

func (uc *DefaultWalletUsecase) LinkWallet(userID, address string) error {
	if !chain.IsHexAddress(address) {
		return domain.ErrInvalidAddress
	}
	return uc.walletRepo.UpsertWallet(&domain.WalletLink{
		UserID: userID,
		Address: address,
	})
}

func (uc *DefaultWalletUsecase) GetAddress(userID string) (string, error) {
	link, err := uc.walletRepo.GetWalletByUserID(userID)
	if err != nil {
		return "", err
	}
	return link.Address, nil
}
