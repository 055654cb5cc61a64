package repository

import (
	"errors"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultWalletRepository struct {
	db *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{db: db}
}

// UpsertWallet - повторная привязка затирает предыдущий адрес
func (r *DefaultWalletRepository) UpsertWallet(link *domain.WalletLink) error {
	walletModel := models.WalletModel{
		UserID: link.UserID,
		Address: link.Address,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"address", "updated_at"}),
	}).Create(&walletModel).Error
}

func (r *DefaultWalletRepository) GetWalletByUserID(userID string) (*domain.WalletLink, error) {
	var walletModel models.WalletModel
	if err := r.db.Model(&models.WalletModel{}).Where("user_id = ?", userID).First(&walletModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWalletNotLinked
		}
		return nil, err
	}
	return &domain.WalletLink{UserID: walletModel.UserID, Address: walletModel.Address}, nil
}
