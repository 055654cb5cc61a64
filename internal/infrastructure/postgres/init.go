package postgres

import (
	"log"

	"github.com/LavaJover/shvark-deal-bot/internal/config"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.DealBotConfig) *gorm.DB {
	dsn := cfg.DealDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.TicketModel{}, &models.ApplicationModel{}, &models.ReportModel{}, &models.WalletModel{}, &models.PaymentModel{})

	return db
}
