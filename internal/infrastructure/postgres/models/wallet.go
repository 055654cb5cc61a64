package models

import "time"

type WalletModel struct {
	UserID 	  string `gorm:"primaryKey"`
	Address   string
	UpdatedAt time.Time
}
