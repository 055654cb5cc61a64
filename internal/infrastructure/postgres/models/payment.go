package models

import "time"

type PaymentModel struct {
	ID 		   string `gorm:"primaryKey"`
	PayerID    string `gorm:"index:idx_payer_status"`
	Amount 	   float64
	ProofText  string
	ProofImage string
	Status 	   string `gorm:"index:idx_payer_status"`
	ApprovedBy string
	ReleasedBy string
	ReleasedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
