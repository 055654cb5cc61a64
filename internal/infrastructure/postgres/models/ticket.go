package models

import "time"

type TicketModel struct {
	ID 			 string `gorm:"primaryKey"`
	UserID 		 string `gorm:"index"`
	ChannelID 	 string
	TicketName 	 string `gorm:"index:idx_ticket_name"`
	Status 		 string
	Description  string
	TxHash 		 string
	FreelancerID string
	// order form serialized to JSON, null until intake completes
	OrderJSON 	 string
	CreatedAt 	 time.Time
	UpdatedAt 	 time.Time
}
