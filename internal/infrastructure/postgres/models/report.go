package models

import "time"

type ReportModel struct {
	ID 				   uint   `gorm:"primaryKey;autoIncrement"`
	ReportID 		   string `gorm:"uniqueIndex"`
	ReporterID 		   string `gorm:"index"`
	ReporterUsername   string
	ReportedUserIDs    string // JSON array of user IDs
	OrderIDOrTicketID  string
	Description 	   string
	ProofLinks 		   string // JSON array of URLs
	ExpectedResolution string
	Status 			   string
	CreatedAt 		   time.Time
	UpdatedAt 		   time.Time
}
