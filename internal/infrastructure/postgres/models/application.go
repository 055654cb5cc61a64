package models

import "time"

type ApplicationModel struct {
	ID 			string `gorm:"primaryKey"`
	UserID 		string `gorm:"index"`
	Username 	string
	Service 	string
	AnswersJSON string
	Status 		string
	SubmittedAt time.Time
	UpdatedAt 	time.Time
}
