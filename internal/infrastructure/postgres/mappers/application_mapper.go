package mappers

import (
	"encoding/json"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
)

func ToGORMApplication(app *domain.FreelancerApplication) *models.ApplicationModel {
	raw, _ := json.Marshal(app.Answers)
	return &models.ApplicationModel{
		ID: app.ID,
		UserID: app.UserID,
		Username: app.Username,
		Service: app.Service,
		AnswersJSON: string(raw),
		Status: string(app.Status),
		SubmittedAt: app.SubmittedAt,
	}
}

func ToDomainApplication(model *models.ApplicationModel) *domain.FreelancerApplication {
	var answers []string
	if model.AnswersJSON != "" {
		json.Unmarshal([]byte(model.AnswersJSON), &answers)
	}
	return &domain.FreelancerApplication{
		ID: model.ID,
		UserID: model.UserID,
		Username: model.Username,
		Service: model.Service,
		Answers: answers,
		Status: domain.ApplicationStatus(model.Status),
		SubmittedAt: model.SubmittedAt,
	}
}
