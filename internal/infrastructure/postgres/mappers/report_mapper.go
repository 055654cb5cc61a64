package mappers

import (
	"encoding/json"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
)

func ToGORMReport(report *domain.Report) *models.ReportModel {
	reported, _ := json.Marshal(report.ReportedUserIDs)
	proofs, _ := json.Marshal(report.ProofLinks)
	return &models.ReportModel{
		ReportID: report.ReportID,
		ReporterID: report.ReporterID,
		ReporterUsername: report.ReporterUsername,
		ReportedUserIDs: string(reported),
		OrderIDOrTicketID: report.OrderIDOrTicketID,
		Description: report.Description,
		ProofLinks: string(proofs),
		ExpectedResolution: report.ExpectedResolution,
		Status: string(report.Status),
		CreatedAt: report.CreatedAt,
	}
}

func ToDomainReport(model *models.ReportModel) *domain.Report {
	var reported, proofs []string
	if model.ReportedUserIDs != "" {
		json.Unmarshal([]byte(model.ReportedUserIDs), &reported)
	}
	if model.ProofLinks != "" {
		json.Unmarshal([]byte(model.ProofLinks), &proofs)
	}
	return &domain.Report{
		ReportID: model.ReportID,
		ReporterID: model.ReporterID,
		ReporterUsername: model.ReporterUsername,
		ReportedUserIDs: reported,
		OrderIDOrTicketID: model.OrderIDOrTicketID,
		Description: model.Description,
		ProofLinks: proofs,
		ExpectedResolution: model.ExpectedResolution,
		Status: domain.ReportStatus(model.Status),
		CreatedAt: model.CreatedAt,
	}
}
