package domain

import "time"

type ReportStatus string

const (
	ReportOpen 		  ReportStatus = "Open"
	ReportUnderReview ReportStatus = "Under Review"
	ReportResolved 	  ReportStatus = "Resolved"
	ReportDismissed   ReportStatus = "Dismissed"
)

type Report struct {
	ReportID 		   string
	ReporterID 		   string
	ReporterUsername   string
	ReportedUserIDs    []string
	OrderIDOrTicketID  string
	Description 	   string
	ProofLinks 		   []string
	ExpectedResolution string
	Status 			   ReportStatus
	CreatedAt 		   time.Time
}

type ReportRepository interface {
	CreateReport(report *Report) error
	GetReportByReportID(reportID string) (*Report, error)
	CountReports() (int64, error)
	UpdateReportStatus(reportID string, status ReportStatus) error
}

type ReportUsecase interface {
	// FileReport assigns the next sequential report ID and persists the report
	FileReport(report *Report) error
	GetReportByReportID(reportID string) (*Report, error)
	SetReportStatus(reportID string, status ReportStatus) (*Report, error)
}
