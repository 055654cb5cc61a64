package usecase

import (
	"fmt"
	"regexp"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/kafka"
)

// mentionPattern matches chat mention syntax; silently yields nothing when
// the reporter typed plain names instead
var mentionPattern = regexp.MustCompile(`<@!?(\d+)>`)

type DefaultReportUsecase struct {
	reportRepo 	   domain.ReportRepository
	kafkaPublisher *kafka.DefaultKafkaPublisher
}

func NewDefaultReportUsecase(
	reportRepo domain.ReportRepository,
	kafkaPublisher *kafka.DefaultKafkaPublisher,
	) *DefaultReportUsecase {
	return &DefaultReportUsecase{
		reportRepo: reportRepo,
		kafkaPublisher: kafkaPublisher,
	}
}

// FileReport assigns the next sequential zero-padded report ID and persists.
// The Nth report ever filed gets REP-00000N regardless of other collections.
func (uc *DefaultReportUsecase) FileReport(report *domain.Report) error {
	total, err := uc.reportRepo.CountReports()
	if err != nil {
		return err
	}
	report.ReportID = fmt.Sprintf("REP-%06d", total+1)
	if report.Status == "" {
		report.Status = domain.ReportOpen
	}
	report.CreatedAt = time.Now()
	if err := uc.reportRepo.CreateReport(report); err != nil {
		return err
	}
	uc.publishReport(report)
	return nil
}

func (uc *DefaultReportUsecase) publishReport(report *domain.Report) {
	if uc.kafkaPublisher == nil {
		return
	}
	uc.kafkaPublisher.PublishReport(kafka.ReportEvent{
		ReportID: report.ReportID,
		ReporterID: report.ReporterID,
		Status: string(report.Status),
		Timestamp: time.Now(),
	})
}

func (uc *DefaultReportUsecase) GetReportByReportID(reportID string) (*domain.Report, error) {
	return uc.reportRepo.GetReportByReportID(reportID)
}

func (uc *DefaultReportUsecase) SetReportStatus(reportID string, status domain.ReportStatus) (*domain.Report, error) {
	if err := uc.reportRepo.UpdateReportStatus(reportID, status); err != nil {
		return nil, err
	}
	return uc.reportRepo.GetReportByReportID(reportID)
}

// ExtractMentionedUsers pulls user IDs out of one free-text answer
func ExtractMentionedUsers(answer string) []string {
	matches := mentionPattern.FindAllStringSubmatch(answer, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}
