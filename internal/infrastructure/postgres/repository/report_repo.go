package repository

import (
	"errors"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReportRepository struct {
	db *gorm.DB
}

func NewDefaultReportRepository(db *gorm.DB) *DefaultReportRepository {
	return &DefaultReportRepository{db: db}
}

func (r *DefaultReportRepository) CreateReport(report *domain.Report) error {
	reportModel := mappers.ToGORMReport(report)
	if err := r.db.Create(reportModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultReportRepository) GetReportByReportID(reportID string) (*domain.Report, error) {
	var reportModel models.ReportModel
	if err := r.db.Model(&models.ReportModel{}).Where("report_id = ?", reportID).First(&reportModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return mappers.ToDomainReport(&reportModel), nil
}

func (r *DefaultReportRepository) CountReports() (int64, error) {
	var total int64
	if err := r.db.Model(&models.ReportModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *DefaultReportRepository) UpdateReportStatus(reportID string, status domain.ReportStatus) error {
	return r.db.Model(&models.ReportModel{}).Where("report_id = ?", reportID).Update("status", string(status)).Error
}
