package repository

import (
	"errors"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultApplicationRepository struct {
	db *gorm.DB
}

func NewDefaultApplicationRepository(db *gorm.DB) *DefaultApplicationRepository {
	return &DefaultApplicationRepository{db: db}
}

func (r *DefaultApplicationRepository) CreateApplication(app *domain.FreelancerApplication) error {
	appModel := mappers.ToGORMApplication(app)
	if err := r.db.Create(appModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultApplicationRepository) GetApplicationByID(appID string) (*domain.FreelancerApplication, error) {
	var appModel models.ApplicationModel
	if err := r.db.Model(&models.ApplicationModel{}).Where("id = ?", appID).First(&appModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return mappers.ToDomainApplication(&appModel), nil
}

func (r *DefaultApplicationRepository) UpdateApplicationStatus(appID string, status domain.ApplicationStatus) error {
	return r.db.Model(&models.ApplicationModel{}).Where("id = ?", appID).Update("status", string(status)).Error
}
