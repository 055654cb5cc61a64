package usecase

import (
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type DefaultApplicationUsecase struct {
	applicationRepo domain.ApplicationRepository
}

func NewDefaultApplicationUsecase(applicationRepo domain.ApplicationRepository) *DefaultApplicationUsecase {
	return &DefaultApplicationUsecase{applicationRepo: applicationRepo}
}

func (uc *DefaultApplicationUsecase) SubmitApplication(app *domain.FreelancerApplication) error {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}
	app.ID = idGenerator()
	app.Status = domain.ApplicationPending
	app.SubmittedAt = time.Now()
	return uc.applicationRepo.CreateApplication(app)
}

func (uc *DefaultApplicationUsecase) GetApplicationByID(appID string) (*domain.FreelancerApplication, error) {
	return uc.applicationRepo.GetApplicationByID(appID)
}

func (uc *DefaultApplicationUsecase) ApproveApplication(appID string) (*domain.FreelancerApplication, error) {
	return uc.setStatus(appID, domain.ApplicationApproved)
}

func (uc *DefaultApplicationUsecase) RejectApplication(appID string) (*domain.FreelancerApplication, error) {
	return uc.setStatus(appID, domain.ApplicationRejected)
}

func (uc *DefaultApplicationUsecase) setStatus(appID string, status domain.ApplicationStatus) (*domain.FreelancerApplication, error) {
	if err := uc.applicationRepo.UpdateApplicationStatus(appID, status); err != nil {
		return nil, err
	}
	return uc.applicationRepo.GetApplicationByID(appID)
}
