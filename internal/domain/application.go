package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

type FreelancerApplication struct {
	ID 			string
	UserID 		string
	Username 	string
	Service 	string
	Answers 	[]string
	Status 		ApplicationStatus
	SubmittedAt time.Time
}

type ApplicationRepository interface {
	CreateApplication(app *FreelancerApplication) error
	GetApplicationByID(appID string) (*FreelancerApplication, error)
	UpdateApplicationStatus(appID string, status ApplicationStatus) error
}

type ApplicationUsecase interface {
	SubmitApplication(app *FreelancerApplication) error
	GetApplicationByID(appID string) (*FreelancerApplication, error)
	ApproveApplication(appID string) (*FreelancerApplication, error)
	RejectApplication(appID string) (*FreelancerApplication, error)
}
