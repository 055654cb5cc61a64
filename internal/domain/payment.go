package domain

import "time"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentReleased PaymentStatus = "released"
)

type Payment struct {
	ID 		   string
	PayerID    string
	Amount 	   float64
	ProofText  string
	ProofImage string
	Status 	   PaymentStatus
	ApprovedBy string
	ReleasedBy string
	ReleasedAt *time.Time
	CreatedAt  time.Time
}

type PaymentRepository interface {
	CreatePayment(payment *Payment) error
	GetPaymentByID(paymentID string) (*Payment, error)
	GetPaymentByPayerAndStatus(payerID string, status PaymentStatus) (*Payment, error)
	SaveProof(paymentID, proofText, proofImage string) error
	UpdatePayment(payment *Payment) error
}

type PaymentUsecase interface {
	// StartPayment eagerly creates a pending payment session for the payer
	StartPayment(payerID string) (*Payment, error)
	SubmitProof(payerID, proofText, proofImage string) (*Payment, error)
	ApprovePayment(paymentID, approverID string) (*Payment, error)
	ReleasePayment(paymentID, releaserID string) (*Payment, error)
}
