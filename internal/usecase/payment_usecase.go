package usecase

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/kafka"
	"github.com/google/uuid"
)

type DefaultPaymentUsecase struct {
	paymentRepo    domain.PaymentRepository
	kafkaPublisher *kafka.DefaultKafkaPublisher
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	kafkaPublisher *kafka.DefaultKafkaPublisher,
	) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		paymentRepo: paymentRepo,
		kafkaPublisher: kafkaPublisher,
	}
}

// StartPayment eagerly creates a pending payment session. Each initiation
// gets its own uuid so staff actions target an exact record instead of
// "the" pending payment for the payer.
func (uc *DefaultPaymentUsecase) StartPayment(payerID string) (*domain.Payment, error) {
	payment := domain.Payment{
		ID: uuid.NewString(),
		PayerID: payerID,
		Amount: 0,
		Status: domain.PaymentPending,
		CreatedAt: time.Now(),
	}
	if err := uc.paymentRepo.CreatePayment(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// SubmitProof attaches proof to the payer's latest pending payment. The
// proof command only knows the payer, so resolution by status stays here.
func (uc *DefaultPaymentUsecase) SubmitProof(payerID, proofText, proofImage string) (*domain.Payment, error) {
	payment, err := uc.paymentRepo.GetPaymentByPayerAndStatus(payerID, domain.PaymentPending)
	if err != nil {
		return nil, err
	}
	if err := uc.paymentRepo.SaveProof(payment.ID, proofText, proofImage); err != nil {
		return nil, err
	}
	return uc.paymentRepo.GetPaymentByID(payment.ID)
}

func (uc *DefaultPaymentUsecase) ApprovePayment(paymentID, approverID string) (*domain.Payment, error) {
	payment, err := uc.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentPending {
		return nil, fmt.Errorf("payment %s is %s, expected pending", paymentID, payment.Status)
	}
	payment.Status = domain.PaymentApproved
	payment.ApprovedBy = approverID
	if err := uc.paymentRepo.UpdatePayment(payment); err != nil {
		return nil, err
	}
	uc.publishPayment(payment, approverID)
	return payment, nil
}

func (uc *DefaultPaymentUsecase) ReleasePayment(paymentID, releaserID string) (*domain.Payment, error) {
	payment, err := uc.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentApproved {
		return nil, fmt.Errorf("payment %s is %s, expected approved", paymentID, payment.Status)
	}
	now := time.Now()
	payment.Status = domain.PaymentReleased
	payment.ReleasedBy = releaserID
	payment.ReleasedAt = &now
	if err := uc.paymentRepo.UpdatePayment(payment); err != nil {
		return nil, err
	}
	uc.publishPayment(payment, releaserID)
	return payment, nil
}

func (uc *DefaultPaymentUsecase) publishPayment(payment *domain.Payment, actorID string) {
	if uc.kafkaPublisher == nil {
		return
	}
	uc.kafkaPublisher.PublishPayment(kafka.PaymentEvent{
		PaymentID: payment.ID,
		PayerID: payment.PayerID,
		Status: string(payment.Status),
		ActorID: actorID,
		Timestamp: time.Now(),
	})
}
