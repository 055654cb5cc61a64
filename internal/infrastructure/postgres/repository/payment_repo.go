package repository

import (
	"errors"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	db *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{db: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.db.Create(paymentModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByID(paymentID string) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	if err := r.db.Model(&models.PaymentModel{}).Where("id = ?", paymentID).First(&paymentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&paymentModel), nil
}

// GetPaymentByPayerAndStatus resolves the latest record in the given status.
// Kept for the proof-submission command that only knows the payer.
func (r *DefaultPaymentRepository) GetPaymentByPayerAndStatus(payerID string, status domain.PaymentStatus) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	if err := r.db.Model(&models.PaymentModel{}).
		Where("payer_id = ? AND status = ?", payerID, string(status)).
		Order("created_at DESC").
		First(&paymentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *DefaultPaymentRepository) SaveProof(paymentID, proofText, proofImage string) error {
	updates := map[string]interface{}{"proof_text": proofText}
	if proofImage != "" {
		updates["proof_image"] = proofImage
	}
	return r.db.Model(&models.PaymentModel{}).Where("id = ?", paymentID).Updates(updates).Error
}

func (r *DefaultPaymentRepository) UpdatePayment(payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	return r.db.Model(&models.PaymentModel{}).Where("id = ?", payment.ID).Updates(map[string]interface{}{
		"status": paymentModel.Status,
		"approved_by": paymentModel.ApprovedBy,
		"released_by": paymentModel.ReleasedBy,
		"released_at": paymentModel.ReleasedAt,
	}).Error
}
