package mappers

import (
	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
)

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID: payment.ID,
		PayerID: payment.PayerID,
		Amount: payment.Amount,
		ProofText: payment.ProofText,
		ProofImage: payment.ProofImage,
		Status: string(payment.Status),
		ApprovedBy: payment.ApprovedBy,
		ReleasedBy: payment.ReleasedBy,
		ReleasedAt: payment.ReleasedAt,
		CreatedAt: payment.CreatedAt,
	}
}

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID: model.ID,
		PayerID: model.PayerID,
		Amount: model.Amount,
		ProofText: model.ProofText,
		ProofImage: model.ProofImage,
		Status: domain.PaymentStatus(model.Status),
		ApprovedBy: model.ApprovedBy,
		ReleasedBy: model.ReleasedBy,
		ReleasedAt: model.ReleasedAt,
		CreatedAt: model.CreatedAt,
	}
}
