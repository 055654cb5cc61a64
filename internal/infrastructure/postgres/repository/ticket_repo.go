package repository

import (
	"encoding/json"
	"errors"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTicketRepository struct {
	db *gorm.DB
}

func NewDefaultTicketRepository(db *gorm.DB) *DefaultTicketRepository {
	return &DefaultTicketRepository{db: db}
}

func (r *DefaultTicketRepository) CreateTicket(ticket *domain.Ticket) error {
	ticketModel := mappers.ToGORMTicket(ticket)
	if err := r.db.Create(ticketModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultTicketRepository) GetTicketByID(ticketID string) (*domain.Ticket, error) {
	var ticketModel models.TicketModel
	if err := r.db.Model(&models.TicketModel{}).Where("id = ?", ticketID).First(&ticketModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTicket(&ticketModel), nil
}

func (r *DefaultTicketRepository) GetTicketByName(ticketName string) (*domain.Ticket, error) {
	var ticketModel models.TicketModel
	if err := r.db.Model(&models.TicketModel{}).Where("ticket_name = ?", ticketName).First(&ticketModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTicket(&ticketModel), nil
}

func (r *DefaultTicketRepository) GetTicketByChannelID(channelID string) (*domain.Ticket, error) {
	var ticketModel models.TicketModel
	if err := r.db.Model(&models.TicketModel{}).Where("channel_id = ?", channelID).First(&ticketModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTicket(&ticketModel), nil
}

func (r *DefaultTicketRepository) AttachOrder(ticketName string, order *domain.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return r.db.Model(&models.TicketModel{}).
		Where("ticket_name = ?", ticketName).
		Update("order_json", string(raw)).Error
}

func (r *DefaultTicketRepository) UpdateTicketStatus(ticketID string, status domain.TicketStatus) error {
	return r.db.Model(&models.TicketModel{}).Where("id = ?", ticketID).Update("status", string(status)).Error
}

func (r *DefaultTicketRepository) SetFreelancer(ticketID, freelancerID string) error {
	return r.db.Model(&models.TicketModel{}).Where("id = ?", ticketID).Update("freelancer_id", freelancerID).Error
}

func (r *DefaultTicketRepository) SetTxHash(ticketID, txHash string) error {
	return r.db.Model(&models.TicketModel{}).Where("id = ?", ticketID).Update("tx_hash", txHash).Error
}

func (r *DefaultTicketRepository) DeleteTicketByName(ticketName string) error {
	return r.db.Where("ticket_name = ?", ticketName).Delete(&models.TicketModel{}).Error
}
