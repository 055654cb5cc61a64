package mappers

import (
	"encoding/json"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/models"
)

func ToGORMTicket(ticket *domain.Ticket) *models.TicketModel {
	model := models.TicketModel{
		ID: ticket.ID,
		UserID: ticket.UserID,
		ChannelID: ticket.ChannelID,
		TicketName: ticket.TicketName,
		Status: string(ticket.Status),
		Description: ticket.Description,
		TxHash: ticket.TxHash,
		FreelancerID: ticket.FreelancerID,
		CreatedAt: ticket.CreatedAt,
	}
	if ticket.Order != nil {
		raw, err := json.Marshal(ticket.Order)
		if err == nil {
			model.OrderJSON = string(raw)
		}
	}
	return &model
}

func ToDomainTicket(model *models.TicketModel) *domain.Ticket {
	ticket := domain.Ticket{
		ID: model.ID,
		UserID: model.UserID,
		ChannelID: model.ChannelID,
		TicketName: model.TicketName,
		Status: domain.TicketStatus(model.Status),
		Description: model.Description,
		TxHash: model.TxHash,
		FreelancerID: model.FreelancerID,
		CreatedAt: model.CreatedAt,
	}
	if model.OrderJSON != "" {
		var order domain.Order
		if err := json.Unmarshal([]byte(model.OrderJSON), &order); err == nil {
			ticket.Order = &order
		}
	}
	return &ticket
}
