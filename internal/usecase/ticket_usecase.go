package usecase

import (
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/kafka"
	"github.com/jaevor/go-nanoid"
)

const (
	orderLookupAttempts = 5
	orderLookupPause 	= 100 * time.Millisecond
)

type DefaultTicketUsecase struct {
	ticketRepo 	   domain.TicketRepository
	kafkaPublisher *kafka.DefaultKafkaPublisher
}

func NewDefaultTicketUsecase(
	ticketRepo domain.TicketRepository,
	kafkaPublisher *kafka.DefaultKafkaPublisher,
	) *DefaultTicketUsecase {
	return &DefaultTicketUsecase{
		ticketRepo: ticketRepo,
		kafkaPublisher: kafkaPublisher,
	}
}

func (uc *DefaultTicketUsecase) CreateTicket(ticket *domain.Ticket) error {
	if ticket.ID == "" {
		idGenerator, err := nanoid.Standard(15)
		if err != nil {
			return err
		}
		ticket.ID = idGenerator()
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketCreated
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now()
	}
	if err := uc.ticketRepo.CreateTicket(ticket); err != nil {
		return err
	}
	uc.publishTicket(ticket)
	return nil
}

func (uc *DefaultTicketUsecase) GetTicketByName(ticketName string) (*domain.Ticket, error) {
	return uc.ticketRepo.GetTicketByName(ticketName)
}

func (uc *DefaultTicketUsecase) GetTicketByChannelID(channelID string) (*domain.Ticket, error) {
	return uc.ticketRepo.GetTicketByChannelID(channelID)
}

func (uc *DefaultTicketUsecase) SetTxHash(ticketID, txHash string) error {
	return uc.ticketRepo.SetTxHash(ticketID, txHash)
}

// WaitOrder re-reads the ticket until the order form shows up. The intake
// and matching sides run concurrently, so the form may not be attached yet
// when matching starts.
func (uc *DefaultTicketUsecase) WaitOrder(ticketName string) (*domain.Ticket, error) {
	var ticket *domain.Ticket
	var err error
	for i := 0; i < orderLookupAttempts; i++ {
		ticket, err = uc.ticketRepo.GetTicketByName(ticketName)
		if err == nil && ticket.Order != nil {
			return ticket, nil
		}
		time.Sleep(orderLookupPause)
	}
	if err != nil {
		return nil, err
	}
	return nil, domain.ErrOrderNotAttached
}

func (uc *DefaultTicketUsecase) AttachOrder(ticketName string, order *domain.Order) error {
	if err := uc.ticketRepo.AttachOrder(ticketName, order); err != nil {
		return err
	}
	ticket, err := uc.ticketRepo.GetTicketByName(ticketName)
	if err != nil {
		return nil
	}
	uc.publishOrder(kafka.OrderEvent{
		TicketID: ticket.ID,
		TicketName: ticket.TicketName,
		UserID: ticket.UserID,
		Service: order.Service,
		Budget: order.Budget,
		Deadline: order.Deadline,
		Status: "📥 Заказ сформирован",
		Timestamp: time.Now(),
	})
	return nil
}

func (uc *DefaultTicketUsecase) ClaimTicket(ticketID, freelancerID string) error {
	if err := uc.ticketRepo.SetFreelancer(ticketID, freelancerID); err != nil {
		return err
	}
	if err := uc.ticketRepo.UpdateTicketStatus(ticketID, domain.TicketClaimed); err != nil {
		return err
	}
	ticket, err := uc.ticketRepo.GetTicketByID(ticketID)
	if err != nil {
		return nil
	}
	event := kafka.OrderEvent{
		TicketID: ticket.ID,
		TicketName: ticket.TicketName,
		UserID: ticket.UserID,
		FreelancerID: freelancerID,
		Status: "✅ Заказ разобран",
		Timestamp: time.Now(),
	}
	if ticket.Order != nil {
		event.Service = ticket.Order.Service
	}
	uc.publishOrder(event)
	return nil
}

// CloseTicket removes the record: closed tickets are not kept, only their
// review and events outlive them.
func (uc *DefaultTicketUsecase) CloseTicket(ticketID string) error {
	ticket, err := uc.ticketRepo.GetTicketByID(ticketID)
	if err != nil {
		return err
	}
	uc.publishTicket(&domain.Ticket{
		ID:         ticket.ID,
		UserID:     ticket.UserID,
		TicketName: ticket.TicketName,
		Status:     domain.TicketClosed,
		TxHash:     ticket.TxHash,
	})
	return uc.ticketRepo.DeleteTicketByName(ticket.TicketName)
}

func (uc *DefaultTicketUsecase) CancelTicket(ticketName string) error {
	return uc.ticketRepo.DeleteTicketByName(ticketName)
}

func (uc *DefaultTicketUsecase) publishOrder(event kafka.OrderEvent) {
	if uc.kafkaPublisher == nil {
		return
	}
	uc.kafkaPublisher.PublishOrder(event)
}

func (uc *DefaultTicketUsecase) publishTicket(ticket *domain.Ticket) {
	if uc.kafkaPublisher == nil {
		return
	}
	uc.kafkaPublisher.PublishTicket(kafka.TicketEvent{
		TicketID: ticket.ID,
		UserID: ticket.UserID,
		TicketName: ticket.TicketName,
		Status: string(ticket.Status),
		TxHash: ticket.TxHash,
		Timestamp: time.Now(),
	})
}
