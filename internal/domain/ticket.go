package domain

import "time"

type TicketStatus string

const (
	TicketCreated  TicketStatus = "Created"
	TicketClaimed  TicketStatus = "Claimed"
	TicketClosed   TicketStatus = "Closed"
)

type TicketKind string

const (
	TicketKindOrder  TicketKind = "order"
	TicketKindApply  TicketKind = "apply"
	TicketKindReport TicketKind = "report"
)

// Order - анкета заказа, прикрепляется к тикету после завершения опроса
type Order struct {
	Service  string
	Answers  []QA
	Budget   string
	Deadline string
}

// QA keeps question/answer pairs in the order they were asked
type QA struct {
	Question string
	Answer   string
}

type Ticket struct {
	ID 			 string
	UserID 		 string
	ChannelID 	 string
	TicketName 	 string
	Status 		 TicketStatus
	Description  string
	TxHash 		 string
	FreelancerID string
	Order 		 *Order
	CreatedAt 	 time.Time
}

type TicketRepository interface {
	CreateTicket(ticket *Ticket) error
	GetTicketByID(ticketID string) (*Ticket, error)
	GetTicketByName(ticketName string) (*Ticket, error)
	GetTicketByChannelID(channelID string) (*Ticket, error)
	AttachOrder(ticketName string, order *Order) error
	UpdateTicketStatus(ticketID string, status TicketStatus) error
	SetFreelancer(ticketID, freelancerID string) error
	SetTxHash(ticketID, txHash string) error
	DeleteTicketByName(ticketName string) error
}

type TicketUsecase interface {
	CreateTicket(ticket *Ticket) error
	GetTicketByName(ticketName string) (*Ticket, error)
	GetTicketByChannelID(channelID string) (*Ticket, error)
	// WaitOrder re-reads the ticket until the order form is attached
	WaitOrder(ticketName string) (*Ticket, error)
	AttachOrder(ticketName string, order *Order) error
	SetTxHash(ticketID, txHash string) error
	ClaimTicket(ticketID, freelancerID string) error
	CloseTicket(ticketID string) error
	CancelTicket(ticketName string) error
}
