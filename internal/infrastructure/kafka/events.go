package kafka

import "time"

const (
	TicketEventsTopic  = "ticket-events"
	OrderEventsTopic   = "order-events"
	PaymentEventsTopic = "payment-events"
	ReportEventsTopic  = "report-events"
)

type TicketEvent struct {
	TicketID   string    `json:"ticket_id"`
	UserID 	   string    `json:"user_id"`
	TicketName string    `json:"ticket_name"`
	Status 	   string    `json:"status"`
	TxHash 	   string    `json:"tx_hash,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type OrderEvent struct {
	TicketID 	 string    `json:"ticket_id"`
	TicketName 	 string    `json:"ticket_name"`
	UserID 		 string    `json:"user_id"`
	FreelancerID string    `json:"freelancer_id,omitempty"`
	Service 	 string    `json:"service"`
	Budget 		 string    `json:"budget"`
	Deadline 	 string    `json:"deadline"`
	Status 		 string    `json:"status"`
	Timestamp 	 time.Time `json:"timestamp"`
}

type ReportEvent struct {
	ReportID   string    `json:"report_id"`
	ReporterID string    `json:"reporter_id"`
	Status 	   string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

type PaymentEvent struct {
	PaymentID string    `json:"payment_id"`
	PayerID   string    `json:"payer_id"`
	Status 	  string    `json:"status"`
	ActorID   string    `json:"actor_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
