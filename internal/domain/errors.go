package domain

import "errors"

var (
	ErrTicketNotFound 	   = errors.New("ticket not found")
	ErrOrderNotAttached    = errors.New("order form not attached to ticket")
	ErrApplicationNotFound = errors.New("application not found")
	ErrReportNotFound 	   = errors.New("report not found")
	ErrWalletNotLinked 	   = errors.New("wallet not linked")
	ErrPaymentNotFound 	   = errors.New("payment not found")
	ErrInvalidAddress 	   = errors.New("invalid address")
	ErrInvalidAmount 	   = errors.New("invalid amount")
	ErrInvalidTxHash 	   = errors.New("invalid transaction hash")
	ErrSessionActive 	   = errors.New("another flow is already active in this channel")
)
