package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
)

// ActionKind is the typed form of a button customId. CustomIds are decoded
// once at the boundary; record ids ride along in Action instead of being
// re-split out of delimited strings in every handler.
type ActionKind int

const (
	ActionUnknown ActionKind = iota

	// ticket entry panel
	ActionEntryOrder
	ActionEntryApply
	ActionEntryReport

	// order/application intake
	ActionServiceSelect
	ActionConfirmOrder
	ActionEditOrder
	ActionCancelOrder

	// pool matching + status board
	ActionClaimOrder
	ActionRejectOrder
	ActionOrderInProgress
	ActionOrderDistress
	ActionOrderSubmitted
	ActionSubmitReview
	ActionCloseTicket
	ActionEscalate
	ActionRate

	// escrow panel
	ActionStartEscrow
	ActionViewEscrows
	ActionReleaseFunds
	ActionCheckBalance
	ActionLinkWallet
	ActionEscrowCurrency
	ActionConfirmPayment
	ActionCancelEscrow
	ActionAdminForceRelease
	ActionAdminEmergencyWithdraw

	// manual payments
	ActionCryptoCoin
	ActionRemitly
	ActionNeedHelp
	ActionAdminApprovePayment
	ActionAdminReleasePayment

	// staff review
	ActionApproveApplication
	ActionRejectApplication
	ActionReportReason
	ActionReportStatus
)

type Action struct {
	Kind ActionKind
	// Slug carries a service slug, token key or coin symbol
	Slug string
	// ID carries an embedded record id (application, payment, report)
	ID string
	Rating 		 int
	ReportStatus domain.ReportStatus
}

var fixedActions = map[string]ActionKind{
	"ticketOrderHere": 		  ActionEntryOrder,
	"ticketFreelancerApply":  ActionEntryApply,
	"ticketReportIssue": 	  ActionEntryReport,
	"confirm_order": 		  ActionConfirmOrder,
	"edit_order": 			  ActionEditOrder,
	"cancel_order": 		  ActionCancelOrder,
	"claim_order": 			  ActionClaimOrder,
	"reject_order": 		  ActionRejectOrder,
	"order_in_progress": 	  ActionOrderInProgress,
	"order_distress": 		  ActionOrderDistress,
	"order_submitted": 		  ActionOrderSubmitted,
	"submit_review": 		  ActionSubmitReview,
	"close_ticket": 		  ActionCloseTicket,
	"escalate": 			  ActionEscalate,
	"start_escrow": 		  ActionStartEscrow,
	"view_my_escrows": 		  ActionViewEscrows,
	"release_funds": 		  ActionReleaseFunds,
	"check_flr": 			  ActionCheckBalance,
	"link_wallet": 			  ActionLinkWallet,
	"confirm_payment": 		  ActionConfirmPayment,
	"cancel_escrow": 		  ActionCancelEscrow,
	"admin_force_release": 	  ActionAdminForceRelease,
	"admin_emergency_withdraw": ActionAdminEmergencyWithdraw,
	"remitly": 				  ActionRemitly,
	"need_help": 			  ActionNeedHelp,
}

var reportStatuses = map[string]domain.ReportStatus{
	"underreview": domain.ReportUnderReview,
	"resolved": domain.ReportResolved,
	"dismiss": domain.ReportDismissed,
}

// reportReasons: the five report-type buttons carry a reason, not a record id
var reportReasons = map[string]string{
	"report_freelancer_scam": "Freelancer Scammed Me",
	"report_client_nonpay": "Client Refused to Pay",
	"report_harassment": "Harassment",
	"report_spam": "Spam",
	"report_service_fail": "Service Not Delivered",
}

func DecodeAction(customID string) Action {
	// disabled controls keep a customId for the UI but match no handler
	if strings.HasSuffix(customID, "_disabled") {
		return Action{Kind: ActionUnknown}
	}
	if kind, ok := fixedActions[customID]; ok {
		return Action{Kind: kind}
	}
	if reason, ok := reportReasons[customID]; ok {
		return Action{Kind: ActionReportReason, Slug: reason}
	}

	switch {
	case strings.HasPrefix(customID, "service_"):
		return Action{Kind: ActionServiceSelect, Slug: strings.TrimPrefix(customID, "service_")}
	case strings.HasPrefix(customID, "escrow_"):
		return Action{Kind: ActionEscrowCurrency, Slug: strings.TrimPrefix(customID, "escrow_")}
	case strings.HasPrefix(customID, "crypto_"):
		return Action{Kind: ActionCryptoCoin, Slug: strings.TrimPrefix(customID, "crypto_")}
	case strings.HasPrefix(customID, "rate_"):
		n, err := strconv.Atoi(strings.TrimPrefix(customID, "rate_"))
		if err != nil || n < 1 || n > 10 {
			return Action{Kind: ActionUnknown}
		}
		return Action{Kind: ActionRate, Rating: n}
	case strings.HasPrefix(customID, "approve_"):
		return Action{Kind: ActionApproveApplication, ID: strings.TrimPrefix(customID, "approve_")}
	case strings.HasPrefix(customID, "reject_"):
		return Action{Kind: ActionRejectApplication, ID: strings.TrimPrefix(customID, "reject_")}
	case strings.HasPrefix(customID, "admin_approve_"):
		return Action{Kind: ActionAdminApprovePayment, ID: strings.TrimPrefix(customID, "admin_approve_")}
	case strings.HasPrefix(customID, "admin_release_"):
		return Action{Kind: ActionAdminReleasePayment, ID: strings.TrimPrefix(customID, "admin_release_")}
	case strings.HasPrefix(customID, "report_"):
		rest := strings.TrimPrefix(customID, "report_")
		parts := strings.SplitN(rest, "_", 2)
		if len(parts) != 2 {
			return Action{Kind: ActionUnknown}
		}
		status, ok := reportStatuses[parts[0]]
		if !ok {
			return Action{Kind: ActionUnknown}
		}
		return Action{Kind: ActionReportStatus, ReportStatus: status, ID: parts[1]}
	}
	return Action{Kind: ActionUnknown}
}

// customId builders, so the encode side stays next to the decode side

func ServiceCustomID(slug string) string 		  { return "service_" + slug }
func EscrowCurrencyCustomID(key string) string 	  { return "escrow_" + key }
func CryptoCoinCustomID(coin string) string 	  { return "crypto_" + coin }
func RateCustomID(n int) string 				  { return fmt.Sprintf("rate_%d", n) }
func ApproveApplicationCustomID(id string) string { return "approve_" + id }
func RejectApplicationCustomID(id string) string  { return "reject_" + id }
func AdminApproveCustomID(paymentID string) string { return "admin_approve_" + paymentID }
func AdminReleaseCustomID(paymentID string) string { return "admin_release_" + paymentID }

func ReportStatusCustomID(status domain.ReportStatus, reportID string) string {
	for key, s := range reportStatuses {
		if s == status {
			return "report_" + key + "_" + reportID
		}
	}
	return ""
}
