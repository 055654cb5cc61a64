package discord

import (
	"testing"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		customID string
		want     Action
	}{
		{"ticketOrderHere", Action{Kind: ActionEntryOrder}},
		{"ticketFreelancerApply", Action{Kind: ActionEntryApply}},
		{"ticketReportIssue", Action{Kind: ActionEntryReport}},
		{"confirm_order", Action{Kind: ActionConfirmOrder}},
		{"claim_order", Action{Kind: ActionClaimOrder}},
		{"order_in_progress", Action{Kind: ActionOrderInProgress}},
		{"service_web_dev", Action{Kind: ActionServiceSelect, Slug: "web_dev"}},
		{"escrow_usdc", Action{Kind: ActionEscrowCurrency, Slug: "usdc"}},
		{"crypto_BTC", Action{Kind: ActionCryptoCoin, Slug: "BTC"}},
		{"rate_7", Action{Kind: ActionRate, Rating: 7}},
		{"rate_11", Action{Kind: ActionUnknown}},
		{"rate_x", Action{Kind: ActionUnknown}},
		{"approve_abc123", Action{Kind: ActionApproveApplication, ID: "abc123"}},
		{"reject_abc123", Action{Kind: ActionRejectApplication, ID: "abc123"}},
		{"admin_approve_pay-1", Action{Kind: ActionAdminApprovePayment, ID: "pay-1"}},
		{"admin_release_pay-1", Action{Kind: ActionAdminReleasePayment, ID: "pay-1"}},
		{"report_underreview_REP-000001", Action{Kind: ActionReportStatus, ReportStatus: domain.ReportUnderReview, ID: "REP-000001"}},
		{"report_resolved_REP-000002", Action{Kind: ActionReportStatus, ReportStatus: domain.ReportResolved, ID: "REP-000002"}},
		{"report_dismiss_REP-000003", Action{Kind: ActionReportStatus, ReportStatus: domain.ReportDismissed, ID: "REP-000003"}},
		{"report_freelancer_scam", Action{Kind: ActionReportReason, Slug: "Freelancer Scammed Me"}},
		{"report_bogus", Action{Kind: ActionUnknown}},
		{"something_else", Action{Kind: ActionUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.customID, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeAction(tt.customID))
		})
	}
}

// Disabled controls keep their customId on the message but must never map
// onto a live handler.
func TestDecodeActionDisabledControls(t *testing.T) {
	for _, id := range []string{
		"approved_disabled",
		"rejected_disabled",
		"report_underreview_disabled",
		"report_resolved_disabled",
		"report_dismiss_disabled",
	} {
		assert.Equal(t, ActionUnknown, DecodeAction(id).Kind, id)
	}
}

func TestCustomIDRoundTrip(t *testing.T) {
	assert.Equal(t, "service_uiux", ServiceCustomID("uiux"))
	assert.Equal(t, "escrow_dai", EscrowCurrencyCustomID("dai"))
	assert.Equal(t, "rate_3", RateCustomID(3))
	assert.Equal(t, "report_resolved_REP-000009", ReportStatusCustomID(domain.ReportResolved, "REP-000009"))

	got := DecodeAction(AdminApproveCustomID("id-42"))
	assert.Equal(t, ActionAdminApprovePayment, got.Kind)
	assert.Equal(t, "id-42", got.ID)
}
