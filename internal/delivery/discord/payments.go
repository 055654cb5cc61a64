package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
)

// cryptoAddresses are the off-chain deposit addresses for manual payments
var cryptoAddresses = map[string]string{
	"BTC":  "1DVwEnVaHbM5PWLzPTVKd9tHn3Wcckw7Dh",
	"ETH":  "0xd11412def47a98eb1221b07a5400d9ff36e976de",
	"USDT": "0xd11412def47a98eb1221b07a5400d9ff36e976de",
	"TRX":  "TCW5k8N59vGPWFTvMufYw3h63HbTV6cWpr",
}

var cryptoCoinOrder = []string{"BTC", "ETH", "USDT", "TRX"}

// StartManualPayment handles !pay-hireatutor: a pending payment record is
// created immediately, and the admin controls carry its exact id.
func (b *Bot) StartManualPayment(ev *MessageEvent) {
	payment, err := b.payments.StartPayment(ev.AuthorID)
	if err != nil {
		slog.Error("failed to start payment", "payer_id", ev.AuthorID, "error", err.Error())
		b.flowError("payment", ev.ChannelID, "⚠️ Could not start the payment session. Please try again later.")
		return
	}

	cryptoRow := make([]Button, 0, len(cryptoCoinOrder))
	for _, coin := range cryptoCoinOrder {
		cryptoRow = append(cryptoRow, Button{CustomID: CryptoCoinCustomID(coin), Label: "💰 " + coin, Style: StyleSecondary})
	}
	if _, err := b.gw.Send(ev.ChannelID, &OutboundMessage{
		Content: fmt.Sprintf("<@%s>", ev.AuthorID),
		Embed: &Embed{
			Title:       "💰 Payment Options",
			Description: "Select payment method below.\n\nAfter sending payment, **use `!submit-proof` and attach your screenshot.**",
			Color:       0xf39c12,
		},
		Buttons: [][]Button{
			cryptoRow,
			{
				{CustomID: "remitly", Label: "💸 Pay via Remitly", Style: StylePrimary},
				{CustomID: "need_help", Label: "❓ Need Help", Style: StyleDanger},
			},
		},
	}); err != nil {
		slog.Error("failed to send payment options", "error", err.Error())
		return
	}

	if _, err := b.gw.Send(ev.ChannelID, &OutboundMessage{
		Content: fmt.Sprintf("<@&%s> Payment queued for <@%s>", b.cfg.Discord.AdminRoleID, ev.AuthorID),
		Embed: &Embed{
			Title:       "Admin Controls",
			Description: fmt.Sprintf("Review payment for <@%s>.", ev.AuthorID),
			Color:       0x2ecc71,
		},
		Buttons: [][]Button{{
			{CustomID: AdminApproveCustomID(payment.ID), Label: "✅ Approve Payment", Style: StyleSuccess},
			{CustomID: AdminReleaseCustomID(payment.ID), Label: "💸 Release Payment", Style: StylePrimary},
		}},
	}); err != nil {
		slog.Error("failed to send admin controls", "error", err.Error())
	}
}

// SubmitPaymentProof handles !submit-proof: text after the command plus the
// first attachment become the proof of the payer's latest pending payment.
func (b *Bot) SubmitPaymentProof(ev *MessageEvent) {
	proofText := strings.TrimSpace(strings.TrimPrefix(ev.Content, "!submit-proof"))
	proofImage := ""
	if len(ev.Attachments) > 0 {
		proofImage = ev.Attachments[0]
	}

	payment, err := b.payments.SubmitProof(ev.AuthorID, proofText, proofImage)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			b.gw.SendMessage(ev.ChannelID, "❌ No pending payment found.")
			return
		}
		slog.Error("failed to save proof", "payer_id", ev.AuthorID, "error", err.Error())
		b.flowError("payment", ev.ChannelID, "⚠️ Could not save your proof. Please try again later.")
		return
	}

	embed := &Embed{
		Title: "📤 Payment Proof Submitted",
		Color: 0x95a5a6,
		Fields: []EmbedField{
			{Name: "Student", Value: fmt.Sprintf("<@%s>", ev.AuthorID), Inline: true},
			{Name: "Proof Text", Value: orNA(proofText)},
		},
		Image: proofImage,
	}
	if _, err := b.gw.Send(ev.ChannelID, &OutboundMessage{
		Content: fmt.Sprintf("<@&%s> review <@%s>", b.cfg.Discord.AdminRoleID, ev.AuthorID),
		Embed:   embed,
		Buttons: [][]Button{{
			{CustomID: AdminApproveCustomID(payment.ID), Label: "✅ Approve", Style: StyleSuccess},
			{CustomID: AdminReleaseCustomID(payment.ID), Label: "💸 Release", Style: StylePrimary},
		}},
	}); err != nil {
		slog.Error("failed to post proof", "payment_id", payment.ID, "error", err.Error())
	}
}

// HandleCryptoInstructions shows the deposit address for the chosen coin
func (b *Bot) HandleCryptoInstructions(ev *ButtonEvent, coin string) {
	address, ok := cryptoAddresses[coin]
	if !ok {
		return
	}
	if err := b.gw.Respond(ev, &OutboundMessage{
		Embed: &Embed{
			Title:       fmt.Sprintf("%s Payment", coin),
			Description: fmt.Sprintf("Send the agreed amount to:\n`%s`\n\n📎 After payment, **use `!submit-proof` and attach your screenshot.**", address),
			Color:       0xf4c542,
		},
	}, true); err != nil {
		slog.Error("failed to send crypto instructions", "coin", coin, "error", err.Error())
	}
}

func (b *Bot) HandleRemitlyInstructions(ev *ButtonEvent) {
	if err := b.gw.Respond(ev, &OutboundMessage{
		Embed: &Embed{
			Title:       "📲 Remitly (M-Pesa) Payment",
			Description: "**Country:** Kenya\n**First Name:** Brian\n**Last Name:** Njata\n**Number:** +254706472326\n\n📎 After payment, **use `!submit-proof` and attach your screenshot.**",
			Color:       0x8e44ad,
		},
	}, true); err != nil {
		slog.Error("failed to send remitly instructions", "error", err.Error())
	}
}

func (b *Bot) HandleNeedHelp(ev *ButtonEvent) {
	if err := b.gw.Respond(ev, &OutboundMessage{
		Content: fmt.Sprintf("<@&%s> <@%s> needs help with payment.", b.cfg.Discord.AdminRoleID, ev.UserID),
	}, false); err != nil {
		slog.Error("failed to ping for help", "error", err.Error())
	}
}

// HandlePaymentAdminAction processes the approve/release controls. The
// payment id rides in the customId, so actions always target the exact
// record they were posted for.
func (b *Bot) HandlePaymentAdminAction(ev *ButtonEvent, action Action) {
	if !ev.IsAdmin && !ev.HasRole(b.cfg.Discord.AdminRoleID) {
		b.respondEphemeral(ev, "⛔ Not authorized.")
		return
	}

	var (
		payment *domain.Payment
		err     error
	)
	if action.Kind == ActionAdminApprovePayment {
		payment, err = b.payments.ApprovePayment(action.ID, ev.UserID)
	} else {
		payment, err = b.payments.ReleasePayment(action.ID, ev.UserID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			b.respondEphemeral(ev, "❌ No payment found for action.")
			return
		}
		slog.Error("failed to update payment", "payment_id", action.ID, "error", err.Error())
		b.respondEphemeral(ev, "❌ No payment found for action.")
		return
	}

	if action.Kind == ActionAdminApprovePayment {
		b.metrics.PaymentsApprovedTotal.Inc()
		if err := b.gw.Respond(ev, &OutboundMessage{
			Embed: &Embed{
				Title:       "✅ Payment Approved",
				Description: fmt.Sprintf("Payment for <@%s> has been approved.", payment.PayerID),
				Color:       0x2ecc71,
			},
		}, false); err != nil {
			slog.Error("failed to announce approval", "error", err.Error())
		}
		return
	}

	b.metrics.PaymentsReleasedTotal.Inc()
	if err := b.gw.Respond(ev, &OutboundMessage{
		Embed: &Embed{
			Title:       "💸 Payment Released",
			Description: fmt.Sprintf("Funds released to tutor for <@%s>.", payment.PayerID),
			Color:       0x3498db,
		},
	}, false); err != nil {
		slog.Error("failed to announce release", "error", err.Error())
	}
}
