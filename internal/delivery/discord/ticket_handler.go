package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
)

const chainCallTimeout = 2 * time.Minute

// SendTicketPanel posts the entry panel with the three ticket buttons
func (b *Bot) SendTicketPanel(channelID string) error {
	_, err := b.gw.Send(channelID, &OutboundMessage{
		Embed: &Embed{
			Title:       "Welcome to Freelancers Palace — Web3 Talent Hub",
			Description: "Choose an action to interact with our decentralized freelance ecosystem:",
			Color:       0x0099ff,
		},
		Buttons: [][]Button{{
			{CustomID: "ticketOrderHere", Label: "📝 Order Here", Style: StylePrimary},
			{CustomID: "ticketFreelancerApply", Label: "💼 Apply as Freelancer", Style: StylePrimary},
			{CustomID: "ticketReportIssue", Label: "⚠️ Report an Issue", Style: StyleDanger},
		}},
	})
	return err
}

var entryEmbeds = map[domain.TicketKind]Embed{
	domain.TicketKindOrder: {
		Title:       "Order Ticket Created",
		Description: "A **Smart Contract Ticket** has been created for your order request! 🎉\n\nWe'll guide you through your order step by step.",
	},
	domain.TicketKindApply: {
		Title:       "Freelancer Application Ticket Created",
		Description: "A **Smart Contract Ticket** has been created for your application! 🌟\n\nFollow the steps to complete your profile.",
	},
	domain.TicketKindReport: {
		Title:       "Complaint Ticket Created",
		Description: "A **Smart Contract Ticket** has been created for your complaint! 📝\n\nPlease describe your issue in detail so we can resolve it.",
	},
}

// HandleTicketEntry opens a private ticket channel, persists the ticket,
// anchors it on-chain and hands off to the kind-specific intake. A guild
// without a configured category cannot create tickets at all.
func (b *Bot) HandleTicketEntry(ev *ButtonEvent, kind domain.TicketKind) {
	categoryID, ok := b.cfg.Discord.TicketCategories[ev.GuildID]
	if !ok {
		slog.Error("no ticket category configured", "guild_id", ev.GuildID)
		b.respondEphemeral(ev, "❌ Ticket creation failed: no valid category configured.")
		return
	}

	ticketName := fmt.Sprintf("ticket-%s-%s-%s", kind, ev.UserID, time.Now().Format("2006-01-02"))
	channelID, err := b.gw.CreateTicketChannel(ev.GuildID, categoryID, ticketName, ev.UserID)
	if err != nil {
		slog.Error("failed to create ticket channel", "ticket_name", ticketName, "error", err.Error())
		b.respondEphemeral(ev, "❌ Failed to create ticket channel. Please try again later.")
		return
	}

	ticket := &domain.Ticket{
		UserID:      ev.UserID,
		ChannelID:   channelID,
		TicketName:  ticketName,
		Status:      domain.TicketCreated,
		Description: fmt.Sprintf("%s ticket for user %s", kind, ev.Username),
	}
	if err := b.tickets.CreateTicket(ticket); err != nil {
		slog.Error("failed to save ticket", "ticket_name", ticketName, "error", err.Error())
		b.respondEphemeral(ev, "❌ Failed to create the ticket record. Please try again later.")
		return
	}
	b.metrics.TicketsCreatedTotal.WithLabelValues(string(kind), ev.GuildID).Inc()

	embed := entryEmbeds[kind]
	embed.Description += "\n\n**Transaction Status:** *Pending Escrow Agreement*"
	embed.Color = 0x4B9CD3
	embed.Footer = "Smart Contract Ticketing System"
	introID, err := b.gw.Send(channelID, &OutboundMessage{
		Content: fmt.Sprintf("<@%s>", ev.UserID),
		Embed:   &embed,
	})
	if err != nil {
		slog.Error("failed to send intro embed", "channel_id", channelID, "error", err.Error())
	}

	// Анкоринг в реестре тикетов. Без записи on-chain тикет не считается
	// созданным: флоу останавливается.
	ctx, cancel := context.WithTimeout(context.Background(), chainCallTimeout)
	txHash, err := b.chain.LogTicket(ctx, b.chain.MetadataHash(ticket.ID), "pending")
	cancel()
	if err != nil {
		b.metrics.ChainErrorsTotal.WithLabelValues("logTicket").Inc()
		slog.Error("failed to log ticket on-chain", "ticket_id", ticket.ID, "error", err.Error())
		b.respondEphemeral(ev, fmt.Sprintf("❌ Blockchain error: %v", err))
		return
	}
	if err := b.tickets.SetTxHash(ticket.ID, txHash); err != nil {
		slog.Error("failed to save tx hash", "ticket_id", ticket.ID, "error", err.Error())
	}
	if introID != "" {
		updated := embed
		updated.Description = entryEmbeds[kind].Description +
			fmt.Sprintf("\n\n**Transaction Status:** [View on Explorer](https://sepolia.etherscan.io/tx/%s)", txHash)
		if err := b.gw.EditMessage(channelID, introID, &OutboundMessage{Embed: &updated}); err != nil {
			slog.Error("failed to update intro embed", "channel_id", channelID, "error", err.Error())
		}
	}

	b.respondEphemeral(ev, fmt.Sprintf("✅ A **Smart Contract Ticket** has been created. Check <#%s> to proceed.", channelID))

	switch kind {
	case domain.TicketKindOrder:
		b.RunOrderIntake(ev.GuildID, channelID, ticket)
	case domain.TicketKindApply:
		b.RunApplicationIntake(channelID, ev.UserID, ev.Username)
	case domain.TicketKindReport:
		b.RunReportIntake(channelID, ev.UserID, ev.Username)
	}
}
