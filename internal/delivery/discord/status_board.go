package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
)

const reviewCommentTimeout = 3 * time.Minute

// DeployStatusBoard drops the status controls into a claimed ticket channel
func (b *Bot) DeployStatusBoard(channelID string) {
	if _, err := b.gw.Send(channelID, &OutboundMessage{
		Content: "🔧 **Manage order status:**",
		Buttons: [][]Button{{
			{CustomID: "order_in_progress", Label: "✅ Order In Progress", Style: StyleSuccess},
			{CustomID: "order_distress", Label: "🚨 Order Distress", Style: StyleDanger},
			{CustomID: "order_submitted", Label: "📦 Order Submitted", Style: StylePrimary},
		}},
	}); err != nil {
		slog.Error("failed to deploy status board", "channel_id", channelID, "error", err.Error())
	}
}

func (b *Bot) ticketForChannel(ev *ButtonEvent) (*domain.Ticket, bool) {
	ticket, err := b.tickets.GetTicketByChannelID(ev.ChannelID)
	if err != nil {
		if !errors.Is(err, domain.ErrTicketNotFound) {
			slog.Error("failed to load ticket", "channel_id", ev.ChannelID, "error", err.Error())
		}
		b.respondEphemeral(ev, "⚠️ Ticket data not found.")
		return nil, false
	}
	return ticket, true
}

// HandleStatusButton enforces who may press which status control: the
// freelancer drives progress, only the client may flag distress.
func (b *Bot) HandleStatusButton(ev *ButtonEvent, action Action) {
	ticket, ok := b.ticketForChannel(ev)
	if !ok {
		return
	}

	switch action.Kind {
	case ActionOrderInProgress:
		if ev.UserID != ticket.FreelancerID {
			b.respondEphemeral(ev, "❌ Only the assigned freelancer can do that.")
			return
		}
		if err := b.gw.Respond(ev, &OutboundMessage{
			Content: fmt.Sprintf("🟢 <@%s>, your freelancer has marked the order as in progress.", ticket.UserID),
		}, false); err != nil {
			slog.Error("failed to post status update", "error", err.Error())
		}
	case ActionOrderDistress:
		if ev.UserID != ticket.UserID {
			b.respondEphemeral(ev, "❌ Only the client can flag distress.")
			return
		}
		if err := b.gw.Respond(ev, &OutboundMessage{
			Content: fmt.Sprintf("🚨 <@%s>, the client is concerned about the deadline. Please respond.", ticket.FreelancerID),
		}, false); err != nil {
			slog.Error("failed to post distress notice", "error", err.Error())
		}
	case ActionOrderSubmitted:
		if ev.UserID != ticket.FreelancerID {
			b.respondEphemeral(ev, "❌ Only the assigned freelancer can do that.")
			return
		}
		if err := b.gw.Respond(ev, &OutboundMessage{
			Content: fmt.Sprintf("📦 <@%s>, your freelancer has submitted the order.", ticket.UserID),
		}, false); err != nil {
			slog.Error("failed to post submission notice", "error", err.Error())
		}
		if _, err := b.gw.Send(ev.ChannelID, &OutboundMessage{
			Content: "📌 **Final actions:**",
			Buttons: [][]Button{{
				{CustomID: "submit_review", Label: "✍️ Submit Review", Style: StyleSuccess},
				{CustomID: "close_ticket", Label: "🛑 Close Ticket", Style: StyleDanger},
				{CustomID: "escalate", Label: "⚖️ Escalate", Style: StyleSecondary},
			}},
		}); err != nil {
			slog.Error("failed to send final actions", "channel_id", ev.ChannelID, "error", err.Error())
		}
	}
}

// HandleFinalAction routes the submit review / close / escalate controls
func (b *Bot) HandleFinalAction(ev *ButtonEvent, action Action) {
	ticket, ok := b.ticketForChannel(ev)
	if !ok {
		return
	}

	switch action.Kind {
	case ActionSubmitReview:
		if ev.UserID != ticket.UserID {
			b.respondEphemeral(ev, "❌ Only the client can submit a review.")
			return
		}
		stars := make([]Button, 0, 10)
		for n := 1; n <= 10; n++ {
			stars = append(stars, Button{CustomID: RateCustomID(n), Label: fmt.Sprintf("⭐ %d", n), Style: StylePrimary})
		}
		if err := b.gw.Respond(ev, &OutboundMessage{
			Content: "⭐️ Please rate the freelancer (1–10):",
			Buttons: [][]Button{stars[:5], stars[5:]},
		}, false); err != nil {
			slog.Error("failed to send rating buttons", "error", err.Error())
		}
	case ActionCloseTicket:
		if ev.UserID != ticket.UserID && !ev.IsAdmin {
			b.respondEphemeral(ev, "❌ Only the client or an admin can close this ticket.")
			return
		}
		if err := b.gw.Respond(ev, &OutboundMessage{Content: "🛑 Ticket will now close..."}, false); err != nil {
			slog.Error("failed to ack ticket close", "error", err.Error())
		}
		if err := b.tickets.CloseTicket(ticket.ID); err != nil {
			slog.Error("failed to close ticket", "ticket_id", ticket.ID, "error", err.Error())
		}
		time.Sleep(channelDeleteGrace)
		if err := b.gw.DeleteChannel(ev.ChannelID); err != nil {
			slog.Error("failed to delete ticket channel", "channel_id", ev.ChannelID, "error", err.Error())
		}
	case ActionEscalate:
		if err := b.gw.Respond(ev, &OutboundMessage{Content: "⚠️ Ticket escalated. A moderator will assist shortly."}, false); err != nil {
			slog.Error("failed to ack escalation", "error", err.Error())
		}
	}
}

// HandleRating collects the written review after a star rating and posts it
// to the review channel.
func (b *Bot) HandleRating(ev *ButtonEvent, rating int) {
	ticket, ok := b.ticketForChannel(ev)
	if !ok {
		return
	}
	if ev.UserID != ticket.UserID {
		b.respondEphemeral(ev, "❌ Only the client can submit a review.")
		return
	}
	if err := b.gw.Respond(ev, &OutboundMessage{
		Content: fmt.Sprintf("⭐ You rated **%d/10**. Now type your review (3 min):", rating),
	}, false); err != nil {
		slog.Error("failed to ack rating", "error", err.Error())
	}

	msg, err := b.dispatcher.AwaitMessage(context.Background(), ev.ChannelID, ticket.UserID, reviewCommentTimeout)
	if err != nil {
		return
	}

	review := &Embed{
		Title: "📝 New Client Review",
		Color: 0x00b894,
		Fields: []EmbedField{
			{Name: "Client", Value: fmt.Sprintf("<@%s>", ticket.UserID), Inline: true},
			{Name: "Freelancer", Value: fmt.Sprintf("<@%s>", ticket.FreelancerID), Inline: true},
			{Name: "Rating", Value: fmt.Sprintf("%s (%d/10)", strings.Repeat("⭐", rating), rating)},
			{Name: "Review", Value: msg.Content},
		},
	}
	if b.cfg.Discord.ReviewChannelID != "" {
		if _, err := b.gw.Send(b.cfg.Discord.ReviewChannelID, &OutboundMessage{Embed: review}); err != nil {
			slog.Error("failed to post review", "error", err.Error())
		}
	}
	b.gw.SendMessage(ev.ChannelID, "✅ Thank you! Your review has been posted.")
}
