package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const poolPostLifetime = 24 * time.Hour

// RunMatching posts a confirmed order to the guild's pool channel and waits
// for a freelancer to claim it. Rejections keep the post alive; the post
// expires after 24 hours without a claim.
func (b *Bot) RunMatching(guildID, ticketChannelID, ticketName string) {
	poolChannelID, ok := b.cfg.Discord.PoolChannels[guildID]
	if !ok {
		slog.Warn("no pool channel configured", "guild_id", guildID)
		b.gw.SendMessage(ticketChannelID, "⚠️ Order not found. Please try confirming again or contact support.")
		return
	}

	ticket, err := b.tickets.WaitOrder(ticketName)
	if err != nil {
		slog.Error("order form not found for matching", "ticket_name", ticketName, "error", err.Error())
		b.gw.SendMessage(ticketChannelID, "⚠️ Order not found. Please try confirming again or contact support.")
		return
	}
	order := ticket.Order

	embed := &Embed{
		Title:       "📥 New Order Available",
		Color:       0x4B9CD3,
		Description: fmt.Sprintf("**Service:** %s\n**Budget:** $%s\n**Deadline:** %s", order.Service, order.Budget, order.Deadline),
		Footer:      "React within 24 hours to claim this job.",
	}
	for _, qa := range order.Answers {
		embed.Fields = append(embed.Fields, EmbedField{Name: qa.Question, Value: qa.Answer})
	}
	claimRow := [][]Button{{
		{CustomID: "claim_order", Label: "✅ Claim", Style: StyleSuccess},
		{CustomID: "reject_order", Label: "❌ Reject", Style: StyleDanger},
	}}

	postID, err := b.gw.Send(poolChannelID, &OutboundMessage{
		Content: fmt.Sprintf("<@&%s> A new order is available for claiming:", b.cfg.Discord.PoolRoleID),
		Embed:   embed,
		Buttons: claimRow,
	})
	if err != nil {
		slog.Error("failed to post order to pool", "ticket_name", ticketName, "error", err.Error())
		return
	}

	ctx := context.Background()
	postedAt := time.Now()
	deadline := postedAt.Add(poolPostLifetime)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		press, err := b.dispatcher.AwaitButton(ctx, func(ev *ButtonEvent) bool {
			if ev.ChannelID != poolChannelID || ev.MessageID != postID {
				return false
			}
			kind := DecodeAction(ev.CustomID).Kind
			return kind == ActionClaimOrder || kind == ActionRejectOrder
		}, remaining)
		if err != nil {
			break
		}

		if DecodeAction(press.CustomID).Kind == ActionRejectOrder {
			b.respondEphemeral(press, "No worries! We'll notify others.")
			if err := b.gw.EditMessage(poolChannelID, postID, &OutboundMessage{
				Content: fmt.Sprintf("📢 The previous freelancer passed on the order. <@&%s>, it's still up for grabs!", b.cfg.Discord.PoolRoleID),
				Embed:   embed,
				Buttons: claimRow,
			}); err != nil {
				slog.Error("failed to update pool post", "error", err.Error())
			}
			continue
		}

		// claim
		b.respondEphemeral(press, "🎉 You have claimed this ticket!")
		if err := b.tickets.ClaimTicket(ticket.ID, press.UserID); err != nil {
			slog.Error("failed to claim ticket", "ticket_id", ticket.ID, "error", err.Error())
			continue
		}
		b.metrics.OrdersClaimedTotal.WithLabelValues(order.Service).Inc()
		b.metrics.ClaimLatency.Observe(time.Since(postedAt).Seconds())

		if err := b.gw.GrantChannelAccess(ticketChannelID, press.UserID); err != nil {
			slog.Error("failed to grant channel access", "channel_id", ticketChannelID, "error", err.Error())
		}
		b.gw.SendMessage(ticketChannelID, fmt.Sprintf("👋 <@%s> has claimed this order! You now have access to this ticket.", press.UserID))
		b.DeployStatusBoard(ticketChannelID)

		if err := b.gw.EditMessage(poolChannelID, postID, &OutboundMessage{
			Content: fmt.Sprintf("✅ Claimed by <@%s>", press.UserID),
		}); err != nil {
			slog.Error("failed to close pool post", "error", err.Error())
		}
		return
	}

	// expired without a claim
	b.metrics.OrdersExpiredTotal.Inc()
	if err := b.gw.EditMessage(poolChannelID, postID, &OutboundMessage{Embed: embed}); err != nil {
		slog.Error("failed to strip expired pool post", "error", err.Error())
	}
	b.gw.SendMessage(poolChannelID, "⏰ The order post has expired after 24 hours.")
}
