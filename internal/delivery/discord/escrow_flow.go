package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/chain"
)

const (
	addressPromptTimeout = 30 * time.Second
	amountPromptTimeout  = 30 * time.Second
	txHashPromptTimeout  = 60 * time.Second
)

func priceLine(prices map[string]float64, id string) string {
	if v, ok := prices[id]; ok {
		return fmt.Sprintf("%.2f", v)
	}
	return "N/A"
}

// SendEscrowPanel replies to !start-escrow with the escrow action panel.
// Price fetch failures degrade the footer to N/A instead of blocking the
// panel.
func (b *Bot) SendEscrowPanel(ev *MessageEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	prices, err := b.rates.GetPrices(ctx)
	cancel()
	if err != nil {
		slog.Error("failed to fetch prices", "error", err.Error())
		prices = nil
	}

	buttons := [][]Button{
		{
			{CustomID: "start_escrow", Label: "💵 Start New Escrow", Style: StylePrimary},
			{CustomID: "view_my_escrows", Label: "📜 View My Escrows", Style: StyleSecondary},
			{CustomID: "release_funds", Label: "✅ Release Funds", Style: StyleSuccess},
			{CustomID: "check_flr", Label: "💰 My FLR Balance", Style: StyleSecondary},
			{CustomID: "link_wallet", Label: "🔗 Link Wallet", Style: StylePrimary},
		},
		// админские кнопки видны всем, права проверяются на нажатии
		{
			{CustomID: "admin_force_release", Label: "🔥 Admin Force Release", Style: StyleDanger},
			{CustomID: "admin_emergency_withdraw", Label: "🚨 Emergency Withdraw", Style: StyleDanger},
		},
	}

	if _, err := b.gw.Send(ev.ChannelID, &OutboundMessage{
		Embed: &Embed{
			Title:       "🎛️ Escrow Service Panel",
			Description: "Please choose an action to proceed.",
			Color:       0x3498db,
			Fields: []EmbedField{
				{Name: "💵 Start Escrow", Value: "Create a new escrow.", Inline: true},
				{Name: "📜 View My Escrows", Value: "See your active and past escrows.", Inline: true},
			},
			Footer: fmt.Sprintf("Powered by Your Escrow Service | BTC: $%s | ETH: $%s | MATIC: $%s",
				priceLine(prices, "bitcoin"), priceLine(prices, "ethereum"), priceLine(prices, "matic-network")),
		},
		Buttons: buttons,
	}); err != nil {
		slog.Error("failed to send escrow panel", "error", err.Error())
		b.gw.SendMessage(ev.ChannelID, "⚠️ An error occurred while processing the escrow command.")
	}
}

// HandleStartEscrow shows the currency choices
func (b *Bot) HandleStartEscrow(ev *ButtonEvent) {
	row := make([]Button, 0, len(domain.SupportedTokens))
	for i, token := range domain.SupportedTokens {
		style := StyleSecondary
		if i == 0 {
			style = StylePrimary
		}
		row = append(row, Button{
			CustomID: EscrowCurrencyCustomID(token.Key),
			Label:    "💰 " + token.Name,
			Style:    style,
		})
	}
	if err := b.gw.Respond(ev, &OutboundMessage{
		Content: "💵 Choose the currency you want to use for escrow:",
		Buttons: [][]Button{row},
	}, true); err != nil {
		slog.Error("failed to send currency choices", "error", err.Error())
	}
}

// HandleEscrowCurrency walks the client through the two-step deposit prompt:
// freelancer address, then amount. A bad answer aborts with a restart hint
// instead of re-prompting.
func (b *Bot) HandleEscrowCurrency(ev *ButtonEvent, key string) {
	token, ok := domain.TokenByKey(key)
	if !ok {
		return
	}
	ctx := context.Background()

	b.respondEphemeral(ev, "📝 Please enter the **freelancer's** Ethereum address (0x…):")
	addrMsg, err := b.dispatcher.AwaitMessage(ctx, ev.ChannelID, ev.UserID, addressPromptTimeout)
	if err != nil {
		return
	}
	freelancerAddr := strings.TrimSpace(addrMsg.Content)
	if !chain.IsHexAddress(freelancerAddr) {
		b.gw.SendMessage(ev.ChannelID, "❌ Invalid address! Start over with `!start-escrow`.")
		return
	}

	if _, err := b.gw.SendMessage(ev.ChannelID,
		fmt.Sprintf("📝 Enter the amount of **%s** to escrow **for %s**:", token.Name, freelancerAddr)); err != nil {
		return
	}
	amtMsg, err := b.dispatcher.AwaitMessage(ctx, ev.ChannelID, ev.UserID, amountPromptTimeout)
	if err != nil {
		return
	}
	amountInput := strings.TrimSpace(amtMsg.Content)
	if _, err := chain.ToBaseUnits(amountInput, token.Decimals); err != nil {
		b.gw.SendMessage(ev.ChannelID, "❌ Invalid number! Start over with `!start-escrow`.")
		return
	}

	if _, err := b.gw.Send(ev.ChannelID, &OutboundMessage{
		Embed: &Embed{
			Title: "💳 Deposit Instructions",
			Description: fmt.Sprintf(
				"Please send **%s %s** from your wallet to our Escrow contract:\n`%s`\n\nOnce confirmed, click **🟢 I have paid** below and paste your TX hash.",
				amountInput, token.Name, b.chain.EscrowAddress()),
			Color: 0x2ECC71,
		},
		Buttons: [][]Button{{
			{CustomID: "confirm_payment", Label: "🟢 I have paid", Style: StyleSuccess},
			{CustomID: "cancel_escrow", Label: "❌ Cancel Escrow", Style: StyleDanger},
		}},
	}); err != nil {
		slog.Error("failed to send deposit instructions", "error", err.Error())
	}
}

// HandleDepositConfirmation verifies a user-supplied transaction hash against
// the escrow contract's EscrowCreated event.
func (b *Bot) HandleDepositConfirmation(ev *ButtonEvent) {
	b.respondEphemeral(ev, "📝 Paste your transaction hash (0x...):")
	msg, err := b.dispatcher.AwaitMessage(context.Background(), ev.ChannelID, ev.UserID, txHashPromptTimeout)
	if err != nil {
		return
	}
	txHash := strings.TrimSpace(msg.Content)
	if !chain.IsTxHash(txHash) {
		b.gw.SendMessage(ev.ChannelID, "❌ Invalid transaction hash!")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), chainCallTimeout)
	deposit, err := b.chain.VerifyEscrowDeposit(ctx, txHash)
	cancel()
	if err != nil {
		b.metrics.ChainErrorsTotal.WithLabelValues("verifyEscrowDeposit").Inc()
		slog.Error("failed to verify deposit", "tx_hash", txHash, "error", err.Error())
		b.gw.SendMessage(ev.ChannelID, "❌ Could not verify payment on-chain.")
		return
	}
	b.gw.SendMessage(ev.ChannelID, fmt.Sprintf("✅ Payment confirmed! Your Escrow ID is **%s**.", deposit.EscrowID.String()))
}

// HandleBalanceCheck reads the reward token balance of the user's linked wallet
func (b *Bot) HandleBalanceCheck(ev *ButtonEvent) {
	address, err := b.wallets.GetAddress(ev.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotLinked) {
			b.respondEphemeral(ev, "❌ Please link your wallet first.")
			return
		}
		slog.Error("failed to load wallet", "user_id", ev.UserID, "error", err.Error())
		b.respondEphemeral(ev, "⚠️ An error occurred.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), chainCallTimeout)
	raw, err := b.chain.TokenBalance(ctx, address)
	cancel()
	if err != nil {
		b.metrics.ChainErrorsTotal.WithLabelValues("balanceOf").Inc()
		slog.Error("failed to read token balance", "address", address, "error", err.Error())
		b.respondEphemeral(ev, "⚠️ An error occurred.")
		return
	}

	if err := b.gw.Respond(ev, &OutboundMessage{
		Embed: &Embed{
			Title:       "💰 Your FLR Balance",
			Description: fmt.Sprintf("You currently have **%s** FLR tokens.", chain.FromBaseUnits(raw, 18)),
			Color:       0xF1C40F,
		},
	}, true); err != nil {
		slog.Error("failed to send balance", "error", err.Error())
	}
}

// HandleLinkWallet prompts for an address and upserts the user's wallet link
func (b *Bot) HandleLinkWallet(ev *ButtonEvent) {
	b.respondEphemeral(ev, "📝 Please paste your Ethereum wallet address (0x…):")
	msg, err := b.dispatcher.AwaitMessage(context.Background(), ev.ChannelID, ev.UserID, addressPromptTimeout)
	if err != nil {
		return
	}
	address := strings.TrimSpace(msg.Content)
	if !chain.IsHexAddress(address) {
		b.gw.SendMessage(ev.ChannelID, "❌ Invalid address! Please try again by clicking 🔗 Link Wallet.")
		return
	}
	if err := b.wallets.LinkWallet(ev.UserID, address); err != nil {
		slog.Error("failed to link wallet", "user_id", ev.UserID, "error", err.Error())
		b.gw.SendMessage(ev.ChannelID, "⚠️ An error occurred while saving your wallet.")
		return
	}
	b.gw.SendMessage(ev.ChannelID, fmt.Sprintf("✅ Wallet linked: `%s`", address))
}

// HandleAdminEscrowAction acknowledges the privileged panel buttons
func (b *Bot) HandleAdminEscrowAction(ev *ButtonEvent, action Action) {
	if !ev.IsAdmin {
		b.respondEphemeral(ev, "❌ You lack permissions.")
		return
	}
	name := "force release"
	if action.Kind == ActionAdminEmergencyWithdraw {
		name = "emergency withdraw"
	}
	slog.Info("admin escrow action", "action", name, "user_id", ev.UserID)
	b.respondEphemeral(ev, fmt.Sprintf("⚠️ Admin initiated: %s.", name))
}
