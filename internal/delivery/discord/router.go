package discord

import (
	"log/slog"
	"strings"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/config"
	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/metrics"
)

// flowTimeouts collects the intake prompt windows in one place. Tests shorten
// them to drive the abandonment paths without waiting out the real windows.
type flowTimeouts struct {
	serviceSelect time.Duration
	orderAnswer   time.Duration
	orderConfirm  time.Duration
	cancelConfirm time.Duration
	applyService  time.Duration
	applyAnswer   time.Duration
	reportReason  time.Duration
	reportAnswer  time.Duration
}

func defaultFlowTimeouts() flowTimeouts {
	return flowTimeouts{
		serviceSelect: serviceSelectTimeout,
		orderAnswer:   orderAnswerTimeout,
		orderConfirm:  orderConfirmTimeout,
		cancelConfirm: cancelConfirmTimeout,
		applyService:  applyServiceTimeout,
		applyAnswer:   applyAnswerTimeout,
		reportReason:  reportReasonTimeout,
		reportAnswer:  reportAnswerTimeout,
	}
}

// Bot wires the chat events into flows. All dependencies are passed in at
// construction: no package-level contract or model registries.
type Bot struct {
	cfg 		 *config.DealBotConfig
	gw 			 Gateway
	dispatcher 	 *Dispatcher
	sessions 	 *SessionRegistry
	tickets 	 domain.TicketUsecase
	applications domain.ApplicationUsecase
	reports 	 domain.ReportUsecase
	wallets 	 domain.WalletUsecase
	payments 	 domain.PaymentUsecase
	chain 		 domain.ChainPort
	rates 		 domain.RatesPort
	metrics 	 *metrics.DealMetrics
	timeouts 	 flowTimeouts
	botUserID 	 string
}

func NewBot(
	cfg *config.DealBotConfig,
	gw Gateway,
	dispatcher *Dispatcher,
	tickets domain.TicketUsecase,
	applications domain.ApplicationUsecase,
	reports domain.ReportUsecase,
	wallets domain.WalletUsecase,
	payments domain.PaymentUsecase,
	chain domain.ChainPort,
	rates domain.RatesPort,
	m *metrics.DealMetrics,
	) *Bot {
	return &Bot{
		cfg: cfg,
		gw: gw,
		dispatcher: dispatcher,
		sessions: NewSessionRegistry(),
		tickets: tickets,
		applications: applications,
		reports: reports,
		wallets: wallets,
		payments: payments,
		chain: chain,
		rates: rates,
		metrics: m,
		timeouts: defaultFlowTimeouts(),
	}
}

func (b *Bot) SetBotUserID(id string) {
	b.botUserID = id
}

// HandleMessage routes an incoming chat message: first to any flow waiting
// on a reply, then to the text commands.
func (b *Bot) HandleMessage(ev *MessageEvent) {
	if ev.AuthorID == b.botUserID {
		return
	}
	if b.dispatcher.DispatchMessage(ev) {
		return
	}

	switch {
	case ev.Content == "!sendTicketButtons":
		if err := b.SendTicketPanel(ev.ChannelID); err != nil {
			slog.Error("failed to send ticket panel", "error", err.Error())
			b.gw.SendMessage(ev.ChannelID, "An error occurred while sending the ticket creation buttons.")
		}
	case ev.Content == "!start-escrow":
		go b.SendEscrowPanel(ev)
	case ev.Content == "!pay-hireatutor":
		go b.StartManualPayment(ev)
	case strings.HasPrefix(ev.Content, "!submit-proof"):
		go b.SubmitPaymentProof(ev)
	}
}

// HandleButton routes a button press: flow waiters first, then the global
// actions decoded from the customId. Presses on disabled controls decode to
// ActionUnknown and drop here without any state change.
func (b *Bot) HandleButton(ev *ButtonEvent) {
	if b.dispatcher.DispatchButton(ev) {
		return
	}

	action := DecodeAction(ev.CustomID)
	switch action.Kind {
	case ActionEntryOrder:
		go b.HandleTicketEntry(ev, domain.TicketKindOrder)
	case ActionEntryApply:
		go b.HandleTicketEntry(ev, domain.TicketKindApply)
	case ActionEntryReport:
		go b.HandleTicketEntry(ev, domain.TicketKindReport)

	case ActionOrderInProgress, ActionOrderDistress, ActionOrderSubmitted:
		go b.HandleStatusButton(ev, action)
	case ActionSubmitReview, ActionCloseTicket, ActionEscalate:
		go b.HandleFinalAction(ev, action)
	case ActionRate:
		go b.HandleRating(ev, action.Rating)

	case ActionStartEscrow:
		go b.HandleStartEscrow(ev)
	case ActionEscrowCurrency:
		go b.HandleEscrowCurrency(ev, action.Slug)
	case ActionConfirmPayment:
		go b.HandleDepositConfirmation(ev)
	case ActionCancelEscrow:
		b.respondEphemeral(ev, "❌ Escrow creation cancelled.")
	case ActionCheckBalance:
		go b.HandleBalanceCheck(ev)
	case ActionLinkWallet:
		go b.HandleLinkWallet(ev)
	case ActionAdminForceRelease, ActionAdminEmergencyWithdraw:
		b.HandleAdminEscrowAction(ev, action)

	case ActionCryptoCoin:
		b.HandleCryptoInstructions(ev, action.Slug)
	case ActionRemitly:
		b.HandleRemitlyInstructions(ev)
	case ActionNeedHelp:
		b.HandleNeedHelp(ev)
	case ActionAdminApprovePayment, ActionAdminReleasePayment:
		go b.HandlePaymentAdminAction(ev, action)

	case ActionApproveApplication, ActionRejectApplication:
		go b.HandleApplicationReview(ev, action)
	case ActionReportStatus:
		go b.HandleReportReview(ev, action)
	}
}

func (b *Bot) respondEphemeral(ev *ButtonEvent, content string) {
	if err := b.gw.Respond(ev, &OutboundMessage{Content: content}, true); err != nil {
		slog.Error("failed to respond to interaction", "custom_id", ev.CustomID, "error", err.Error())
	}
}

func (b *Bot) flowError(flow, channelID, content string) {
	b.metrics.FlowErrorsTotal.WithLabelValues(flow).Inc()
	b.gw.SendMessage(channelID, content)
}
