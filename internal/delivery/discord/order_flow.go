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

const (
	serviceSelectTimeout = time.Hour
	orderAnswerTimeout   = 90 * time.Second
	orderConfirmTimeout  = 60 * time.Second
	cancelConfirmTimeout = 30 * time.Second
	channelDeleteGrace   = 3 * time.Second
)

type serviceOption struct {
	Slug  string
	Label string
}

var orderServices = []serviceOption{
	{"academic_writing", "📄 Academic Writing"},
	{"exam_help", "🧪 Exam Help"},
	{"tutoring", "🎓 Tutoring Session"},
	{"graphic_design", "🎨 Graphic Design"},
	{"web_dev", "💻 Web Development"},
	{"uiux", "🧠 UI/UX Design"},
	{"writing", "✍️ Writing"},
	{"mobile_app", "📱 Mobile App Dev"},
	{"anime_art", "🧚 Anime/Character Art"},
	{"marketing", "📢 Marketing & SEO"},
	{"video_editing", "🎬 Video Editing"},
}

var orderQuestions = map[string][]string{
	"academic_writing": {
		"What subject or topic is the writing task about?",
		"What type of academic paper is it? (e.g., essay, research paper, report)",
		"What citation style is required? (e.g., APA, MLA, Chicago)",
		"How many words or pages should it be?",
		"Do you need any references or research included?",
	},
	"exam_help": {
		"What subject is the exam for?",
		"Is it timed or take-home?",
		"What format is the exam? (e.g., multiple choice, essays, calculations)",
		"What are your weak areas you'd like help with?",
		"When is the exam scheduled?",
	},
	"tutoring": {
		"What subject or topic do you need tutoring in?",
		"What is your current level or understanding of the topic?",
		"Do you prefer a live session or recorded materials?",
		"What is your availability for the tutoring session?",
		"Do you have specific questions or problem sets to work on?",
	},
	"graphic_design": {
		"What type of design do you need? (e.g., logo, banner, flyer)",
		"What message/emotion should your design convey?",
		"Where will this design be used? (e.g., print, web, social media)",
	},
	"web_dev": {
		"What kind of website do you want? (e.g., e-commerce, blog)",
		"Do you have a preferred tech stack or CMS?",
		"Do you need backend functionality as well?",
	},
	"uiux": {
		"Are you looking for UI, UX or both?",
		"What platform is this for? (e.g., mobile, web)",
		"Do you have wireframes or branding guidelines?",
	},
	"writing": {
		"What type of writing is this? (e.g., article, ad copy, technical)",
		"Who is the target audience?",
		"Do you have any references or tone preferences?",
	},
	"mobile_app": {
		"Do you need an app for Android, iOS or both?",
		"What core features should it include?",
		"Do you have UI designs already?",
	},
	"anime_art": {
		"What style of anime art do you want?",
		"Is this for personal use, merch, or promotion?",
		"Describe your character or idea.",
	},
	"marketing": {
		"What's your marketing goal? (e.g., traffic, conversions)",
		"Which platforms are you targeting?",
		"Do you need content creation, strategy, or both?",
	},
	"video_editing": {
		"What kind of video is this? (e.g., promo, vlog, explainer)",
		"How long is the raw footage?",
		"Do you need captions, effects, or background music?",
	},
}

// serviceButtonRows lays service buttons out five per row
func serviceButtonRows(options []serviceOption) [][]Button {
	var rows [][]Button
	for i := 0; i < len(options); i += 5 {
		end := i + 5
		if end > len(options) {
			end = len(options)
		}
		row := make([]Button, 0, end-i)
		for _, opt := range options[i:end] {
			row = append(row, Button{CustomID: ServiceCustomID(opt.Slug), Label: opt.Label, Style: StylePrimary})
		}
		rows = append(rows, row)
	}
	return rows
}

// RunOrderIntake drives the order questionnaire inside the ticket channel.
// Edit restarts the loop from service selection; cancel tears the whole
// ticket down after a yes/no confirmation.
func (b *Bot) RunOrderIntake(guildID, channelID string, ticket *domain.Ticket) {
	if err := b.sessions.Begin(channelID, ticket.UserID, "order"); err != nil {
		b.gw.SendMessage(channelID, "⚠️ You already have an active questionnaire here. Finish it first.")
		return
	}
	defer b.sessions.End(channelID, ticket.UserID)

	ctx := context.Background()
	for {
		done, err := b.runOrderRound(ctx, guildID, channelID, ticket)
		if err != nil {
			if errors.Is(err, ErrPromptTimeout) {
				b.metrics.IntakesAbandonedTotal.WithLabelValues("order").Inc()
			} else {
				slog.Error("order intake failed", "ticket_name", ticket.TicketName, "error", err.Error())
				b.flowError("order", channelID, "⚠️ An error occurred while processing your order. Please try again.")
			}
			return
		}
		if done {
			return
		}
		// edit requested, restart from service selection
	}
}

// runOrderRound runs one pass of the questionnaire. Returns done=false when
// the user asked to edit and the round should restart.
func (b *Bot) runOrderRound(ctx context.Context, guildID, channelID string, ticket *domain.Ticket) (bool, error) {
	if _, err := b.gw.Send(channelID, &OutboundMessage{
		Content: "✨ Please select the service you need:",
		Buttons: serviceButtonRows(orderServices),
	}); err != nil {
		return false, err
	}

	press, err := b.dispatcher.AwaitButton(ctx, func(ev *ButtonEvent) bool {
		return ev.ChannelID == channelID && ev.UserID == ticket.UserID &&
			DecodeAction(ev.CustomID).Kind == ActionServiceSelect
	}, b.timeouts.serviceSelect)
	if err != nil {
		if errors.Is(err, ErrPromptTimeout) {
			b.gw.SendMessage(channelID, "⏱️ Time's up! The service selection has expired.")
		}
		return false, err
	}
	slug := DecodeAction(press.CustomID).Slug
	label := slug
	for _, opt := range orderServices {
		if opt.Slug == slug {
			label = opt.Label
			break
		}
	}
	if err := b.gw.UpdateSource(press, &OutboundMessage{
		Content: fmt.Sprintf("✅ You selected **%s**", label),
	}); err != nil {
		slog.Error("failed to ack service selection", "error", err.Error())
	}

	answers, err := b.askQuestions(ctx, channelID, ticket.UserID, orderQuestions[slug], b.timeouts.orderAnswer)
	if err != nil {
		return false, err
	}
	budget, err := b.askOne(ctx, channelID, ticket.UserID, "💰 What is your estimated budget (USD)?", b.timeouts.orderAnswer)
	if err != nil {
		return false, err
	}
	deadline, err := b.askOne(ctx, channelID, ticket.UserID, "📆 When is your ideal deadline?", b.timeouts.orderAnswer)
	if err != nil {
		return false, err
	}

	order := &domain.Order{
		Service:  label,
		Answers:  answers,
		Budget:   budget.Content,
		Deadline: deadline.Content,
	}

	summary := &Embed{
		Title:       "📝 Order Summary",
		Color:       0x00b894,
		Description: fmt.Sprintf("**Service:** %s\n**Budget:** $%s\n**Deadline:** %s", order.Service, order.Budget, order.Deadline),
	}
	for _, qa := range answers {
		summary.Fields = append(summary.Fields, EmbedField{Name: qa.Question, Value: qa.Answer})
	}
	if _, err := b.gw.Send(channelID, &OutboundMessage{
		Embed: summary,
		Buttons: [][]Button{{
			{CustomID: "confirm_order", Label: "✅ Confirm Order", Style: StyleSuccess},
			{CustomID: "edit_order", Label: "🔁 Edit Order", Style: StylePrimary},
			{CustomID: "cancel_order", Label: "❌ Cancel Order", Style: StyleDanger},
		}},
	}); err != nil {
		return false, err
	}

	// The form is attached before confirmation so the matching side can
	// already read it.
	if err := b.tickets.AttachOrder(ticket.TicketName, order); err != nil {
		return false, err
	}

	for {
		decision, err := b.dispatcher.AwaitButton(ctx, func(ev *ButtonEvent) bool {
			if ev.ChannelID != channelID || ev.UserID != ticket.UserID {
				return false
			}
			kind := DecodeAction(ev.CustomID).Kind
			return kind == ActionConfirmOrder || kind == ActionEditOrder || kind == ActionCancelOrder
		}, b.timeouts.orderConfirm)
		if err != nil {
			return false, err
		}

		switch DecodeAction(decision.CustomID).Kind {
		case ActionConfirmOrder:
			b.respondEphemeral(decision, "✅ Order confirmed. We are now matching you with a freelancer!")
			b.metrics.IntakesFinalizedTotal.WithLabelValues("order").Inc()
			go b.RunMatching(guildID, channelID, ticket.TicketName)
			return true, nil
		case ActionEditOrder:
			b.respondEphemeral(decision, "🔁 Restarting order process...")
			return false, nil
		default: // cancel
			b.respondEphemeral(decision, "⚠️ Are you sure you want to cancel this order and close the ticket? Reply with `yes` or `no`.")
			confirm, err := b.dispatcher.AwaitMessage(ctx, channelID, ticket.UserID, b.timeouts.cancelConfirm)
			if err == nil && strings.EqualFold(strings.TrimSpace(confirm.Content), "yes") {
				b.gw.SendMessage(channelID, "❌ Order cancelled. This ticket will now be closed.")
				if err := b.tickets.CancelTicket(ticket.TicketName); err != nil {
					slog.Error("failed to cancel ticket", "ticket_name", ticket.TicketName, "error", err.Error())
				}
				b.metrics.IntakesAbandonedTotal.WithLabelValues("order").Inc()
				time.Sleep(channelDeleteGrace)
				if err := b.gw.DeleteChannel(channelID); err != nil {
					slog.Error("failed to delete ticket channel", "channel_id", channelID, "error", err.Error())
				}
				return true, nil
			}
			// the summary stays live, go back to waiting for a decision
			b.gw.SendMessage(channelID, "✅ Cancellation aborted. Returning to order summary.")
		}
	}
}
