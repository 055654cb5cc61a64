package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
)

const (
	applyServiceTimeout = 10 * time.Minute
	applyAnswerTimeout  = 60 * time.Second
)

var applicationServices = []serviceOption{
	{"graphic_design", "Graphic Design"},
	{"web_development", "Web Development"},
	{"full-stack_development", "Full-stack Development"},
	{"programming_backend", "Programming (Backend)"},
	{"ui/ux_design", "UI/UX Design"},
	{"mobile_app_development", "Mobile App Development"},
	{"anime_art", "Anime Art / Character Design"},
	{"writing", "Writing (Content Writing, Copywriting, etc.)"},
	{"video_editing", "Video Editing"},
	{"marketing", "Marketing (Social Media, SEO, etc.)"},
}

var applicationFieldNames = []string{
	"Experience", "Tools/Tech Used", "Challenge Solved", "Portfolio", "Availability", "Rates",
}

func applicationQuestions(service string) []string {
	return []string{
		fmt.Sprintf("Describe your experience with **%s**.", service),
		"What tools or technologies do you commonly use?",
		"Share a challenge you solved in a past project.",
		"Paste your **portfolio links** (GitHub, Behance, etc.)",
		"How many hours per week can you commit? (Include your timezone)",
		"What are your expected **rates**? (Hourly or Fixed)",
	}
}

// RunApplicationIntake interviews a freelancer applicant inside the ticket
// channel and posts the finished application for staff review.
func (b *Bot) RunApplicationIntake(channelID, userID, username string) {
	if err := b.sessions.Begin(channelID, userID, "application"); err != nil {
		b.gw.SendMessage(channelID, "⚠️ You already have an active questionnaire here. Finish it first.")
		return
	}
	defer b.sessions.End(channelID, userID)

	ctx := context.Background()
	if _, err := b.gw.Send(channelID, &OutboundMessage{
		Content: "🛠️ **Select the service you're applying for:**",
		Buttons: serviceButtonRows(applicationServices),
	}); err != nil {
		slog.Error("failed to send application services", "channel_id", channelID, "error", err.Error())
		return
	}

	press, err := b.dispatcher.AwaitButton(ctx, func(ev *ButtonEvent) bool {
		return ev.ChannelID == channelID && ev.UserID == userID &&
			DecodeAction(ev.CustomID).Kind == ActionServiceSelect
	}, b.timeouts.applyService)
	if err != nil {
		if errors.Is(err, ErrPromptTimeout) {
			b.gw.SendMessage(channelID, "⏱️ Time's up! The service selection has expired.")
			b.metrics.IntakesAbandonedTotal.WithLabelValues("application").Inc()
		}
		return
	}
	slug := DecodeAction(press.CustomID).Slug
	service := slug
	for _, opt := range applicationServices {
		if opt.Slug == slug {
			service = opt.Label
			break
		}
	}
	if err := b.gw.UpdateSource(press, &OutboundMessage{
		Embed: &Embed{
			Title:       fmt.Sprintf("📝 Interview: %s", service),
			Description: fmt.Sprintf("You're applying as a **%s** freelancer.\nLet's begin your interview.", service),
			Color:       0x0066ff,
		},
	}); err != nil {
		slog.Error("failed to ack application service selection", "error", err.Error())
	}

	qas, err := b.askQuestions(ctx, channelID, userID, applicationQuestions(service), b.timeouts.applyAnswer)
	if err != nil {
		if errors.Is(err, ErrPromptTimeout) {
			b.metrics.IntakesAbandonedTotal.WithLabelValues("application").Inc()
		}
		return
	}
	answers := make([]string, 0, len(qas))
	for _, qa := range qas {
		answers = append(answers, qa.Answer)
	}

	app := &domain.FreelancerApplication{
		UserID:   userID,
		Username: username,
		Service:  service,
		Answers:  answers,
	}
	if err := b.applications.SubmitApplication(app); err != nil {
		slog.Error("failed to save application", "user_id", userID, "error", err.Error())
		b.flowError("application", channelID, "❌ There was an error saving the application. Please try again later.")
		return
	}
	b.metrics.IntakesFinalizedTotal.WithLabelValues("application").Inc()

	summary := &Embed{
		Title:       "✅ Freelancer Interview Submitted",
		Description: fmt.Sprintf("**Applicant:** <@%s>\n**Service:** %s", userID, service),
		Color:       0x00cc66,
		Footer:      fmt.Sprintf("Application ID: %s", app.ID),
	}
	for i, name := range applicationFieldNames {
		value := "N/A"
		if i < len(answers) && answers[i] != "" {
			value = answers[i]
		}
		summary.Fields = append(summary.Fields, EmbedField{Name: name, Value: value})
	}

	if _, err := b.gw.Send(channelID, &OutboundMessage{
		Content: fmt.Sprintf("<@&%s> 📢 **New Freelancer Interview Submitted**", b.cfg.Discord.StaffRoleID),
		Embed:   summary,
		Buttons: [][]Button{{
			{CustomID: ApproveApplicationCustomID(app.ID), Label: "Approve ✅", Style: StyleSuccess},
			{CustomID: RejectApplicationCustomID(app.ID), Label: "Reject ❌", Style: StyleDanger},
		}},
	}); err != nil {
		slog.Error("failed to post application summary", "application_id", app.ID, "error", err.Error())
	}
}

// HandleApplicationReview processes a staff decision on an application
func (b *Bot) HandleApplicationReview(ev *ButtonEvent, action Action) {
	if !ev.IsAdmin && !ev.HasRole(b.cfg.Discord.StaffRoleID) {
		b.respondEphemeral(ev, "❌ You do not have permission to approve/reject applications.")
		return
	}

	var (
		app *domain.FreelancerApplication
		err error
	)
	if action.Kind == ActionApproveApplication {
		app, err = b.applications.ApproveApplication(action.ID)
	} else {
		app, err = b.applications.RejectApplication(action.ID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			b.respondEphemeral(ev, "❌ Application not found. It may have been deleted.")
			return
		}
		slog.Error("failed to update application", "application_id", action.ID, "error", err.Error())
		b.respondEphemeral(ev, "❌ An error occurred while processing the application.")
		return
	}

	if err := b.gw.UpdateSource(ev, &OutboundMessage{
		Embed: &Embed{
			Title:       "✅ Freelancer Interview Submitted",
			Description: fmt.Sprintf("**Applicant:** <@%s>\n**Service:** %s", app.UserID, app.Service),
			Color:       0x00cc66,
			Footer:      fmt.Sprintf("Application ID: %s • Status: %s", app.ID, app.Status),
		},
		Buttons: [][]Button{{
			{CustomID: "approved_disabled", Label: "Approved ✅", Style: StyleSuccess, Disabled: true},
			{CustomID: "rejected_disabled", Label: "Rejected ❌", Style: StyleDanger, Disabled: true},
		}},
	}); err != nil {
		slog.Error("failed to disable application buttons", "application_id", app.ID, "error", err.Error())
	}

	if err := b.gw.SendDM(app.UserID, fmt.Sprintf("📢 Your freelancer application for **%s** has been **%s**!", app.Service, app.Status)); err != nil {
		slog.Error("failed to notify applicant", "user_id", app.UserID, "error", err.Error())
	}
}
