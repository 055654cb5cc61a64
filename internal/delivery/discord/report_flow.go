package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
	"github.com/LavaJover/shvark-deal-bot/internal/usecase"
)

const (
	reportReasonTimeout = 10 * time.Minute
	reportAnswerTimeout = 120 * time.Second
)

var reportQuestions = []string{
	"📄 **Order ID / Ticket ID** (if available):",
	"📝 **Describe what happened**:",
	"👥 **Mention the users involved (if any)**:",
	"⏰ **When did it happen? (Date & Time)**:",
	"📎 **Upload any proof (screenshots, links, etc.)**:",
	"🎯 **What resolution are you seeking? (refund, warning, etc.)**:",
}

// RunReportIntake collects a complaint inside the ticket channel and posts
// it with staff triage buttons.
func (b *Bot) RunReportIntake(channelID, userID, username string) {
	if err := b.sessions.Begin(channelID, userID, "report"); err != nil {
		b.gw.SendMessage(channelID, "⚠️ You already have an active questionnaire here. Finish it first.")
		return
	}
	defer b.sessions.End(channelID, userID)

	ctx := context.Background()
	reasonRow := make([]Button, 0, len(reportReasonOrder))
	for _, id := range reportReasonOrder {
		reasonRow = append(reasonRow, Button{CustomID: id, Label: reportReasons[id], Style: StyleDanger})
	}
	if _, err := b.gw.Send(channelID, &OutboundMessage{
		Embed: &Embed{
			Title:       "🛡️ File a Report",
			Description: fmt.Sprintf("Hello <@%s>! Please choose the type of report you want to file:", userID),
			Color:       0xFF4444,
			Footer:      "Issue Reporting System",
		},
		Buttons: [][]Button{reasonRow},
	}); err != nil {
		slog.Error("failed to send report reasons", "channel_id", channelID, "error", err.Error())
		return
	}

	press, err := b.dispatcher.AwaitButton(ctx, func(ev *ButtonEvent) bool {
		return ev.ChannelID == channelID && ev.UserID == userID &&
			DecodeAction(ev.CustomID).Kind == ActionReportReason
	}, b.timeouts.reportReason)
	if err != nil {
		if errors.Is(err, ErrPromptTimeout) {
			b.metrics.IntakesAbandonedTotal.WithLabelValues("report").Inc()
		}
		return
	}
	reason := DecodeAction(press.CustomID).Slug
	if err := b.gw.UpdateSource(press, &OutboundMessage{
		Embed: &Embed{Description: fmt.Sprintf("Starting report for: **%s**", reason), Color: 0xFF6666},
	}); err != nil {
		slog.Error("failed to ack report reason", "error", err.Error())
	}

	// Attachments on any answer count as proof regardless of which question
	// they arrived with.
	answers := make([]string, 0, len(reportQuestions))
	var proofLinks []string
	for _, question := range reportQuestions {
		if _, err := b.gw.SendMessage(channelID, question); err != nil {
			return
		}
		reply, err := b.dispatcher.AwaitMessage(ctx, channelID, userID, b.timeouts.reportAnswer)
		if err != nil {
			if errors.Is(err, ErrPromptTimeout) {
				b.gw.SendMessage(channelID, "⏱️ Report timed out. Please start again.")
				b.metrics.IntakesAbandonedTotal.WithLabelValues("report").Inc()
			}
			return
		}
		answers = append(answers, reply.Content)
		proofLinks = append(proofLinks, reply.Attachments...)
	}

	report := &domain.Report{
		ReporterID:         userID,
		ReporterUsername:   username,
		ReportedUserIDs:    usecase.ExtractMentionedUsers(answers[2]),
		OrderIDOrTicketID:  orNA(answers[0]),
		Description:        fmt.Sprintf("%s\n\n%s", reason, answers[1]),
		ProofLinks:         proofLinks,
		ExpectedResolution: orNA(answers[5]),
		Status:             domain.ReportOpen,
	}
	if err := b.reports.FileReport(report); err != nil {
		slog.Error("failed to save report", "reporter_id", userID, "error", err.Error())
		b.flowError("report", channelID, "❌ Error saving report. Please try again.")
		return
	}
	b.metrics.IntakesFinalizedTotal.WithLabelValues("report").Inc()

	embed := &Embed{
		Title:       "🚨 New Report Submitted",
		Description: fmt.Sprintf("**Reporter:** <@%s>\n**Reason:** %s", userID, reason),
		Color:       0xFF5555,
		Footer:      fmt.Sprintf("Report ID: %s | Status: Open", report.ReportID),
		Fields: []EmbedField{
			{Name: "Order ID / Ticket ID", Value: orNA(answers[0])},
			{Name: "What Happened?", Value: orNA(answers[1])},
			{Name: "Involved Users", Value: orNA(answers[2])},
			{Name: "When It Happened", Value: orNA(answers[3])},
			{Name: "Expected Resolution", Value: orNA(answers[5])},
		},
	}
	if _, err := b.gw.Send(channelID, &OutboundMessage{
		Content: fmt.Sprintf("<@&%s> 📢 **New report received!**", b.cfg.Discord.StaffRoleID),
		Embed:   embed,
		Buttons: [][]Button{reportStatusButtons(report.ReportID, false)},
	}); err != nil {
		slog.Error("failed to post report", "report_id", report.ReportID, "error", err.Error())
		return
	}
	b.gw.SendMessage(channelID, "✅ Your report has been submitted and is under review!")
}

var reportReasonOrder = []string{
	"report_freelancer_scam",
	"report_client_nonpay",
	"report_harassment",
	"report_spam",
	"report_service_fail",
}

func reportStatusButtons(reportID string, disabled bool) []Button {
	suffix := reportID
	if disabled {
		suffix = "disabled"
	}
	return []Button{
		{CustomID: "report_underreview_" + suffix, Label: "🔎 Under Review", Style: StylePrimary, Disabled: disabled},
		{CustomID: "report_resolved_" + suffix, Label: "✅ Resolved", Style: StyleSuccess, Disabled: disabled},
		{CustomID: "report_dismiss_" + suffix, Label: "❌ Dismiss", Style: StyleDanger, Disabled: disabled},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// HandleReportReview processes a staff triage decision on a report
func (b *Bot) HandleReportReview(ev *ButtonEvent, action Action) {
	if !ev.IsAdmin && !ev.HasRole(b.cfg.Discord.StaffRoleID) {
		b.respondEphemeral(ev, "❌ You do not have permission to manage reports.")
		return
	}

	report, err := b.reports.SetReportStatus(action.ID, action.ReportStatus)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			b.respondEphemeral(ev, "❌ Report not found in database.")
			return
		}
		slog.Error("failed to update report", "report_id", action.ID, "error", err.Error())
		b.respondEphemeral(ev, "❌ Error processing the report.")
		return
	}

	if err := b.gw.UpdateSource(ev, &OutboundMessage{
		Embed: &Embed{
			Title:       "🚨 New Report Submitted",
			Description: fmt.Sprintf("**Reporter:** <@%s>\n**Reason:** %s", report.ReporterID, report.Description),
			Color:       0xFF5555,
			Footer:      fmt.Sprintf("Report ID: %s | Status: %s", report.ReportID, report.Status),
		},
		Buttons: [][]Button{reportStatusButtons(report.ReportID, true)},
	}); err != nil {
		slog.Error("failed to disable report buttons", "report_id", report.ReportID, "error", err.Error())
	}

	if report.Status == domain.ReportResolved || report.Status == domain.ReportDismissed {
		msg := fmt.Sprintf("📢 Your report **%s** has been marked as **%s** by the staff.", report.ReportID, report.Status)
		if err := b.gw.SendDM(report.ReporterID, msg); err != nil {
			slog.Error("failed to notify reporter", "user_id", report.ReporterID, "error", err.Error())
		}
	}
}
