package discord

import (
	"context"
	"errors"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
)

// askQuestions runs a sequential question loop in the ticket channel. Each
// question waits for one reply from the flow owner; a missed reply aborts
// the whole intake and the caller discards the partial answers.
func (b *Bot) askQuestions(ctx context.Context, channelID, userID string, questions []string, timeout time.Duration) ([]domain.QA, error) {
	answers := make([]domain.QA, 0, len(questions))
	for _, question := range questions {
		if _, err := b.gw.SendMessage(channelID, question); err != nil {
			return nil, err
		}
		reply, err := b.dispatcher.AwaitMessage(ctx, channelID, userID, timeout)
		if err != nil {
			if errors.Is(err, ErrPromptTimeout) {
				b.gw.SendMessage(channelID, "⏰ You took too long to respond. Please start over.")
			}
			return nil, err
		}
		answers = append(answers, domain.QA{Question: question, Answer: reply.Content})
	}
	return answers, nil
}

// askOne sends a single prompt and waits for the reply text. The timeout
// notice matches askQuestions so an abandoned intake produces one notice no
// matter which prompt the user walked away from.
func (b *Bot) askOne(ctx context.Context, channelID, userID, prompt string, timeout time.Duration) (*MessageEvent, error) {
	if _, err := b.gw.SendMessage(channelID, prompt); err != nil {
		return nil, err
	}
	reply, err := b.dispatcher.AwaitMessage(ctx, channelID, userID, timeout)
	if err != nil {
		if errors.Is(err, ErrPromptTimeout) {
			b.gw.SendMessage(channelID, "⏰ You took too long to respond. Please start over.")
		}
		return nil, err
	}
	return reply, nil
}
