package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/smementor/internal/client/models"
	"github.com/dmitrijs2005/smementor/internal/client/services"
)

// Chat opens a conversation with the mentor. Numbers 1-4 pick a quick
// prompt; an empty line leaves the chat.
func (a *App) Chat(ctx context.Context) error {
	thread := services.NewChatThread(a.mentor, func(msgs []models.ChatMessage) {
		if n := len(msgs); n > 0 && msgs[n-1].Pending {
			a.println("mentor is typing...")
		}
	})
	if err := thread.LoadHistory(ctx); err != nil {
		a.notifyError(err, "Failed to load chat history")
	}

	a.println("AI Business Mentor. Ask anything about your business (empty line to leave).")
	for _, m := range thread.Messages() {
		a.renderChatMessage(m)
	}
	if len(thread.Messages()) == 0 {
		a.println("Quick prompts:")
		for i, p := range services.QuickPrompts {
			a.printf("  %d) %s\n", i+1, p)
		}
	}

	for {
		text, err := a.ask("you")
		if err != nil || text == "" {
			return nil
		}
		if n, convErr := strconv.Atoi(text); convErr == nil && n >= 1 && n <= len(services.QuickPrompts) {
			text = services.QuickPrompts[n-1]
			a.printf("you:    %s\n", text)
		}

		reply, err := thread.Send(ctx, text)
		if err != nil {
			a.notifyError(err, "Failed to get response")
			continue
		}
		if reply != nil {
			a.printf("mentor: %s\n", reply.Response)
		}
	}
}

func (a *App) History(ctx context.Context) error {
	thread := services.NewChatThread(a.mentor, nil)
	if err := thread.LoadHistory(ctx); err != nil {
		a.notifyError(err, "Failed to load chat history")
		return err
	}
	msgs := thread.Messages()
	if len(msgs) == 0 {
		a.println("No conversations yet. Type 'chat' to talk to your mentor.")
		return nil
	}
	for _, m := range msgs {
		if m.CreatedAt != "" {
			a.printf("[%s]\n", m.CreatedAt)
		}
		a.renderChatMessage(m)
	}
	return nil
}

func (a *App) Score(ctx context.Context) error {
	s, err := a.score.Get(ctx)
	if err != nil {
		a.notifyError(err, "Failed to load investor score")
		return err
	}
	if s == nil {
		a.println("No score yet.")
		a.println("Complete some courses and modules to generate your investor readiness score.")
		a.println("Type 'recalc' to calculate it now.")
		return nil
	}
	a.renderScore(s)
	return nil
}

func (a *App) Recalc(ctx context.Context) error {
	s, err := a.score.Recalculate(ctx)
	if err != nil {
		a.notifyError(err, "Failed to recalculate score")
		return err
	}
	a.notifySuccess("Score updated!")
	a.renderScore(s)
	return nil
}
