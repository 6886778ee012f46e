package cli

import "github.com/dmitrijs2005/smementor/internal/client/api"

func (a *App) notifySuccess(msg string) {
	a.println("✓ " + msg)
}

// notifyError shows the backend's message when there is one, and fallback
// otherwise.
func (a *App) notifyError(err error, fallback string) {
	msg := api.Detail(err)
	if msg == "" {
		msg = fallback
	}
	a.println("✗ " + msg)
}
