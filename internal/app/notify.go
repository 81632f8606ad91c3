package app

import (
	"errors"
	"fmt"

	"learnsmart/internal/api"
)

const (
	levelSuccess = "success"
	levelInfo    = "info"
	levelWarning = "warning"
	levelDanger  = "danger"
)

func (a *App) notify(level, message string) {
	fmt.Fprintf(a.out, "[%s] %s\n", level, message)
}

// notifyError surfaces a request failure: the server-supplied message when
// there is one, the fallback otherwise.
func (a *App) notifyError(err error, fallback string) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		a.notify(levelDanger, apiErr.Message)
		return
	}
	a.notify(levelDanger, fallback)
}
