package ui

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/remote"
)

// ErrCancelled is returned when the user declines a confirmation.
var ErrCancelled = errors.New("cancelled")

const (
	msgSessionExpired = "Session expired, sign in again"
	msgUnavailable    = "Something went wrong talking to the server, try again"
	msgInterrupted    = "Interrupted"
)

// Message is the notice shown for err. Backend rejections show their detail;
// transport failures get a generic text.
func Message(err error) string {
	var apiErr *remote.APIError
	switch {
	case errors.Is(err, remote.ErrUnauthorized):
		return msgSessionExpired
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, remote.ErrNetwork), errors.Is(err, remote.ErrBadResponse):
		return msgUnavailable
	case errors.Is(err, context.Canceled):
		return msgInterrupted
	default:
		return err.Error()
	}
}

func (t *Terminal) Error(err error) {
	if errors.Is(err, ErrCancelled) {
		t.notify.Warn("Nothing changed")
		return
	}
	zap.L().Debug("command failed", zap.Error(err))
	t.notify.Error(Message(err))
}
