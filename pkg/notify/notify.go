// Package notify prints short user-facing notices, the terminal counterpart
// of toast messages. Diagnostics belong to zap, not here.
package notify

import (
	"io"

	"github.com/rs/zerolog"
)

type Notifier struct {
	log zerolog.Logger
}

func New(w io.Writer) *Notifier {
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return &Notifier{log: zerolog.New(cw)}
}

func (n *Notifier) Success(msg string) {
	n.log.Info().Msg(msg)
}

func (n *Notifier) Warn(msg string) {
	n.log.Warn().Msg(msg)
}

func (n *Notifier) Error(msg string) {
	n.log.Error().Msg(msg)
}
