// Package logging builds the go-kit loggers used across the bot server.
package logging

import (
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/cmars/diamondfarm/api"
)

// New returns a logfmt logger writing to w, filtered to the named level.
// Unknown level names fall back to info.
func New(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, levelOption(lvl))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func levelOption(lvl string) level.Option {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none":
		return level.AllowNone()
	}
	return level.AllowInfo()
}

// ForTick decorates logger with the identity of the bot making a move.
func ForTick(logger log.Logger, st *api.State) log.Logger {
	name := ""
	if p := st.Me.Properties; p != nil && p.Name != nil {
		name = *p.Name
	}
	return log.With(logger, "board", st.Board.ID, "bot", name, "x", st.Me.Position.X, "y", st.Me.Position.Y)
}
