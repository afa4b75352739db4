package xlogsink

import (
	"github.com/trickstertwo/xlog"

	"github.com/bjaus/tfmt"
)

// levelName returns the canonical name of l. Levels between the named ones
// are written as the nearest lower name plus the offset, as slog does.
func levelName(l xlog.Level) (string, int) {
	switch {
	case l < xlog.LevelDebug:
		return "TRACE", int(l - xlog.LevelTrace)
	case l < xlog.LevelInfo:
		return "DEBUG", int(l - xlog.LevelDebug)
	case l < xlog.LevelWarn:
		return "INFO", int(l - xlog.LevelInfo)
	case l < xlog.LevelError:
		return "WARN", int(l - xlog.LevelWarn)
	case l < xlog.LevelFatal:
		return "ERROR", int(l - xlog.LevelError)
	default:
		return "FATAL", int(l - xlog.LevelFatal)
	}
}

func appendLevel(w tfmt.Writer, l xlog.Level) {
	name, off := levelName(l)
	_, _ = w.WriteString(name)
	switch {
	case off > 0:
		w.Format("+", off)
	case off < 0:
		w.Format(off)
	}
}
