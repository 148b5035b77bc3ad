package logger

import "log/slog"

const ErrKey = "err"

// Err returns a uniformly keyed attribute for logging errors.
func Err(err error) slog.Attr {
	return slog.Any(ErrKey, err)
}
