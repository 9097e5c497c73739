package ioq

import "github.com/rs/zerolog"

// defaultLogger is a discard logger; Create installs it unless overridden
// by WithLogger, so a Queue never pays for logging it hasn't asked for.
func defaultLogger() zerolog.Logger {
	return zerolog.Nop()
}
