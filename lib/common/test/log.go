package test

import (
	"os"

	logging "github.com/inconshreveable/log15"
)

// LogHandler returns the handler tests log through; `COUNCIL_LOG_HANDLER`
// selects between "null" and "stdout".
func LogHandler() logging.Handler {
	handlers := map[string]func() logging.Handler{
		"null": func() logging.Handler {
			return logging.DiscardHandler()
		},
		"stdout": func() logging.Handler {
			return logging.CallerStackHandler("%+v", logging.StdoutHandler)
		},
	}

	handler := handlers["null"]
	if h, ok := handlers[os.Getenv("COUNCIL_LOG_HANDLER")]; ok {
		handler = h
	}

	return handler()
}
