package httputils

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	logging "github.com/inconshreveable/log15"

	"boscoin.io/council/lib/errors"
)

// RecoverMiddleware answers a panic in a handler with a 500 problem.
func RecoverMiddleware(log logging.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rcv := recover(); rcv != nil {
					err, ok := rcv.(error)
					if !ok {
						err = fmt.Errorf("panic: %v", rcv)
					}
					log.Error("recovered from a panic", "url", r.URL.String(), "error", err)
					WriteJSON(w, http.StatusInternalServerError, err)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// JSONContentTypeMiddleware rejects a request body that is not json.
func JSONContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			ct := r.Header.Get("Content-Type")
			if !strings.HasPrefix(ct, "application/json") {
				WriteJSONError(w, errors.ContentTypeNotJSON)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
