package httputils

import (
	"encoding/json"
	"net/http"

	"github.com/nvellon/hal"
)

const HALContentType = "application/hal+json"

type HALResource interface {
	Resource() *hal.Resource
}

// WriteJSON writes the value v to the http response as json encoding. A
// `Problem` or an `error` is written as `application/problem+json` and a
// `HALResource` as `application/hal+json`.
func WriteJSON(w http.ResponseWriter, code int, v interface{}) error {
	switch t := v.(type) {
	case HALResource:
		w.Header().Set("Content-Type", HALContentType)
		v = t.Resource()
	case Problem:
		w.Header().Set("Content-Type", ProblemContentType)
	case error:
		w.Header().Set("Content-Type", ProblemContentType)
		v = NewErrorProblem(t, code)
	default:
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(code)

	bs, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = w.Write(bs)
	return err
}

// WriteJSONError writes `err` with the status mapped from its code.
func WriteJSONError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusCode(err), err)
}
