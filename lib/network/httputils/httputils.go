package httputils

import (
	"net/http"

	"boscoin.io/council/lib/errors"
)

// IsEventStream checks request header accept is text/event-stream
func IsEventStream(r *http.Request) bool {
	return r.Header.Get("Accept") == "text/event-stream"
}

// ErrorsToStatus lists the errors not answered with 400.
var ErrorsToStatus = map[uint]int{
	errors.ParameterNotFound.Code:              http.StatusInternalServerError,
	errors.TransactionAlreadyExistsInPool.Code: http.StatusConflict,
	errors.TransactionPoolFull.Code:            http.StatusServiceUnavailable,
	errors.TransactionNotFound.Code:            http.StatusNotFound,
	errors.StorageRecordDoesNotExist.Code:      http.StatusNotFound,
	errors.StorageCoreError.Code:               http.StatusInternalServerError,
	errors.StorageBadConfig.Code:               http.StatusInternalServerError,
	errors.ContentTypeNotJSON.Code:             http.StatusUnsupportedMediaType,
	errors.EndpointNotFound.Code:               http.StatusNotFound,
	errors.NotCandidate.Code:                   http.StatusNotFound,
	errors.NotVoter.Code:                       http.StatusNotFound,
}

func StatusCode(err error) int {
	e, ok := err.(*errors.Error)
	if !ok {
		return http.StatusInternalServerError
	}

	if status, found := ErrorsToStatus[e.Code]; found {
		return status
	}

	return http.StatusBadRequest
}
