package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/network/httputils"
	"boscoin.io/council/lib/node/runner"
)

const (
	UrlPathPrefixAPI    = "/v1"
	UrlPathPrefixMetric = "/metrics"
)

// API Endpoint patterns
const (
	GetStatusHandlerPattern      = "/status"
	GetCouncilHandlerPattern     = "/council"
	GetParamsHandlerPattern      = "/params"
	GetCandidatesHandlerPattern  = "/candidates"
	GetCandidateHandlerPattern   = "/candidates/{address}"
	GetVotersHandlerPattern      = "/voters"
	GetVoterHandlerPattern       = "/voters/{address}"
	GetWindowHandlerPattern      = "/window"
	GetNextTallyHandlerPattern   = "/next-tally"
	GetAccountHandlerPattern     = "/accounts/{address}"
	PostTransactionPattern       = "/transactions"
	GetTransactionHandlerPattern = "/transactions/{hash}"
)

type NetworkHandlerAPI struct {
	runner *runner.Runner
}

func NewNetworkHandlerAPI(r *runner.Runner) *NetworkHandlerAPI {
	return &NetworkHandlerAPI{runner: r}
}

// Router mounts every endpoint under `UrlPathPrefixAPI`.
func (api *NetworkHandlerAPI) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(httputils.RecoverMiddleware(log))
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, errors.EndpointNotFound.Clone().SetData("path", r.URL.Path))
	})

	sub := router.PathPrefix(UrlPathPrefixAPI).Subrouter()
	sub.Use(MetricsMiddleware)
	sub.Use(httputils.JSONContentTypeMiddleware)

	sub.HandleFunc(GetStatusHandlerPattern, api.GetStatusHandler).Methods("GET")
	sub.HandleFunc(GetCouncilHandlerPattern, api.GetCouncilHandler).Methods("GET")
	sub.HandleFunc(GetParamsHandlerPattern, api.GetParamsHandler).Methods("GET")
	sub.HandleFunc(GetCandidatesHandlerPattern, api.GetCandidatesHandler).Methods("GET")
	sub.HandleFunc(GetCandidateHandlerPattern, api.GetCandidateHandler).Methods("GET")
	sub.HandleFunc(GetVotersHandlerPattern, api.GetVotersHandler).Methods("GET")
	sub.HandleFunc(GetVoterHandlerPattern, api.GetVoterHandler).Methods("GET")
	sub.HandleFunc(GetWindowHandlerPattern, api.GetWindowHandler).Methods("GET")
	sub.HandleFunc(GetNextTallyHandlerPattern, api.GetNextTallyHandler).Methods("GET")
	sub.HandleFunc(GetAccountHandlerPattern, api.GetAccountHandler).Methods("GET")
	sub.HandleFunc(PostTransactionPattern, api.PostTransactionHandler).Methods("POST")
	sub.HandleFunc(GetTransactionHandlerPattern, api.GetTransactionHandler).Methods("GET")

	return router
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	if err := httputils.WriteJSON(w, code, v); err != nil {
		log.Error("failed to write response", "error", err)
	}
}
