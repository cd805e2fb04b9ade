package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"

	"boscoin.io/council/lib/common/observer"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/network/api/resource"
	"boscoin.io/council/lib/network/httputils"
	"boscoin.io/council/lib/node/runner"
	"boscoin.io/council/lib/transaction"
)

// maximum size of a posted transaction
const maxTransactionBodySize = 1 << 20

func (api NetworkHandlerAPI) PostTransactionHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxTransactionBodySize))
	if err != nil {
		httputils.WriteJSONError(w, errors.BadRequestParameter.Clone().SetData("error", err.Error()))
		return
	}

	var tx transaction.Transaction
	if err = json.Unmarshal(body, &tx); err != nil {
		if e, ok := err.(*errors.Error); ok {
			httputils.WriteJSONError(w, e)
		} else {
			httputils.WriteJSONError(w, errors.BadRequestParameter.Clone().SetData("error", err.Error()))
		}
		return
	}

	if err = api.runner.Submit(tx); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	result, _ := api.runner.Result(tx.GetHash())
	writeJSON(w, http.StatusAccepted, resource.NewTransaction(result))
}

// GetTransactionHandler returns the status of a transaction. With
// `Accept: text/event-stream` it waits for the block that takes it.
func (api NetworkHandlerAPI) GetTransactionHandler(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]

	if httputils.IsEventStream(r) {
		es := NewEventStream(w, r, RenderResourceFunc, DefaultContentType)
		run := es.Start(observer.TransactionObserver, "hash-"+hash)

		if result, found := api.runner.Result(hash); found {
			es.Render(result)
			if result.Status != runner.StatusPending {
				es.Stop()
				return
			}
		}
		run()
		return
	}

	result, found := api.runner.Result(hash)
	if !found {
		httputils.WriteJSONError(w, errors.TransactionNotFound.Clone().SetData("hash", hash))
		return
	}

	writeJSON(w, http.StatusOK, resource.NewTransaction(result))
}
