package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"boscoin.io/council/lib/common/keypair"
	"boscoin.io/council/lib/common/observer"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/network/api/resource"
	"boscoin.io/council/lib/network/httputils"
)

// GetAccountHandler returns the balance of an address. With
// `Accept: text/event-stream` it keeps sending the account on every change.
func (api NetworkHandlerAPI) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if _, err := keypair.Parse(address); err != nil {
		httputils.WriteJSONError(w, errors.BadPublicAddress.Clone().SetData("address", address))
		return
	}

	if httputils.IsEventStream(r) {
		es := NewEventStream(w, r, RenderResourceFunc, DefaultContentType)
		run := es.Start(observer.AccountObserver, "address-"+address)

		account, err := api.runner.Ledger().Get(address)
		if err != nil {
			es.Stop()
			httputils.WriteJSONError(w, err)
			return
		}
		es.Render(account)
		run()
		return
	}

	account, err := api.runner.Ledger().Get(address)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resource.NewAccount(account))
}
