package api

import (
	"net/http/httptest"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/node/runner"
	"boscoin.io/council/lib/storage"
)

type testServer struct {
	*httptest.Server

	Runner   *runner.Runner
	Accounts council.TestAccounts
	storage  *storage.LevelDBBackend
}

func (ts *testServer) Close() {
	ts.Server.Close()
	ts.storage.Close()
}

// prepareAPIServer serves the API of a fresh test runner; alice is the
// governance address.
func prepareAPIServer() *testServer {
	r, accounts, st := runner.MakeTestRunner(common.NewConfig(""))
	r.Conf = common.NewConfig(accounts.Alice)

	return &testServer{
		Server:   httptest.NewServer(NewNetworkHandlerAPI(r).Router()),
		Runner:   r,
		Accounts: accounts,
		storage:  st,
	}
}
