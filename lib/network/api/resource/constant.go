package resource

const (
	APIVersionV1 = "/v1"

	URLAccounts     = APIVersionV1 + "/accounts/{id}"
	URLTransactions = APIVersionV1 + "/transactions/{id}"
	URLCandidates   = APIVersionV1 + "/candidates"
	URLCandidate    = APIVersionV1 + "/candidates/{id}"
	URLVoters       = APIVersionV1 + "/voters"
	URLVoter        = APIVersionV1 + "/voters/{id}"
	URLCouncil      = APIVersionV1 + "/council"
	URLWindow       = APIVersionV1 + "/window"
)
