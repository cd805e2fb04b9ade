package errors

// election
var (
	WindowActive          = NewError(100, "presentation window is open")
	StaleVoteIndex        = NewError(101, "vote index does not match the current vote index")
	InsufficientBalance   = NewError(102, "insufficient balance")
	FundsLocked           = NewError(103, "funds are locked")
	SlotConflict          = NewError(104, "slot is neither the append position nor an empty hole")
	AlreadyCandidate      = NewError(105, "already a candidate")
	NotCandidate          = NewError(106, "not a candidate")
	NotVoter              = NewError(107, "not a voter")
	PositionMismatch      = NewError(108, "voter list position does not match")
	TargetNotStale        = NewError(109, "target voter is not stale")
	WindowInactive        = NewError(110, "presentation window is not open")
	ClaimTooLow           = NewError(111, "claimed total does not exceed the lowest leaderboard entry")
	DuplicatePresentation = NewError(112, "candidate already holds a leaderboard slot")
	TotalMismatch         = NewError(113, "claimed total does not match the snapshotted total")
	ParameterNotFound     = NewError(114, "council parameter is not in place")
	InvalidParameter      = NewError(115, "invalid council parameter")
	AlreadyInitialized    = NewError(116, "council is already initialized")
	NotMember             = NewError(117, "not a council member")
)

// amount
var (
	MaximumBalanceReached   = NewError(130, "maximum balance reached")
	AccountBalanceUnderZero = NewError(131, "account balance is under zero")
)

// operation and transaction
var (
	InvalidOperation                = NewError(140, "invalid operation")
	UnknownOperationType            = NewError(141, "unknown operation type")
	NotPrivileged                   = NewError(142, "operation requires a privileged source")
	TransactionEmptyOperations      = NewError(143, "transaction has no operations")
	TransactionHasOverMaxOperations = NewError(144, "transaction has over max operations")
	TransactionAlreadyExistsInPool  = NewError(145, "transaction already exists in pool")
	TransactionPoolFull             = NewError(146, "transaction pool is full")
	TransactionNotFound             = NewError(147, "transaction not found")
	BadPublicAddress                = NewError(148, "failed to parse public address")
	TransactionHashMismatch         = NewError(149, "transaction hash does not match its body")
	TransactionBadCreated           = NewError(150, "transaction created time is not ISO8601")
)

// storage
var (
	StorageRecordDoesNotExist = NewError(160, "record does not exist")
	StorageCoreError          = NewError(161, "storage error")
	StorageBadConfig          = NewError(162, "bad storage config")
)

// api
var (
	BadRequestParameter = NewError(180, "bad request parameter")
	ContentTypeNotJSON  = NewError(181, "`Content-Type` must be 'application/json'")
	EndpointNotFound    = NewError(182, "endpoint not found")
)
