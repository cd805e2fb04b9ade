package operation

import (
	"encoding/json"
	"reflect"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/errors"
)

type OperationType string

const (
	TypeSubmitCandidacy   OperationType = "submit-candidacy"
	TypeSetApprovals      OperationType = "set-approvals"
	TypeRetractVoter      OperationType = "retract-voter"
	TypeKillInactiveVoter OperationType = "kill-inactive-voter"
	TypePresent           OperationType = "present"

	TypeSetDesiredSeats         OperationType = "set-desired-seats"
	TypeRemoveMember            OperationType = "remove-member"
	TypeSetPresentationDuration OperationType = "set-presentation-duration"
	TypeSetTermDuration         OperationType = "set-term-duration"
)

// Limit is the default number of operations a transaction can carry.
const Limit = common.DefaultOpsLimit

func IsValidOperationType(oType string) bool {
	_, b := common.InStringArray([]string{
		string(TypeSubmitCandidacy),
		string(TypeSetApprovals),
		string(TypeRetractVoter),
		string(TypeKillInactiveVoter),
		string(TypePresent),
		string(TypeSetDesiredSeats),
		string(TypeRemoveMember),
		string(TypeSetPresentationDuration),
		string(TypeSetTermDuration),
	}, oType)
	return b
}

// IsPrivileged reports whether only the governance address can send the
// operation.
func IsPrivileged(t OperationType) bool {
	switch t {
	case TypeSetDesiredSeats, TypeRemoveMember,
		TypeSetPresentationDuration, TypeSetTermDuration:
		return true
	default:
		return false
	}
}

type Operation struct {
	H Header
	B Body
}

// TypeOf returns the operation type of the body.
func TypeOf(opb Body) (OperationType, error) {
	switch opb.(type) {
	case SubmitCandidacy:
		return TypeSubmitCandidacy, nil
	case SetApprovals:
		return TypeSetApprovals, nil
	case RetractVoter:
		return TypeRetractVoter, nil
	case KillInactiveVoter:
		return TypeKillInactiveVoter, nil
	case Present:
		return TypePresent, nil
	case SetDesiredSeats:
		return TypeSetDesiredSeats, nil
	case RemoveMember:
		return TypeRemoveMember, nil
	case SetPresentationDuration:
		return TypeSetPresentationDuration, nil
	case SetTermDuration:
		return TypeSetTermDuration, nil
	default:
		return "", errors.UnknownOperationType
	}
}

func NewOperation(opb Body) (op Operation, err error) {
	var t OperationType
	if t, err = TypeOf(opb); err != nil {
		return
	}

	op = Operation{
		H: Header{Type: t},
		B: opb,
	}

	return
}

type Header struct {
	Type OperationType `json:"type"`
}

type Body interface {
	//
	// Check that the operation is self consistent. It does not look at the
	// election state, that is the job of the council calls.
	//
	IsWellFormed(common.Config) error
}

func (o Operation) IsWellFormed(conf common.Config) (err error) {
	if !IsValidOperationType(string(o.H.Type)) {
		return errors.UnknownOperationType
	}
	if o.B == nil {
		return errors.InvalidOperation.Clone().SetData("reason", "empty body")
	}
	// header and body name the same type
	if t, err := TypeOf(o.B); err != nil || t != o.H.Type {
		return errors.InvalidOperation.Clone().SetData("reason", "header type does not match body")
	}

	return o.B.IsWellFormed(conf)
}

func (o Operation) String() string {
	encoded, _ := json.MarshalIndent(o, "", "  ")

	return string(encoded)
}

type envelop struct {
	H Header
	B interface{}
}

func (o *Operation) UnmarshalJSON(b []byte) (err error) {
	var raw json.RawMessage
	oj := envelop{
		B: &raw,
	}
	if err = json.Unmarshal(b, &oj); err != nil {
		return
	}

	o.H = oj.H

	var body Body
	if body, err = UnmarshalBodyJSON(oj.H.Type, raw); err != nil {
		return
	}
	o.B = body
	return nil
}

func UnmarshalBodyJSON(t OperationType, b []byte) (Body, error) {
	if bi, err := newBodyFromType(t); err != nil {
		return nil, err
	} else if err = json.Unmarshal(b, bi); err != nil {
		return nil, err
	} else {
		// values inside an interface are not addressable, so go through the
		// pointer and take the element back out
		return reflect.ValueOf(bi).Elem().Interface().(Body), nil
	}
}

func newBodyFromType(ty OperationType) (interface{}, error) {
	switch ty {
	case TypeSubmitCandidacy:
		return &SubmitCandidacy{}, nil
	case TypeSetApprovals:
		return &SetApprovals{}, nil
	case TypeRetractVoter:
		return &RetractVoter{}, nil
	case TypeKillInactiveVoter:
		return &KillInactiveVoter{}, nil
	case TypePresent:
		return &Present{}, nil
	case TypeSetDesiredSeats:
		return &SetDesiredSeats{}, nil
	case TypeRemoveMember:
		return &RemoveMember{}, nil
	case TypeSetPresentationDuration:
		return &SetPresentationDuration{}, nil
	case TypeSetTermDuration:
		return &SetTermDuration{}, nil
	default:
		return nil, errors.UnknownOperationType
	}
}
