package operation

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/keypair"
	"boscoin.io/council/lib/errors"
)

type SetDesiredSeats struct {
	Seats uint32 `json:"seats"`
}

func (o SetDesiredSeats) IsWellFormed(common.Config) error {
	return nil
}

type RemoveMember struct {
	Member string `json:"member"`
}

func (o RemoveMember) IsWellFormed(common.Config) error {
	if _, err := keypair.Parse(o.Member); err != nil {
		return errors.BadPublicAddress.Clone().SetData("member", o.Member)
	}

	return nil
}

func (o RemoveMember) TargetAddress() string {
	return o.Member
}

type SetPresentationDuration struct {
	Duration uint64 `json:"duration"`
}

func (o SetPresentationDuration) IsWellFormed(common.Config) error {
	return nil
}

type SetTermDuration struct {
	Duration uint64 `json:"duration"`
}

func (o SetTermDuration) IsWellFormed(common.Config) error {
	return nil
}
