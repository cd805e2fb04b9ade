package council

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/storage"
)

const (
	ParamCandidacyBondKey        string = "params.candidacy_bond"
	ParamVotingBondKey           string = "params.voting_bond"
	ParamPresentSlashPerVoterKey string = "params.present_slash_per_voter"
	ParamCarryCountKey           string = "params.carry_count"
	ParamDesiredSeatsKey         string = "params.desired_seats"
	ParamPresentationDurationKey string = "params.presentation_duration"
	ParamVotingPeriodKey         string = "params.voting_period"
	ParamTermDurationKey         string = "params.term_duration"
)

// Params are the tunable constants of the election. Durations are counted in
// blocks.
type Params struct {
	// bond taken to register as a candidate
	CandidacyBond common.Amount `json:"candidacy_bond" yaml:"candidacy_bond"`
	// bond taken to register as a voter
	VotingBond common.Amount `json:"voting_bond" yaml:"voting_bond"`
	// slashed per voter from a bad presentation
	PresentSlashPerVoter common.Amount `json:"present_slash_per_voter" yaml:"present_slash_per_voter"`
	// runners-up kept as candidates after a tally
	CarryCount           uint32 `json:"carry_count" yaml:"carry_count"`
	PresentationDuration uint64 `json:"presentation_duration" yaml:"presentation_duration"`
	VotingPeriod         uint64 `json:"voting_period" yaml:"voting_period"`
	TermDuration         uint64 `json:"term_duration" yaml:"term_duration"`
	DesiredSeats         uint32 `json:"desired_seats" yaml:"desired_seats"`
}

// IsWellFormed rejects a zero voting period; the tally blocks are multiples
// of it.
func (p Params) IsWellFormed() error {
	if p.VotingPeriod < 1 {
		return errors.InvalidParameter.Clone().SetData("param", "voting_period")
	}

	return nil
}

func (c *Council) param(key string, v interface{}) error {
	found, err := storage.GetValue(c.st, key, v)
	if err != nil {
		return err
	}
	if !found {
		return errors.ParameterNotFound.Clone().SetData("key", key)
	}

	return nil
}

func (c *Council) CandidacyBond() (bond common.Amount, err error) {
	err = c.param(ParamCandidacyBondKey, &bond)
	return
}

func (c *Council) VotingBond() (bond common.Amount, err error) {
	err = c.param(ParamVotingBondKey, &bond)
	return
}

func (c *Council) PresentSlashPerVoter() (slash common.Amount, err error) {
	err = c.param(ParamPresentSlashPerVoterKey, &slash)
	return
}

func (c *Council) CarryCount() (n uint32, err error) {
	err = c.param(ParamCarryCountKey, &n)
	return
}

func (c *Council) DesiredSeats() (n uint32, err error) {
	err = c.param(ParamDesiredSeatsKey, &n)
	return
}

func (c *Council) PresentationDuration() (n uint64, err error) {
	err = c.param(ParamPresentationDurationKey, &n)
	return
}

func (c *Council) VotingPeriod() (n uint64, err error) {
	err = c.param(ParamVotingPeriodKey, &n)
	return
}

func (c *Council) TermDuration() (n uint64, err error) {
	err = c.param(ParamTermDurationKey, &n)
	return
}

func (c *Council) Params() (p Params, err error) {
	if p.CandidacyBond, err = c.CandidacyBond(); err != nil {
		return
	}
	if p.VotingBond, err = c.VotingBond(); err != nil {
		return
	}
	if p.PresentSlashPerVoter, err = c.PresentSlashPerVoter(); err != nil {
		return
	}
	if p.CarryCount, err = c.CarryCount(); err != nil {
		return
	}
	if p.PresentationDuration, err = c.PresentationDuration(); err != nil {
		return
	}
	if p.VotingPeriod, err = c.VotingPeriod(); err != nil {
		return
	}
	if p.TermDuration, err = c.TermDuration(); err != nil {
		return
	}
	p.DesiredSeats, err = c.DesiredSeats()

	return
}

func (c *Council) putParams(p Params) (err error) {
	values := []struct {
		key string
		v   interface{}
	}{
		{ParamCandidacyBondKey, p.CandidacyBond},
		{ParamVotingBondKey, p.VotingBond},
		{ParamPresentSlashPerVoterKey, p.PresentSlashPerVoter},
		{ParamCarryCountKey, p.CarryCount},
		{ParamDesiredSeatsKey, p.DesiredSeats},
		{ParamPresentationDurationKey, p.PresentationDuration},
		{ParamVotingPeriodKey, p.VotingPeriod},
		{ParamTermDurationKey, p.TermDuration},
	}
	for _, value := range values {
		if err = storage.PutValue(c.st, value.key, value.v); err != nil {
			return
		}
	}

	return
}

// SetDesiredSeats changes the council size. An open window keeps the seats
// it was opened with; the next tally follows the new size.
func (c *Council) SetDesiredSeats(n uint32) error {
	log.Debug("desired seats changed", "seats", n)
	return storage.PutValue(c.st, ParamDesiredSeatsKey, n)
}

func (c *Council) SetPresentationDuration(n uint64) error {
	log.Debug("presentation duration changed", "duration", n)
	return storage.PutValue(c.st, ParamPresentationDurationKey, n)
}

func (c *Council) SetTermDuration(n uint64) error {
	log.Debug("term duration changed", "duration", n)
	return storage.PutValue(c.st, ParamTermDurationKey, n)
}
