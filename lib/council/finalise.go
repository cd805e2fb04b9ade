package council

import (
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/storage"
)

// Finalisation is the result of a closed window.
type Finalisation struct {
	VoteIndex VoteIndex `json:"vote_index"`
	Elected   []Member  `json:"elected"`
	RunnersUp []string  `json:"runners_up"`
	Discarded []string  `json:"discarded"`
}

// finaliseTally closes the window. The top entries of the leaderboard take
// the empty seats and get the candidacy bond back; the next presented
// entries stay candidates at their slots. Every other candidate is cleared
// and its bond is kept.
func (c *Council) finaliseTally() (*Finalisation, error) {
	pending, open, err := c.NextFinalise()
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, errors.WindowInactive
	}

	leaderboard, err := c.Leaderboard()
	if err != nil {
		return nil, err
	}
	bond, err := c.CandidacyBond()
	if err != nil {
		return nil, err
	}
	term, err := c.TermDuration()
	if err != nil {
		return nil, err
	}
	members, err := c.ActiveCouncil()
	if err != nil {
		return nil, err
	}
	candidates, err := c.Candidates()
	if err != nil {
		return nil, err
	}
	index, err := c.VoteIndex()
	if err != nil {
		return nil, err
	}

	expiry := c.clock.CurrentBlock() + term

	ranked := leaderboard.Ranked()
	seats := int(pending.Seats)
	if seats > len(ranked) {
		seats = len(ranked)
	}

	var elected []Member
	for _, e := range ranked[:seats] {
		balance, err := c.ledger.BalanceOf(e.Candidate)
		if err != nil {
			return nil, err
		}
		if _, err = balance.Add(bond); err != nil {
			return nil, err
		}
		elected = append(elected, Member{Address: e.Candidate, Expiry: expiry})
	}

	var newCouncil []Member
	if len(pending.Expiring) < len(members) {
		newCouncil = append(newCouncil, members[len(pending.Expiring):]...)
	}
	newCouncil = append(newCouncil, elected...)

	newCandidates := make(SlotList, len(candidates))
	var runnersUp []string
	for _, e := range ranked[seats:] {
		info, found, err := c.CandidateRegInfo(e.Candidate)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errors.NotCandidate.Clone().SetData("candidate", e.Candidate)
		}
		for int(info.Slot) >= len(newCandidates) {
			newCandidates = append(newCandidates, EmptySlot)
		}
		newCandidates[info.Slot] = e.Candidate
		runnersUp = append(runnersUp, e.Candidate)
	}

	isElected := func(address string) bool {
		for _, m := range elected {
			if m.Address == address {
				return true
			}
		}
		return false
	}

	var cleared, discarded []string
	for i, old := range candidates {
		if old == EmptySlot || old == newCandidates[i] {
			continue
		}
		cleared = append(cleared, old)
		if !isElected(old) {
			discarded = append(discarded, old)
		}
	}

	if err = c.closeWindow(); err != nil {
		return nil, err
	}
	for _, m := range elected {
		if err = c.ledger.Deposit(m.Address, bond); err != nil {
			return nil, err
		}
	}
	if err = storage.PutValue(c.st, ActiveCouncilKey, newCouncil); err != nil {
		return nil, err
	}
	for _, address := range cleared {
		if err = storage.Remove(c.st, candidateRegistrationKey(address)); err != nil {
			return nil, err
		}
	}
	if err = storage.PutValue(c.st, CandidateListKey, newCandidates.ShrinkToFit()); err != nil {
		return nil, err
	}
	if err = storage.PutValue(c.st, CandidateCountKey, uint32(len(runnersUp))); err != nil {
		return nil, err
	}
	if err = storage.PutValue(c.st, VoteIndexKey, index+1); err != nil {
		return nil, err
	}

	log.Debug(
		"tally finalised",
		"vote-index", index+1,
		"elected", len(elected),
		"runners-up", len(runnersUp),
		"discarded", len(discarded),
	)

	return &Finalisation{
		VoteIndex: index + 1,
		Elected:   elected,
		RunnersUp: runnersUp,
		Discarded: discarded,
	}, nil
}

// RemoveMember takes `address` out of the active council at once.
func (c *Council) RemoveMember(address string) error {
	members, err := c.ActiveCouncil()
	if err != nil {
		return err
	}

	var remaining []Member
	for _, m := range members {
		if m.Address != address {
			remaining = append(remaining, m)
		}
	}
	if len(remaining) == len(members) {
		return errors.NotMember.Clone().SetData("address", address)
	}

	log.Debug("member removed", "member", address)

	return storage.PutValue(c.st, ActiveCouncilKey, remaining)
}
