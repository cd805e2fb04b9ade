package council

import (
	"boscoin.io/council/lib/common"
)

// BlockReport is what `EndBlock` did in a block.
type BlockReport struct {
	Height    uint64         `json:"height"`
	Opened    *PendingWindow `json:"opened,omitempty"`
	Finalised *Finalisation  `json:"finalised,omitempty"`
}

// NextVoteFrom returns the first tally block, a multiple of the voting
// period, not before `n`.
func (c *Council) NextVoteFrom(n uint64) (uint64, error) {
	period, err := c.VotingPeriod()
	if err != nil {
		return 0, err
	}
	if period < 1 {
		return n, nil
	}

	return (n + period - 1) / period * period, nil
}

// NextTally returns the block of the next tally; `false` when the council
// has no seat to fill.
func (c *Council) NextTally() (uint64, bool, error) {
	seats, err := c.DesiredSeats()
	if err != nil {
		return 0, false, err
	}
	if seats < 1 {
		return 0, false, nil
	}

	members, err := c.ActiveCouncil()
	if err != nil {
		return 0, false, err
	}
	window, err := c.Window()
	if err != nil {
		return 0, false, err
	}

	var nextPossible uint64
	var count int
	var coming uint32
	switch w := window.(type) {
	case PendingWindow:
		// the next tally can begin right after the current one
		nextPossible = w.EndBlock
		count = len(members) - len(w.Expiring) + int(w.Seats)
		coming = w.Seats
	default:
		nextPossible = c.clock.CurrentBlock()
		count = len(members)
	}

	at := nextPossible
	if count >= int(seats) {
		if seats <= coming {
			// every seat is taken by the incoming members, wait until they expire
			term, err := c.TermDuration()
			if err != nil {
				return 0, false, err
			}
			at = nextPossible + term
		} else {
			at = members[len(members)-int(seats-coming)].Expiry
		}
	}

	next, err := c.NextVoteFrom(at)
	if err != nil {
		return 0, false, err
	}

	return next, true, nil
}

// EndBlock runs once at the end of every block, after its transactions. It
// opens a window at the scheduled tally block and finalises the open window
// at its end block.
func (c *Council) EndBlock() (report BlockReport, err error) {
	height := c.clock.CurrentBlock()
	report.Height = height

	var period uint64
	if period, err = c.VotingPeriod(); err != nil {
		return
	}

	if period > 0 && height%period == 0 {
		var next uint64
		var ok bool
		if next, ok, err = c.NextTally(); err != nil {
			return
		}
		if ok && next == height {
			if report.Opened, err = c.startTally(); err != nil {
				return
			}
		}
	}

	var pending PendingWindow
	var open bool
	if pending, open, err = c.NextFinalise(); err != nil {
		return
	}
	if open && pending.EndBlock == height {
		if report.Finalised, err = c.finaliseTally(); err != nil {
			return
		}
	}

	return
}

// startTally opens a window when the members not expiring at this block
// are fewer than the desired seats. The balances of the voters are
// snapshotted in the order of the voter list.
func (c *Council) startTally() (*PendingWindow, error) {
	members, err := c.ActiveCouncil()
	if err != nil {
		return nil, err
	}
	seats, err := c.DesiredSeats()
	if err != nil {
		return nil, err
	}
	height := c.clock.CurrentBlock()

	var expiring []Member
	for _, m := range members {
		if m.Expiry != height {
			break
		}
		expiring = append(expiring, m)
	}

	remaining := len(members) - len(expiring)
	if remaining >= int(seats) {
		log.Debug("council is full; no tally", "height", height, "members", len(members))
		return nil, nil
	}
	emptySeats := int(seats) - remaining

	duration, err := c.PresentationDuration()
	if err != nil {
		return nil, err
	}
	carry, err := c.CarryCount()
	if err != nil {
		return nil, err
	}
	voters, err := c.Voters()
	if err != nil {
		return nil, err
	}

	stakes := make([]common.Amount, len(voters))
	for i, voter := range voters {
		if stakes[i], err = c.ledger.BalanceOf(voter); err != nil {
			return nil, err
		}
	}

	window := PendingWindow{
		EndBlock: height + duration,
		Seats:    uint32(emptySeats),
		Expiring: expiring,
	}
	if err = c.openWindow(window, stakes, NewLeaderboard(emptySeats+int(carry))); err != nil {
		return nil, err
	}

	log.Debug(
		"tally started",
		"height", height,
		"end-block", window.EndBlock,
		"seats", emptySeats,
		"voters", len(voters),
	)

	return &window, nil
}
