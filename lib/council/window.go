package council

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/storage"
)

const (
	WindowPendingKey       string = "window.pending"
	WindowStakeSnapshotKey string = "window.stake_snapshot"
	WindowLeaderboardKey   string = "window.leaderboard"
)

// Window is the presentation state of the election, either `NoWindow` or
// `PendingWindow`.
type Window interface {
	IsOpen() bool
}

type NoWindow struct{}

func (NoWindow) IsOpen() bool {
	return false
}

// PendingWindow is an open presentation window. It closes at `EndBlock`,
// filling `Seats` seats and dropping the `Expiring` members.
type PendingWindow struct {
	EndBlock uint64   `json:"end_block"`
	Seats    uint32   `json:"seats"`
	Expiring []Member `json:"expiring"`
}

func (PendingWindow) IsOpen() bool {
	return true
}

func (c *Council) Window() (Window, error) {
	var w PendingWindow
	found, err := storage.GetValue(c.st, WindowPendingKey, &w)
	if err != nil {
		return nil, err
	}
	if !found {
		return NoWindow{}, nil
	}

	return w, nil
}

func (c *Council) PresentationActive() (bool, error) {
	w, err := c.Window()
	if err != nil {
		return false, err
	}

	return w.IsOpen(), nil
}

// NextFinalise returns the pending window; `false` when no window is open.
func (c *Council) NextFinalise() (PendingWindow, bool, error) {
	w, err := c.Window()
	if err != nil {
		return PendingWindow{}, false, err
	}

	pending, ok := w.(PendingWindow)
	return pending, ok, nil
}

// Leaderboard returns nil when no window is open.
func (c *Council) Leaderboard() (Leaderboard, error) {
	var l Leaderboard
	if _, err := storage.GetValue(c.st, WindowLeaderboardKey, &l); err != nil {
		return nil, err
	}

	return l, nil
}

func (c *Council) StakeSnapshot() ([]common.Amount, error) {
	var stakes []common.Amount
	if _, err := storage.GetValue(c.st, WindowStakeSnapshotKey, &stakes); err != nil {
		return nil, err
	}

	return stakes, nil
}

func (c *Council) openWindow(w PendingWindow, stakes []common.Amount, l Leaderboard) (err error) {
	if err = storage.PutValue(c.st, WindowPendingKey, w); err != nil {
		return
	}
	if err = storage.PutValue(c.st, WindowStakeSnapshotKey, stakes); err != nil {
		return
	}

	return storage.PutValue(c.st, WindowLeaderboardKey, l)
}

func (c *Council) closeWindow() (err error) {
	for _, key := range []string{WindowStakeSnapshotKey, WindowPendingKey, WindowLeaderboardKey} {
		if err = storage.Remove(c.st, key); err != nil {
			return
		}
	}

	return
}
