package council

import (
	"sort"

	"boscoin.io/council/lib/common"
)

// VoteIndex counts the finalised tallies.
type VoteIndex uint32

// Member is a seat of the active council, held until `Expiry`.
type Member struct {
	Address string `json:"address" yaml:"address"`
	Expiry  uint64 `json:"expiry" yaml:"expiry"`
}

// RegisterInfo is the vote index a candidate registered at and the slot it
// occupies.
type RegisterInfo struct {
	VoteIndex VoteIndex `json:"vote_index"`
	Slot      uint32    `json:"slot"`
}

const EmptySlot string = ""

// SlotList is the candidate array. A slot is either occupied by a candidate
// address or a hole left by an elected or discarded one; approvals of voters
// are aligned to the slot positions.
type SlotList []string

func (s SlotList) Occupied(slot int) bool {
	return slot >= 0 && slot < len(s) && s[slot] != EmptySlot
}

func (s SlotList) IsHole(slot int) bool {
	return slot >= 0 && slot < len(s) && s[slot] == EmptySlot
}

func (s SlotList) Holes() (holes []int) {
	for i, c := range s {
		if c == EmptySlot {
			holes = append(holes, i)
		}
	}

	return
}

// Count is the number of occupied slots.
func (s SlotList) Count() (n int) {
	for _, c := range s {
		if c != EmptySlot {
			n++
		}
	}

	return
}

// Place writes `who` into `slot`; `slot` equal to the length appends.
func (s SlotList) Place(slot int, who string) SlotList {
	if slot == len(s) {
		return append(s, who)
	}

	s[slot] = who
	return s
}

func (s SlotList) Clear(slot int) {
	if slot >= 0 && slot < len(s) {
		s[slot] = EmptySlot
	}
}

// ShrinkToFit drops the trailing holes.
func (s SlotList) ShrinkToFit() SlotList {
	n := len(s)
	for n > 0 && s[n-1] == EmptySlot {
		n--
	}

	return s[:n]
}

type LeaderboardEntry struct {
	Stake     common.Amount `json:"stake"`
	Candidate string        `json:"candidate"`
}

// Leaderboard is ordered from the lowest stake to the highest.
type Leaderboard []LeaderboardEntry

func NewLeaderboard(size int) Leaderboard {
	return make(Leaderboard, size)
}

func (l Leaderboard) Lowest() common.Amount {
	if len(l) < 1 {
		return 0
	}

	return l[0].Stake
}

func (l Leaderboard) Contains(candidate string) bool {
	for _, e := range l {
		if e.Candidate == candidate {
			return true
		}
	}

	return false
}

// Insert replaces the lowest entry and sorts again; the length never
// changes. Entries of the same stake keep their order.
func (l Leaderboard) Insert(entry LeaderboardEntry) {
	if len(l) < 1 {
		return
	}

	l[0] = entry
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Stake < l[j].Stake
	})
}

// Ranked returns the presented entries from the highest stake down; the
// empty entries are left out.
func (l Leaderboard) Ranked() (ranked []LeaderboardEntry) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Stake == 0 {
			break
		}
		ranked = append(ranked, l[i])
	}

	return
}
