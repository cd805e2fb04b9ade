package council

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotList(t *testing.T) {
	s := SlotList{}

	s = s.Place(0, "a")
	s = s.Place(1, "b")
	s = s.Place(2, "c")
	require.Equal(t, SlotList{"a", "b", "c"}, s)
	require.Equal(t, 3, s.Count())
	require.Empty(t, s.Holes())

	s.Clear(1)
	require.True(t, s.IsHole(1))
	require.False(t, s.Occupied(1))
	require.True(t, s.Occupied(2))
	require.False(t, s.Occupied(3))
	require.False(t, s.IsHole(3))
	require.Equal(t, []int{1}, s.Holes())

	s = s.Place(1, "d")
	require.Equal(t, SlotList{"a", "d", "c"}, s)

	s.Clear(2)
	s.Clear(1)
	require.Equal(t, SlotList{"a"}, s.ShrinkToFit())

	s.Clear(0)
	require.Empty(t, s.ShrinkToFit())
	require.Equal(t, 0, s.Count())
}

func TestLeaderboardInsert(t *testing.T) {
	l := NewLeaderboard(3)
	require.Equal(t, LeaderboardEntry{}, l[0])
	require.Empty(t, l.Ranked())

	l.Insert(LeaderboardEntry{Stake: 5, Candidate: "a"})
	l.Insert(LeaderboardEntry{Stake: 3, Candidate: "b"})
	require.Equal(t, Leaderboard{{0, ""}, {3, "b"}, {5, "a"}}, l)
	require.True(t, l.Contains("a"))
	require.False(t, l.Contains("c"))

	// same stake keeps the new entry below the older one
	l.Insert(LeaderboardEntry{Stake: 5, Candidate: "c"})
	require.Equal(t, Leaderboard{{3, "b"}, {5, "c"}, {5, "a"}}, l)
	require.Equal(t, Leaderboard{{5, "a"}, {5, "c"}, {3, "b"}}, Leaderboard(l.Ranked()))
	require.Len(t, l, 3)
}
