package viewmodel

import (
	"testing"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
)

func player(id, name string, ppg float64) players.Player {
	return players.Player{
		ID:    players.PlayerID(id),
		Name:  name,
		Stats: map[string]float64{players.StatPPG: ppg},
	}
}

func ids(list []players.Player) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = string(p.ID)
	}
	return out
}

func assertOrder(t *testing.T, got []players.Player, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotIDs)
		}
	}
}

func TestSortByNameAscending(t *testing.T) {
	list := []players.Player{player("1", "B", 10), player("2", "A", 20)}

	assertOrder(t, Sort(list, SortName, Asc), "2", "1")
}

func TestSortByPPGDescending(t *testing.T) {
	list := []players.Player{player("1", "B", 10), player("2", "A", 20)}

	assertOrder(t, Sort(list, SortPPG, Desc), "2", "1")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	list := []players.Player{player("1", "B", 10), player("2", "A", 20)}

	_ = Sort(list, SortName, Asc)

	assertOrder(t, list, "1", "2")
}

func TestSortMissingStatTreatedAsZero(t *testing.T) {
	list := []players.Player{
		player("pos", "A", 5),
		{ID: "missing", Name: "B"},
		player("neg", "C", -1),
		{ID: "nilstats", Name: "D", Stats: map[string]float64{}},
	}

	// Missing values sit exactly where a zero would, in both directions.
	assertOrder(t, Sort(list, SortPPG, Asc), "neg", "missing", "nilstats", "pos")
	assertOrder(t, Sort(list, SortPPG, Desc), "pos", "missing", "nilstats", "neg")
}

func TestSortIsStableForTies(t *testing.T) {
	list := []players.Player{
		player("a", "Same", 1),
		player("b", "Same", 1),
		player("c", "Same", 1),
	}

	assertOrder(t, Sort(list, SortName, Asc), "a", "b", "c")
	assertOrder(t, Sort(list, SortPPG, Desc), "a", "b", "c")
}

func TestSortTwiceEqualsSortOnce(t *testing.T) {
	list := []players.Player{
		player("1", "Curry", 25),
		player("2", "Anthony", 25),
		player("3", "Brown", 10),
		{ID: "4", Name: "Zion"},
		player("5", "Embiid", 25),
	}

	for _, key := range []SortKey{SortName, SortPPG, SortTeam, SortGames} {
		for _, dir := range []Direction{Asc, Desc} {
			once := Sort(list, key, dir)
			twice := Sort(once, key, dir)
			if got, want := ids(twice), ids(once); len(got) != len(want) {
				t.Fatalf("length mismatch for %s/%s", key, dir)
			} else {
				for i := range got {
					if got[i] != want[i] {
						t.Fatalf("%s/%s not idempotent: %v vs %v", key, dir, want, got)
					}
				}
			}
		}
	}
}

func TestSortTextKeysUseCollation(t *testing.T) {
	list := []players.Player{
		{ID: "1", Name: "bob"},
		{ID: "2", Name: "Álvaro"},
		{ID: "3", Name: "Zed"},
		{ID: "4", Name: ""},
	}

	// Accented and lower-case names interleave alphabetically instead of by byte value.
	assertOrder(t, Sort(list, SortName, Asc), "4", "2", "1", "3")
}

func TestSortByTeamAndPosition(t *testing.T) {
	list := []players.Player{
		{ID: "1", Team: "LAL", Position: "G"},
		{ID: "2", Team: "BOS", Position: "F"},
		{ID: "3", Position: "C"},
	}

	assertOrder(t, Sort(list, SortTeam, Asc), "3", "2", "1")
	assertOrder(t, Sort(list, SortPosition, Desc), "1", "2", "3")
}

func TestSortUsesLastSuffixedStats(t *testing.T) {
	list := []players.Player{
		{ID: "1", Stats: map[string]float64{"apg_last": 3}},
		{ID: "2", Stats: map[string]float64{"apg_last": 9}},
	}

	assertOrder(t, Sort(list, SortAPG, Desc), "2", "1")
}

func TestComparatorUnknownKeyFallsBackToName(t *testing.T) {
	cmp := NewComparator("bogus", "sideways")
	if cmp.key != SortName || cmp.dir != Asc {
		t.Fatalf("expected name/asc fallback, got %s/%s", cmp.key, cmp.dir)
	}
	if cmp.Compare(players.Player{Name: "A"}, players.Player{Name: "B"}) >= 0 {
		t.Fatalf("expected A before B")
	}
}

func TestComparatorHandlesZeroPlayers(t *testing.T) {
	for _, key := range []SortKey{SortName, SortTeam, SortPosition, SortPPG, SortFTPct} {
		if got := NewComparator(key, Desc).Compare(players.Player{}, players.Player{}); got != 0 {
			t.Fatalf("expected tie for empty players on %s, got %d", key, got)
		}
	}
}

func TestSortEmptyAndNil(t *testing.T) {
	if got := Sort(nil, SortName, Asc); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
