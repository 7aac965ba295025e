package viewmodel

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
)

// Comparator orders players by one key and direction. Text keys use
// locale-aware collation. A Comparator is not safe for concurrent use; build
// one per sort.
type Comparator struct {
	key      SortKey
	dir      Direction
	collator *collate.Collator
}

// NewComparator builds a comparator; unknown keys order by name, unknown
// directions ascend.
func NewComparator(key SortKey, dir Direction) *Comparator {
	key, _ = ParseSortKey(string(key))
	dir, _ = ParseDirection(string(dir))
	return &Comparator{
		key:      key,
		dir:      dir,
		collator: collate.New(language.English),
	}
}

// Compare returns a negative number when a sorts before b, positive when
// after, and zero for ties.
func (c *Comparator) Compare(a, b players.Player) int {
	var result int
	if c.key.IsText() {
		result = c.collator.CompareString(textValue(a, c.key), textValue(b, c.key))
	} else {
		result = compareFloat(a.Stat(string(c.key)), b.Stat(string(c.key)))
	}
	if c.dir == Desc {
		return -result
	}
	return result
}

// Sort returns a stably sorted copy of list; the input is never modified.
func Sort(list []players.Player, key SortKey, dir Direction) []players.Player {
	out := make([]players.Player, len(list))
	copy(out, list)

	cmp := NewComparator(key, dir)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp.Compare(out[i], out[j]) < 0
	})
	return out
}

func textValue(p players.Player, key SortKey) string {
	switch key {
	case SortTeam:
		return p.Team
	case SortPosition:
		return p.Position
	default:
		return p.Name
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
