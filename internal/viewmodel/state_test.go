package viewmodel

import (
	"encoding/json"
	"testing"
)

func TestNewViewStateDefaults(t *testing.T) {
	s := NewViewState()
	if s.Page != 1 || s.TotalPages != 1 {
		t.Fatalf("unexpected pagination %+v", s)
	}
	if s.SortKey != SortName || s.Direction != Asc || s.Display != DisplayTable {
		t.Fatalf("unexpected defaults %+v", s)
	}
}

func TestFilterChangesResetPage(t *testing.T) {
	base := NewViewState().WithTotalPages(9).WithPage(5)

	cases := map[string]ViewState{
		"search":   base.WithSearch("curry"),
		"team":     base.WithTeam("GSW"),
		"position": base.WithPosition("G"),
		"clear":    base.WithSearch("x").WithPage(4).ClearFilters(),
	}
	for name, s := range cases {
		if s.Page != 1 {
			t.Fatalf("%s: expected page reset to 1, got %d", name, s.Page)
		}
	}
}

func TestSortChangesKeepPage(t *testing.T) {
	base := NewViewState().WithTotalPages(9).WithPage(5)

	if s := base.WithSort(SortPPG, Desc); s.Page != 5 {
		t.Fatalf("expected page kept on sort, got %d", s.Page)
	}
	if s := base.ToggleSort(SortName); s.Page != 5 {
		t.Fatalf("expected page kept on toggle, got %d", s.Page)
	}
	if s := base.WithDisplay(DisplayCards); s.Page != 5 || s.Display != DisplayCards {
		t.Fatalf("unexpected display change %+v", s)
	}
}

func TestToggleSort(t *testing.T) {
	s := NewViewState()

	s = s.ToggleSort(SortName)
	if s.SortKey != SortName || s.Direction != Desc {
		t.Fatalf("expected active key to flip to desc, got %s/%s", s.SortKey, s.Direction)
	}
	s = s.ToggleSort(SortName)
	if s.Direction != Asc {
		t.Fatalf("expected flip back to asc, got %s", s.Direction)
	}
	s = s.ToggleSort(SortName).ToggleSort(SortRPG)
	if s.SortKey != SortRPG || s.Direction != Asc {
		t.Fatalf("expected new key ascending, got %s/%s", s.SortKey, s.Direction)
	}
}

func TestWithSortNormalizesInput(t *testing.T) {
	s := NewViewState().WithSort("PPG", "DESC")
	if s.SortKey != SortPPG || s.Direction != Desc {
		t.Fatalf("expected normalized ppg/desc, got %s/%s", s.SortKey, s.Direction)
	}
	s = s.WithSort("height", "up")
	if s.SortKey != SortName || s.Direction != Asc {
		t.Fatalf("expected fallback name/asc, got %s/%s", s.SortKey, s.Direction)
	}
}

func TestWithPageClamps(t *testing.T) {
	s := NewViewState().WithTotalPages(3)

	if got := s.WithPage(0).Page; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	if got := s.WithPage(10).Page; got != 3 {
		t.Fatalf("expected clamp to 3, got %d", got)
	}
	if got := s.WithPage(2).Page; got != 2 {
		t.Fatalf("expected page 2, got %d", got)
	}
	if got := (ViewState{}).WithPage(4).Page; got != 1 {
		t.Fatalf("expected zero total pages to clamp to 1, got %d", got)
	}
}

func TestWithTotalPagesFloorsAtOne(t *testing.T) {
	if got := NewViewState().WithTotalPages(0).TotalPages; got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestWithDisplayIgnoresUnknownMode(t *testing.T) {
	s := NewViewState().WithDisplay(DisplayCards).WithDisplay("grid")
	if s.Display != DisplayCards {
		t.Fatalf("expected unknown mode ignored, got %s", s.Display)
	}
}

func TestParseSortKeyCoversStatCodes(t *testing.T) {
	valid := []string{"name", "team", "position", "ppg", "apg", "rpg", "spg", "bpg", "fg_pct", "fg3_pct", "ft_pct", "games"}
	for _, raw := range valid {
		if _, ok := ParseSortKey(raw); !ok {
			t.Fatalf("expected %s to be valid", raw)
		}
	}
	if _, ok := ParseSortKey("age"); ok {
		t.Fatalf("expected age to be rejected")
	}
}

func TestViewStateJSONRoundTrip(t *testing.T) {
	s := NewViewState().WithSearch("lebron").WithSort(SortFG3Pct, Desc)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded ViewState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded != s {
		t.Fatalf("expected %+v, got %+v", s, decoded)
	}
}
