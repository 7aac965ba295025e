package players

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPlayerUnmarshalAcceptsIntegerAndStringIDs(t *testing.T) {
	var list []Player
	if err := json.Unmarshal([]byte(`[{"id": 7}, {"id": "abc"}, {"id": null}]`), &list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list[0].ID != "7" || list[1].ID != "abc" || list[2].ID != "" {
		t.Fatalf("unexpected ids %q %q %q", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestPlayerUnmarshalCoercesMistypedFields(t *testing.T) {
	body := `{
		"id": 1,
		"name": 42,
		"team": null,
		"position": ["G"],
		"age": "27",
		"height": true,
		"weight": {"lbs": 200},
		"stats": {"ppg_last": "21.5", "apg": null, "rpg": 7},
		"trends": "n/a"
	}`
	var p Player
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "42" || p.Team != "" || p.Position != "" {
		t.Fatalf("unexpected text fields %+v", p)
	}
	if p.Age != 27 || p.Height != 0 || p.Weight != 0 {
		t.Fatalf("unexpected numeric fields age=%v height=%v weight=%v", p.Age, p.Height, p.Weight)
	}
	if p.Stat(StatPPG) != 21.5 {
		t.Fatalf("expected ppg from _last key, got %v", p.Stat(StatPPG))
	}
	if p.Stat(StatAPG) != 0 || p.Stat(StatRPG) != 7 || p.Stat(StatSPG) != 0 {
		t.Fatalf("unexpected stats %+v", p.Stats)
	}
	if p.Trends != nil {
		t.Fatalf("expected nil trends for non-object, got %+v", p.Trends)
	}
}

func TestPlayerStatPrefersBareCode(t *testing.T) {
	p := Player{Stats: map[string]float64{"ppg": 10, "ppg_last": 30}}
	if got := p.Stat(StatPPG); got != 10 {
		t.Fatalf("expected bare code to win, got %v", got)
	}
}

func TestPlayerStatFallsBackToBackendSpelling(t *testing.T) {
	p := Player{Stats: map[string]float64{"apg_last": 6.1, "games_played": 71}}
	if got := p.Stat(StatAPG); got != 6.1 {
		t.Fatalf("expected suffixed code, got %v", got)
	}
	if got := p.Stat(StatGames); got != 71 {
		t.Fatalf("expected games_played alias, got %v", got)
	}
	if got := p.Stat(StatBPG); got != 0 {
		t.Fatalf("expected absent stat to read as zero, got %v", got)
	}
}

func TestPlayerTrendingUp(t *testing.T) {
	p := Player{Trends: map[string]float64{TrendPPG: 1.5, TrendConsistency: 0}}
	if !p.TrendingUp(TrendPPG) {
		t.Fatalf("expected positive trend to be up")
	}
	if p.TrendingUp(TrendConsistency) {
		t.Fatalf("expected zero trend to be not up")
	}
	if (Player{}).TrendingUp(TrendPPG) {
		t.Fatalf("expected absent trend to be not up")
	}
}

func TestPlayerRoundTripPreservesUnknownFields(t *testing.T) {
	body := `{"id":12,"name":"A","college":"Duke","stats":{"ppg":3}}`
	var p Player
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw, ok := p.Extra("college"); !ok || string(raw) != `"Duke"` {
		t.Fatalf("expected college preserved, got %s", raw)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(out), `"college":"Duke"`) {
		t.Fatalf("expected preserved field in %s", out)
	}
	if !strings.Contains(string(out), `"id":12`) {
		t.Fatalf("expected integer id written back as number in %s", out)
	}

	var again Player
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != "12" || again.Stat(StatPPG) != 3 {
		t.Fatalf("unexpected round trip %+v", again)
	}
}

func TestPlayerIDMarshalKeepsNonIntegerStrings(t *testing.T) {
	cases := map[PlayerID]string{
		"7":   `7`,
		"007": `"007"`,
		"abc": `"abc"`,
		"":    `""`,
	}
	for id, want := range cases {
		out, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("marshal %q failed: %v", id, err)
		}
		if string(out) != want {
			t.Fatalf("id %q expected %s, got %s", id, want, out)
		}
	}
}

func TestPlayerUnmarshalRejectsNonObject(t *testing.T) {
	var p Player
	if err := json.Unmarshal([]byte(`"nope"`), &p); err == nil {
		t.Fatalf("expected error for non-object player")
	}
}

func TestFormatHeight(t *testing.T) {
	if got := FormatHeight(78); got != `6'6"` {
		t.Fatalf("unexpected height %s", got)
	}
	if got := FormatHeight(0); got != "" {
		t.Fatalf("expected empty height for zero, got %s", got)
	}
}
