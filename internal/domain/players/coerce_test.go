package players

import (
	"encoding/json"
	"testing"
)

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{``, 0},
		{`null`, 0},
		{`12.5`, 12.5},
		{`"8"`, 8},
		{`" 3.25 "`, 3.25},
		{`"abc"`, 0},
		{`true`, 0},
		{`[1]`, 0},
		{`{"a":1}`, 0},
	}
	for _, tc := range cases {
		if got := coerceNumber(json.RawMessage(tc.raw)); got != tc.want {
			t.Fatalf("raw %q expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestCoerceString(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{``, ""},
		{`null`, ""},
		{`"LeBron"`, "LeBron"},
		{`23`, "23"},
		{`-1.5`, "-1.5"},
		{`false`, ""},
		{`{}`, ""},
	}
	for _, tc := range cases {
		if got := coerceString(json.RawMessage(tc.raw)); got != tc.want {
			t.Fatalf("raw %q expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestCoerceNumberMap(t *testing.T) {
	if got := coerceNumberMap(json.RawMessage(`[1,2]`)); got != nil {
		t.Fatalf("expected nil for array, got %v", got)
	}
	got := coerceNumberMap(json.RawMessage(`{"a":"1.5","b":null}`))
	if got["a"] != 1.5 || got["b"] != 0 {
		t.Fatalf("unexpected map %v", got)
	}
}
