package players

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Stat codes carried in Player.Stats.
const (
	StatPPG    = "ppg"
	StatAPG    = "apg"
	StatRPG    = "rpg"
	StatSPG    = "spg"
	StatBPG    = "bpg"
	StatFGPct  = "fg_pct"
	StatFG3Pct = "fg3_pct"
	StatFTPct  = "ft_pct"
	StatGames  = "games"

	TrendConsistency = "consistency_score"
	TrendPPG         = "ppg_trend"

	statSuffix = "_last"
)

// statAliases maps a stat code to the spelling the backend uses when it differs.
var statAliases = map[string]string{
	StatGames: "games_played",
}

// StatCodes lists every numeric stat the statistics screen can sort by.
var StatCodes = []string{
	StatPPG, StatAPG, StatRPG, StatSPG, StatBPG,
	StatFGPct, StatFG3Pct, StatFTPct, StatGames,
}

// PlayerID identifies a player across fetches. The backend sends either a
// string or an integer; both normalize to the same string form.
type PlayerID string

// UnmarshalJSON accepts JSON strings and numbers; anything else yields "".
func (id *PlayerID) UnmarshalJSON(data []byte) error {
	*id = PlayerID(coerceString(data))
	return nil
}

// MarshalJSON writes integer-looking ids back as JSON numbers.
func (id PlayerID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

// Player is one row of the statistics display as delivered by the backend.
// Fields the backend sends that are not modeled here are kept verbatim so a
// stored snapshot round-trips the full record.
type Player struct {
	ID       PlayerID
	Name     string
	Team     string
	Position string
	Age      float64
	Height   float64 // inches
	Weight   float64 // pounds
	Stats    map[string]float64
	Trends   map[string]float64

	extra map[string]json.RawMessage
}

var knownKeys = map[string]struct{}{
	"id": {}, "name": {}, "team": {}, "position": {},
	"age": {}, "height": {}, "weight": {}, "stats": {}, "trends": {},
}

// UnmarshalJSON decodes a player leniently: mistyped or null fields fall back
// to their zero value instead of failing the whole record.
func (p *Player) UnmarshalJSON(data []byte) error {
	*p = Player{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("player: %w", err)
	}

	p.ID = PlayerID(coerceString(fields["id"]))
	p.Name = coerceString(fields["name"])
	p.Team = coerceString(fields["team"])
	p.Position = coerceString(fields["position"])
	p.Age = coerceNumber(fields["age"])
	p.Height = coerceNumber(fields["height"])
	p.Weight = coerceNumber(fields["weight"])
	p.Stats = coerceNumberMap(fields["stats"])
	p.Trends = coerceNumberMap(fields["trends"])

	for key, raw := range fields {
		if _, ok := knownKeys[key]; ok {
			continue
		}
		if p.extra == nil {
			p.extra = make(map[string]json.RawMessage)
		}
		p.extra[key] = raw
	}
	return nil
}

// MarshalJSON writes the modeled fields plus any preserved upstream fields.
func (p Player) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.extra)+len(knownKeys))
	for key, raw := range p.extra {
		out[key] = raw
	}
	out["id"] = p.ID
	out["name"] = p.Name
	out["team"] = p.Team
	out["position"] = p.Position
	out["age"] = p.Age
	out["height"] = p.Height
	out["weight"] = p.Weight
	if p.Stats != nil {
		out["stats"] = p.Stats
	}
	if p.Trends != nil {
		out["trends"] = p.Trends
	}
	return json.Marshal(out)
}

// Stat returns the value for a stat code, or 0 when absent. The backend
// suffixes current-season stats with "_last"; both spellings are accepted.
func (p Player) Stat(code string) float64 {
	if v, ok := p.Stats[code]; ok {
		return v
	}
	if v, ok := p.Stats[code+statSuffix]; ok {
		return v
	}
	if alias, ok := statAliases[code]; ok {
		return p.Stats[alias]
	}
	return 0
}

// Trend returns a derived metric, or 0 when absent.
func (p Player) Trend(name string) float64 {
	return p.Trends[name]
}

// TrendingUp reports whether a trend metric is strictly positive.
func (p Player) TrendingUp(name string) bool {
	return p.Trend(name) > 0
}

// Extra exposes a preserved upstream field.
func (p Player) Extra(key string) (json.RawMessage, bool) {
	raw, ok := p.extra[key]
	return raw, ok
}

// FormatHeight renders inches as feet'inches".
func FormatHeight(inches float64) string {
	if inches <= 0 {
		return ""
	}
	total := int(inches)
	return fmt.Sprintf("%d'%d\"", total/12, total%12)
}

// Page is one page of players plus the server-reported pagination.
type Page struct {
	Players    []Player `json:"players"`
	TotalPages int      `json:"totalPages"`
	Total      int      `json:"total"`
}
