package model

import (
	"sort"

	"github.com/cd1zz/yahoo-ffb-api/wire"
)

// DraftPick is one selection in a league's draft. TeamName and PlayerName
// are enrichment fields filled by a later name lookup; they stay empty when
// the lookup is unavailable or fails.
type DraftPick struct {
	Pick       int    `json:"pick"`
	Round      int    `json:"round"`
	TeamKey    string `json:"team_key"`
	TeamName   string `json:"team_name,omitempty"`
	PlayerKey  string `json:"player_key"`
	PlayerName string `json:"player_name,omitempty"`
	Cost       int    `json:"cost,omitempty"`
}

// DraftPickFromAPI builds a DraftPick from one draft_result node.
func DraftPickFromAPI(data any) (*DraftPick, error) {
	props := wire.Flatten(data)
	if len(props) == 0 {
		return nil, wire.Malformed("draft_result", "draft result node is not an object")
	}

	pick := wire.Int(props["pick"], 0)
	if pick == 0 {
		return nil, wire.Malformed("draft_result", "missing pick number")
	}

	return &DraftPick{
		Pick:      pick,
		Round:     wire.Int(props["round"], 0),
		TeamKey:   wire.Str(props["team_key"], ""),
		PlayerKey: wire.Str(props["player_key"], ""),
		Cost:      wire.Int(props["cost"], 0),
	}, nil
}

// DraftResult is the ordered set of picks for one league's draft.
type DraftResult struct {
	LeagueKey string       `json:"league_key"`
	Picks     []*DraftPick `json:"picks"`
	Done      bool         `json:"is_draft_done"`
}

// NewDraftResult builds an empty DraftResult for pick-by-pick assembly.
func NewDraftResult(leagueKey string) *DraftResult {
	return &DraftResult{LeagueKey: leagueKey}
}

// AddPick appends one pick, keeping the pick list ordered by pick number.
func (d *DraftResult) AddPick(p *DraftPick) {
	d.Picks = append(d.Picks, p)
	sort.Slice(d.Picks, func(i, j int) bool { return d.Picks[i].Pick < d.Picks[j].Pick })
}

// SetDone derives the completion flag. With a known expected pick count
// (roster size times team count) the pick list must reach it; without one,
// any picks at all count as done.
func (d *DraftResult) SetDone(expectedPicks int) {
	if expectedPicks > 0 {
		d.Done = len(d.Picks) >= expectedPicks
		return
	}
	d.Done = len(d.Picks) > 0
}

// PicksByTeam returns the picks made by one team, in pick order.
func (d *DraftResult) PicksByTeam(teamKey string) []*DraftPick {
	var out []*DraftPick
	for _, p := range d.Picks {
		if p.TeamKey == teamKey {
			out = append(out, p)
		}
	}
	return out
}

// PicksByRound returns the picks of one round, in pick order.
func (d *DraftResult) PicksByRound(round int) []*DraftPick {
	var out []*DraftPick
	for _, p := range d.Picks {
		if p.Round == round {
			out = append(out, p)
		}
	}
	return out
}

// Rounds is the highest round number seen, 0 when no picks parsed.
func (d *DraftResult) Rounds() int {
	max := 0
	for _, p := range d.Picks {
		if p.Round > max {
			max = p.Round
		}
	}
	return max
}
