package model

import (
	"log"

	"github.com/cd1zz/yahoo-ffb-api/wire"
)

// PlayerLine is a player's single-week line inside a roster: identity, the
// lineup slot occupied that week, and realized/projected points.
type PlayerLine struct {
	PlayerKey        string  `json:"player_key"`
	PlayerID         string  `json:"player_id"`
	Name             string  `json:"name"`
	Position         string  `json:"position"`
	SelectedPosition string  `json:"selected_position"`
	Status           string  `json:"status,omitempty"`
	Points           float64 `json:"points"`
	ProjectedPoints  float64 `json:"projected_points"`
	IsStarter        bool    `json:"is_starter"`
}

// PlayerLineFromAPI builds a PlayerLine from a roster player node: an array
// whose first element is the property list, followed by elements carrying
// selected_position and player_points in varying order.
func PlayerLineFromAPI(data any) (*PlayerLine, error) {
	arr, ok := data.([]any)
	if !ok || len(arr) == 0 {
		return nil, wire.Malformed("roster_player", "player node is not a non-empty array")
	}

	props := wire.Flatten(arr[0])
	key := wire.Str(props["player_key"], "")
	if key == "" {
		return nil, wire.Malformed("roster_player", "missing player_key")
	}

	pl := &PlayerLine{
		PlayerKey: key,
		PlayerID:  wire.Str(props["player_id"], ""),
		Name:      wire.Str(wire.Get(props, "name", "full"), ""),
		Position:  wire.Str(props["display_position"], ""),
		Status:    wire.Str(props["status"], ""),
	}

	for _, el := range arr[1:] {
		if sel := wire.Get(el, "selected_position"); sel != nil {
			pl.SelectedPosition = wire.Str(wire.Flatten(sel)["position"], "")
		}
		if v := wire.Get(el, "player_points", "total"); v != nil {
			pl.Points = wire.Float(v, 0)
		}
		if v := wire.Get(el, "player_projected_points", "total"); v != nil {
			pl.ProjectedPoints = wire.Float(v, 0)
		}
	}

	pl.IsStarter = !IsBenchSlot(pl.SelectedPosition)
	return pl, nil
}

// TeamRoster is one team's full player list for one week.
type TeamRoster struct {
	TeamKey  string        `json:"team_key"`
	TeamName string        `json:"team_name"`
	Week     int           `json:"week"`
	Players  []*PlayerLine `json:"players"`
}

// TeamRosterFromAPI builds a TeamRoster from a team-with-roster node: the
// team array, whose first element is the team property list and whose later
// elements include the roster container. Players that fail to parse are
// logged and skipped.
func TeamRosterFromAPI(data any, week int) (*TeamRoster, error) {
	arr, ok := data.([]any)
	if !ok || len(arr) == 0 {
		return nil, wire.Malformed("roster", "team node is not a non-empty array")
	}

	props := wire.Flatten(arr[0])
	teamKey := wire.Str(props["team_key"], "")
	if teamKey == "" {
		return nil, wire.Malformed("roster", "missing team_key")
	}

	var playersNode any
	for _, el := range arr[1:] {
		if node := wire.Get(el, "roster", "0", "players"); node != nil {
			playersNode = node
			break
		}
		if node := wire.Get(el, "roster", "players"); node != nil {
			playersNode = node
			break
		}
	}
	if playersNode == nil {
		return nil, wire.MalformedCtx("roster", teamKey, "no players container")
	}

	tr := &TeamRoster{
		TeamKey:  teamKey,
		TeamName: wire.Str(props["name"], ""),
		Week:     week,
	}

	for _, entry := range wire.Items(playersNode, "player") {
		pl, err := PlayerLineFromAPI(entry)
		if err != nil {
			log.Printf("skipping player in roster %s week %d: %v", teamKey, week, err)
			continue
		}
		tr.Players = append(tr.Players, pl)
	}

	return tr, nil
}

// Starters returns players occupying a non-bench slot, roster order.
func (tr *TeamRoster) Starters() []*PlayerLine {
	var out []*PlayerLine
	for _, p := range tr.Players {
		if p.IsStarter {
			out = append(out, p)
		}
	}
	return out
}

// Bench returns players on bench or IR slots, roster order.
func (tr *TeamRoster) Bench() []*PlayerLine {
	var out []*PlayerLine
	for _, p := range tr.Players {
		if !p.IsStarter {
			out = append(out, p)
		}
	}
	return out
}

// StarterPoints sums realized points over the starting lineup.
func (tr *TeamRoster) StarterPoints() float64 {
	total := 0.0
	for _, p := range tr.Starters() {
		total += p.Points
	}
	return total
}

// BenchPoints sums realized points over bench and IR.
func (tr *TeamRoster) BenchPoints() float64 {
	total := 0.0
	for _, p := range tr.Bench() {
		total += p.Points
	}
	return total
}

// TotalPoints sums realized points over the whole roster. It always equals
// StarterPoints plus BenchPoints.
func (tr *TeamRoster) TotalPoints() float64 {
	total := 0.0
	for _, p := range tr.Players {
		total += p.Points
	}
	return total
}

// PlayersAt returns the players whose selected position is slot, roster
// order.
func (tr *TeamRoster) PlayersAt(slot string) []*PlayerLine {
	var out []*PlayerLine
	for _, p := range tr.Players {
		if p.SelectedPosition == slot {
			out = append(out, p)
		}
	}
	return out
}
