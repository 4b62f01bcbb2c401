package model

import "github.com/cd1zz/yahoo-ffb-api/wire"

// PlayerStatus is a normalized health/roster status. Yahoo's status field is
// a short code that is absent entirely for healthy players.
type PlayerStatus string

const (
	StatusHealthy        PlayerStatus = "healthy"
	StatusQuestionable   PlayerStatus = "questionable"
	StatusDoubtful       PlayerStatus = "doubtful"
	StatusOut            PlayerStatus = "out"
	StatusInjuredReserve PlayerStatus = "injured_reserve"
	StatusSuspended      PlayerStatus = "suspended"
	StatusInactive       PlayerStatus = "inactive"
	StatusUnknown        PlayerStatus = "unknown"
)

// ParsePlayerStatus maps Yahoo status codes onto PlayerStatus values.
func ParsePlayerStatus(code string) PlayerStatus {
	switch code {
	case "":
		return StatusHealthy
	case "Q":
		return StatusQuestionable
	case "D":
		return StatusDoubtful
	case "O":
		return StatusOut
	case "IR", "IR-R", "PUP-P", "PUP-R", "NFI-R":
		return StatusInjuredReserve
	case "SUSP":
		return StatusSuspended
	case "NA":
		return StatusInactive
	}
	return StatusUnknown
}

// Player is league-independent player metadata.
type Player struct {
	PlayerKey         string       `json:"player_key"`
	PlayerID          string       `json:"player_id"`
	FullName          string       `json:"full_name"`
	FirstName         string       `json:"first_name"`
	LastName          string       `json:"last_name"`
	TeamAbbr          string       `json:"team_abbr"`
	TeamFullName      string       `json:"team_full_name"`
	UniformNumber     string       `json:"uniform_number"`
	DisplayPosition   string       `json:"display_position"`
	PrimaryPosition   string       `json:"primary_position"`
	PositionType      string       `json:"position_type"`
	EligiblePositions []string     `json:"eligible_positions"`
	Status            PlayerStatus `json:"status"`
	StatusFull        string       `json:"status_full,omitempty"`
	InjuryNote        string       `json:"injury_note,omitempty"`
	ByeWeek           int          `json:"bye_week"`
	IsUndroppable     bool         `json:"is_undroppable"`
}

// PlayerFromAPI builds a Player from a player node: the player array
// (property list first) or a flat property map.
func PlayerFromAPI(data any) (*Player, error) {
	var props map[string]any
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return nil, wire.Malformed("player", "player array is empty")
		}
		props = wire.Flatten(v[0])
	case map[string]any:
		props = wire.Flatten(v)
	default:
		return nil, wire.Malformed("player", "player node is neither array nor object")
	}

	key := wire.Str(props["player_key"], "")
	if key == "" {
		return nil, wire.Malformed("player", "missing player_key")
	}

	p := &Player{
		PlayerKey:       key,
		PlayerID:        wire.Str(props["player_id"], ""),
		FullName:        wire.Str(wire.Get(props, "name", "full"), ""),
		FirstName:       wire.Str(wire.Get(props, "name", "first"), ""),
		LastName:        wire.Str(wire.Get(props, "name", "last"), ""),
		TeamAbbr:        wire.Str(props["editorial_team_abbr"], ""),
		TeamFullName:    wire.Str(props["editorial_team_full_name"], ""),
		UniformNumber:   wire.Str(props["uniform_number"], ""),
		DisplayPosition: wire.Str(props["display_position"], ""),
		PrimaryPosition: wire.Str(props["primary_position"], ""),
		PositionType:    wire.Str(props["position_type"], ""),
		Status:          ParsePlayerStatus(wire.Str(props["status"], "")),
		StatusFull:      wire.Str(props["status_full"], ""),
		InjuryNote:      wire.Str(props["injury_note"], ""),
		ByeWeek:         wire.Int(wire.Get(props, "bye_weeks", "week"), 0),
		IsUndroppable:   wire.Bool(props["is_undroppable"]),
	}

	for _, entry := range wire.Items(props["eligible_positions"], "position") {
		if pos := wire.Str(entry, ""); pos != "" {
			p.EligiblePositions = append(p.EligiblePositions, pos)
		}
	}

	return p, nil
}

// IsFreeAgent reports whether the player has no NFL team affiliation.
func (p *Player) IsFreeAgent() bool {
	return p.TeamAbbr == ""
}
