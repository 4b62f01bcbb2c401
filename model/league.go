// Package model holds the domain entities parsed out of Yahoo Fantasy Sports
// API payloads. Every entity is built once by a FromAPI constructor over the
// decoded JSON tree and is not mutated afterwards; the container types
// (SeasonResults, DraftResult) accept sequential Add calls during assembly
// only.
package model

import "github.com/cd1zz/yahoo-ffb-api/wire"

// League is the metadata for one season's competition instance.
type League struct {
	LeagueKey   string `json:"league_key"`
	LeagueID    string `json:"league_id"`
	Name        string `json:"name"`
	Season      int    `json:"season"`
	GameCode    string `json:"game_code"`
	URL         string `json:"url"`
	NumTeams    int    `json:"num_teams"`
	ScoringType string `json:"scoring_type"`
	CurrentWeek int    `json:"current_week"`
	StartWeek   int    `json:"start_week"`
	EndWeek     int    `json:"end_week"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	DraftStatus string `json:"draft_status"`
	IsFinished  bool   `json:"is_finished"`
}

// LeagueFromAPI builds a League from the fantasy_content league node, which
// is either the league array (metadata property list first) or an already
// flattened property map.
func LeagueFromAPI(data any) (*League, error) {
	var props map[string]any
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return nil, wire.Malformed("league", "league array is empty")
		}
		props = wire.Flatten(v[0])
	case map[string]any:
		props = wire.Flatten(v)
	default:
		return nil, wire.Malformed("league", "league node is neither array nor object")
	}

	key := wire.Str(props["league_key"], "")
	if key == "" {
		return nil, wire.Malformed("league", "missing league_key")
	}

	return &League{
		LeagueKey:   key,
		LeagueID:    wire.Str(props["league_id"], ""),
		Name:        wire.Str(props["name"], ""),
		Season:      wire.Int(props["season"], 0),
		GameCode:    wire.Str(props["game_code"], ""),
		URL:         wire.Str(props["url"], ""),
		NumTeams:    wire.Int(props["num_teams"], 0),
		ScoringType: wire.Str(props["scoring_type"], ""),
		CurrentWeek: wire.Int(props["current_week"], 0),
		StartWeek:   wire.Int(props["start_week"], 1),
		EndWeek:     wire.Int(props["end_week"], 0),
		StartDate:   wire.Str(props["start_date"], ""),
		EndDate:     wire.Str(props["end_date"], ""),
		DraftStatus: wire.Str(props["draft_status"], ""),
		IsFinished:  wire.Bool(props["is_finished"]),
	}, nil
}

// RosterPosition is one lineup slot definition from league settings.
type RosterPosition struct {
	Position     string `json:"position"`
	PositionType string `json:"position_type"`
	Count        int    `json:"count"`
}

// StatCategory names one scored statistic.
type StatCategory struct {
	StatID      int    `json:"stat_id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// StatModifier is the point value applied per unit of a statistic.
type StatModifier struct {
	StatID int     `json:"stat_id"`
	Value  float64 `json:"value"`
}

// LeagueSettings is the scoring and roster configuration of a league.
type LeagueSettings struct {
	LeagueKey        string           `json:"league_key"`
	DraftType        string           `json:"draft_type"`
	IsAuctionDraft   bool             `json:"is_auction_draft"`
	ScoringType      string           `json:"scoring_type"`
	UsesPlayoff      bool             `json:"uses_playoff"`
	NumPlayoffTeams  int              `json:"num_playoff_teams"`
	PlayoffStartWeek int              `json:"playoff_start_week"`
	UsesFAAB         bool             `json:"uses_faab"`
	WaiverType       string           `json:"waiver_type"`
	TradeEndDate     string           `json:"trade_end_date"`
	RosterPositions  []RosterPosition `json:"roster_positions"`
	StatCategories   []StatCategory   `json:"stat_categories"`
	StatModifiers    []StatModifier   `json:"stat_modifiers"`
}

// LeagueSettingsFromAPI builds LeagueSettings from the settings node found at
// league[1].settings, which arrives as a one-element array wrapping the
// settings object.
func LeagueSettingsFromAPI(data any, leagueKey string) (*LeagueSettings, error) {
	entries := wire.List(data)
	if len(entries) == 0 {
		return nil, wire.MalformedCtx("settings", leagueKey, "settings node is empty")
	}
	props, ok := entries[0].(map[string]any)
	if !ok {
		return nil, wire.MalformedCtx("settings", leagueKey, "settings entry is not an object")
	}

	s := &LeagueSettings{
		LeagueKey:        leagueKey,
		DraftType:        wire.Str(props["draft_type"], ""),
		IsAuctionDraft:   wire.Bool(props["is_auction_draft"]),
		ScoringType:      wire.Str(props["scoring_type"], ""),
		UsesPlayoff:      wire.Bool(props["uses_playoff"]),
		NumPlayoffTeams:  wire.Int(props["num_playoff_teams"], 0),
		PlayoffStartWeek: wire.Int(props["playoff_start_week"], 0),
		UsesFAAB:         wire.Bool(props["uses_faab"]),
		WaiverType:       wire.Str(props["waiver_type"], ""),
		TradeEndDate:     wire.Str(props["trade_end_date"], ""),
	}

	for _, entry := range wire.Items(props["roster_positions"], "roster_position") {
		rp := wire.Flatten(entry)
		pos := wire.Str(rp["position"], "")
		if pos == "" {
			continue
		}
		s.RosterPositions = append(s.RosterPositions, RosterPosition{
			Position:     pos,
			PositionType: wire.Str(rp["position_type"], ""),
			Count:        wire.Int(rp["count"], 0),
		})
	}

	for _, entry := range wire.Items(wire.Get(props, "stat_categories", "stats"), "stat") {
		sc := wire.Flatten(entry)
		s.StatCategories = append(s.StatCategories, StatCategory{
			StatID:      wire.Int(sc["stat_id"], 0),
			Name:        wire.Str(sc["name"], ""),
			DisplayName: wire.Str(sc["display_name"], ""),
		})
	}

	for _, entry := range wire.Items(wire.Get(props, "stat_modifiers", "stats"), "stat") {
		sm := wire.Flatten(entry)
		s.StatModifiers = append(s.StatModifiers, StatModifier{
			StatID: wire.Int(sm["stat_id"], 0),
			Value:  wire.Float(sm["value"], 0),
		})
	}

	return s, nil
}

// RosterSize is the number of lineup slots a single team fills, bench and IR
// included.
func (s *LeagueSettings) RosterSize() int {
	total := 0
	for _, rp := range s.RosterPositions {
		total += rp.Count
	}
	return total
}

// StarterSlots returns the non-bench roster positions in settings order.
func (s *LeagueSettings) StarterSlots() []RosterPosition {
	out := make([]RosterPosition, 0, len(s.RosterPositions))
	for _, rp := range s.RosterPositions {
		if !IsBenchSlot(rp.Position) {
			out = append(out, rp)
		}
	}
	return out
}
