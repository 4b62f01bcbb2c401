package model

import (
	"reflect"
	"testing"
)

func TestLeagueFromAPI(t *testing.T) {
	fixture := `[
		[
			{"league_key": "nfl.l.431"},
			{"league_id": "431"},
			{"name": "Test League"},
			{"season": "2024"},
			{"game_code": "nfl"},
			{"num_teams": 10},
			{"scoring_type": "head"},
			{"current_week": 3},
			{"start_week": "1"},
			{"end_week": "17"},
			{"is_finished": 0},
			{"draft_status": "postdraft"}
		]
	]`

	l, err := LeagueFromAPI(decode(t, fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &League{
		LeagueKey:   "nfl.l.431",
		LeagueID:    "431",
		Name:        "Test League",
		Season:      2024,
		GameCode:    "nfl",
		NumTeams:    10,
		ScoringType: "head",
		CurrentWeek: 3,
		StartWeek:   1,
		EndWeek:     17,
		DraftStatus: "postdraft",
	}
	if !reflect.DeepEqual(l, want) {
		t.Errorf("got %+v, want %+v", l, want)
	}
}

func TestLeagueFromAPIFlatMap(t *testing.T) {
	l, err := LeagueFromAPI(decode(t, `{"league_key": "nfl.l.1", "name": "Flat", "season": "2023"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Name != "Flat" || l.Season != 2023 {
		t.Errorf("got %+v", l)
	}
}

func TestLeagueFromAPIMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"empty array", []any{}},
		{"scalar", "nope"},
		{"missing key", map[string]any{"name": "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LeagueFromAPI(tc.in); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLeagueSettingsFromAPI(t *testing.T) {
	fixture := `[
		{
			"draft_type": "live",
			"is_auction_draft": "0",
			"scoring_type": "head",
			"uses_playoff": "1",
			"num_playoff_teams": "6",
			"playoff_start_week": "15",
			"uses_faab": "1",
			"waiver_type": "FR",
			"roster_positions": [
				{"roster_position": {"position": "QB", "position_type": "O", "count": 1}},
				{"roster_position": {"position": "RB", "position_type": "O", "count": 2}},
				{"roster_position": {"position": "W/R/T", "position_type": "O", "count": 1}},
				{"roster_position": {"position": "BN", "count": 5}}
			],
			"stat_categories": {
				"stats": [
					{"stat": {"stat_id": "4", "name": "Passing Yards", "display_name": "Pass Yds"}},
					{"stat": {"stat_id": "5", "name": "Passing Touchdowns", "display_name": "Pass TD"}}
				]
			},
			"stat_modifiers": {
				"stats": [
					{"stat": {"stat_id": "4", "value": "0.04"}},
					{"stat": {"stat_id": "5", "value": "4"}}
				]
			}
		}
	]`

	s, err := LeagueSettingsFromAPI(decode(t, fixture), "nfl.l.431")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.DraftType != "live" || !s.UsesPlayoff || s.NumPlayoffTeams != 6 {
		t.Errorf("settings scalars: got %+v", s)
	}
	if len(s.RosterPositions) != 4 {
		t.Fatalf("roster positions: got %d", len(s.RosterPositions))
	}
	if s.RosterPositions[2].Position != "W/R/T" || s.RosterPositions[2].Count != 1 {
		t.Errorf("flex slot: got %+v", s.RosterPositions[2])
	}
	if got := s.RosterSize(); got != 9 {
		t.Errorf("roster size: got %d, want 9", got)
	}
	if got := len(s.StarterSlots()); got != 3 {
		t.Errorf("starter slots: got %d, want 3", got)
	}
	if len(s.StatModifiers) != 2 || s.StatModifiers[0].Value != 0.04 {
		t.Errorf("stat modifiers: got %+v", s.StatModifiers)
	}
	if len(s.StatCategories) != 2 || s.StatCategories[1].DisplayName != "Pass TD" {
		t.Errorf("stat categories: got %+v", s.StatCategories)
	}
}

func TestTeamFromAPI(t *testing.T) {
	fixture := `[
		[
			{"team_key": "nfl.l.431.t.1"},
			{"team_id": "1"},
			{"name": "Alpha"},
			{"waiver_priority": 4},
			{"number_of_moves": "12"},
			{"number_of_trades": 1},
			{"managers": [
				{"manager": {"manager_id": "1", "nickname": "Sam", "guid": "ABC123", "is_commissioner": "1"}},
				{"manager": {"manager_id": "7", "nickname": "Riley", "guid": "DEF456"}}
			]}
		]
	]`

	team, err := TeamFromAPI(decode(t, fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if team.TeamKey != "nfl.l.431.t.1" || team.Name != "Alpha" {
		t.Errorf("identity: got %+v", team)
	}
	if team.WaiverPriority != 4 || team.NumberOfMoves != 12 {
		t.Errorf("counters: got %+v", team)
	}
	if len(team.Managers) != 2 {
		t.Fatalf("managers: got %d", len(team.Managers))
	}
	if !team.Managers[0].IsCommissioner || team.Managers[1].IsCommissioner {
		t.Error("commissioner flags wrong")
	}
	if got := team.ManagerNames(); !reflect.DeepEqual(got, []string{"Sam", "Riley"}) {
		t.Errorf("ManagerNames: got %v", got)
	}
}

func TestPlayerFromAPI(t *testing.T) {
	fixture := `[
		[
			{"player_key": "nfl.p.100"},
			{"player_id": "100"},
			{"name": {"full": "Joe Example", "first": "Joe", "last": "Example"}},
			{"editorial_team_abbr": "SF"},
			{"uniform_number": "19"},
			{"display_position": "WR"},
			{"primary_position": "WR"},
			{"position_type": "O"},
			{"eligible_positions": [{"position": "WR"}, {"position": "W/R/T"}]},
			{"status": "Q"},
			{"status_full": "Questionable"},
			{"bye_weeks": {"week": "9"}}
		]
	]`

	p, err := PlayerFromAPI(decode(t, fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.FullName != "Joe Example" || p.TeamAbbr != "SF" {
		t.Errorf("identity: got %+v", p)
	}
	if p.Status != StatusQuestionable {
		t.Errorf("status: got %q", p.Status)
	}
	if p.ByeWeek != 9 {
		t.Errorf("bye week: got %d", p.ByeWeek)
	}
	if !reflect.DeepEqual(p.EligiblePositions, []string{"WR", "W/R/T"}) {
		t.Errorf("eligible positions: got %v", p.EligiblePositions)
	}
	if p.IsFreeAgent() {
		t.Error("player with a team is not a free agent")
	}
}

func TestParsePlayerStatus(t *testing.T) {
	tests := []struct {
		code string
		want PlayerStatus
	}{
		{"", StatusHealthy},
		{"Q", StatusQuestionable},
		{"D", StatusDoubtful},
		{"O", StatusOut},
		{"IR", StatusInjuredReserve},
		{"PUP-R", StatusInjuredReserve},
		{"SUSP", StatusSuspended},
		{"NA", StatusInactive},
		{"XYZ", StatusUnknown},
	}
	for _, tc := range tests {
		if got := ParsePlayerStatus(tc.code); got != tc.want {
			t.Errorf("ParsePlayerStatus(%q): got %q, want %q", tc.code, got, tc.want)
		}
	}
}
