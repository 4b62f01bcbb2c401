package model

import (
	"math"
	"testing"
)

const rosterFixture = `[
	[
		{"team_key": "nfl.l.431.t.1"},
		{"team_id": "1"},
		{"name": "Alpha"}
	],
	{
		"roster": {
			"coverage_type": "week",
			"week": "3",
			"0": {
				"players": {
					"0": {"player": [
						[{"player_key": "nfl.p.1"}, {"name": {"full": "QB One"}}, {"display_position": "QB"}],
						{"selected_position": [{"coverage_type": "week"}, {"position": "QB"}]},
						{"player_points": {"total": "22.5"}, "player_projected_points": {"total": "18.0"}}
					]},
					"1": {"player": [
						[{"player_key": "nfl.p.2"}, {"name": {"full": "RB One"}}, {"display_position": "RB"}],
						{"selected_position": [{"position": "RB"}]},
						{"player_points": {"total": "14.1"}}
					]},
					"2": {"player": [
						[{"player_key": "nfl.p.3"}, {"name": {"full": "Bench Guy"}}, {"display_position": "WR"}],
						{"selected_position": [{"position": "BN"}]},
						{"player_points": {"total": "9.9"}}
					]},
					"3": {"player": [
						[{"player_key": "nfl.p.4"}, {"name": {"full": "Hurt Guy"}}, {"display_position": "TE"}, {"status": "IR"}],
						{"selected_position": [{"position": "IR"}]},
						{"player_points": {"total": "0"}}
					]},
					"count": 4
				}
			}
		}
	}
]`

func TestTeamRosterFromAPI(t *testing.T) {
	tr, err := TeamRosterFromAPI(decode(t, rosterFixture), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tr.TeamKey != "nfl.l.431.t.1" || tr.TeamName != "Alpha" || tr.Week != 3 {
		t.Errorf("identity: got %+v", tr)
	}
	if len(tr.Players) != 4 {
		t.Fatalf("players: got %d", len(tr.Players))
	}

	qb := tr.Players[0]
	if qb.Name != "QB One" || qb.SelectedPosition != "QB" || !qb.IsStarter {
		t.Errorf("qb line: got %+v", qb)
	}
	if qb.Points != 22.5 || qb.ProjectedPoints != 18.0 {
		t.Errorf("qb points: got %+v", qb)
	}

	if got := len(tr.Starters()); got != 2 {
		t.Errorf("starters: got %d, want 2", got)
	}
	if got := len(tr.Bench()); got != 2 {
		t.Errorf("bench: got %d, want 2", got)
	}
	for _, p := range tr.Bench() {
		if p.IsStarter {
			t.Errorf("bench player %s flagged as starter", p.Name)
		}
	}
}

func TestRosterPointsPartition(t *testing.T) {
	tr, err := TeamRosterFromAPI(decode(t, rosterFixture), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tr.StarterPoints(); math.Abs(got-36.6) > 1e-9 {
		t.Errorf("starter points: got %v", got)
	}
	if got := tr.BenchPoints(); math.Abs(got-9.9) > 1e-9 {
		t.Errorf("bench points: got %v", got)
	}
	if diff := tr.StarterPoints() + tr.BenchPoints() - tr.TotalPoints(); math.Abs(diff) > 1e-9 {
		t.Errorf("partition invariant broken by %v", diff)
	}
}

func TestTeamRosterPlayersList(t *testing.T) {
	// Some responses serialize players as a plain list instead of the
	// numeric-keyed dict.
	fixture := `[
		[{"team_key": "t.9"}, {"name": "Niner"}],
		{"roster": {"0": {"players": [
			{"player": [
				[{"player_key": "p.1"}, {"name": {"full": "Solo"}}],
				{"selected_position": [{"position": "QB"}]},
				{"player_points": {"total": "10"}}
			]}
		]}}}
	]`

	tr, err := TeamRosterFromAPI(decode(t, fixture), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Players) != 1 || tr.Players[0].Name != "Solo" {
		t.Errorf("got %+v", tr.Players)
	}
}

func TestTeamRosterSkipsBadPlayer(t *testing.T) {
	fixture := `[
		[{"team_key": "t.1"}],
		{"roster": {"0": {"players": {
			"0": {"player": "garbage"},
			"1": {"player": [
				[{"player_key": "p.2"}, {"name": {"full": "Kept"}}],
				{"selected_position": [{"position": "RB"}]},
				{"player_points": {"total": "5"}}
			]},
			"count": 2
		}}}}
	]`

	tr, err := TeamRosterFromAPI(decode(t, fixture), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Players) != 1 || tr.Players[0].Name != "Kept" {
		t.Errorf("got %+v", tr.Players)
	}
}

func TestTeamRosterMissingContainer(t *testing.T) {
	if _, err := TeamRosterFromAPI(decode(t, `[[{"team_key": "t.1"}]]`), 1); err == nil {
		t.Fatal("expected error when roster container is absent")
	}
}

func TestIsBenchSlot(t *testing.T) {
	tests := []struct {
		pos  string
		want bool
	}{
		{"BN", true},
		{"IR", true},
		{"IR+", true},
		{"", true},
		{"QB", false},
		{"W/R/T", false},
		{"DEF", false},
	}
	for _, tc := range tests {
		if got := IsBenchSlot(tc.pos); got != tc.want {
			t.Errorf("IsBenchSlot(%q): got %v", tc.pos, got)
		}
	}
}
