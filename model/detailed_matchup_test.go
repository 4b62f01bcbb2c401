package model

import "testing"

func line(name, slot string, points float64) *PlayerLine {
	return &PlayerLine{
		PlayerKey:        "nfl.p." + name,
		Name:             name,
		SelectedPosition: slot,
		Points:           points,
		IsStarter:        !IsBenchSlot(slot),
	}
}

func rosterOf(teamKey string, players ...*PlayerLine) *TeamRoster {
	return &TeamRoster{TeamKey: teamKey, TeamName: teamKey, Week: 3, Players: players}
}

func TestDetailedMatchupUnevenSlots(t *testing.T) {
	// Two RB starters against one: the second RB pairs with a null opponent.
	r1 := rosterOf("t.1",
		line("RB-A", "RB", 10),
		line("RB-B", "RB", 5),
	)
	r2 := rosterOf("t.2",
		line("RB-C", "RB", 8),
	)

	dm := NewDetailedMatchup(r1, r2)
	if len(dm.StarterMatchups) != 2 {
		t.Fatalf("starter matchups: got %d, want 2", len(dm.StarterMatchups))
	}

	first := dm.StarterMatchups[0]
	if first.Team1Player.Name != "RB-A" || first.Team2Player.Name != "RB-C" {
		t.Errorf("first pair: %+v", first)
	}
	if first.PointsDifference != 2 {
		t.Errorf("first diff: got %v", first.PointsDifference)
	}

	second := dm.StarterMatchups[1]
	if second.Team1Player.Name != "RB-B" || second.Team2Player != nil {
		t.Errorf("second pair should null-pad team2: %+v", second)
	}
	if second.PointsDifference != 5 {
		t.Errorf("second diff: got %v, want 5", second.PointsDifference)
	}
}

func TestDetailedMatchupSlotOrder(t *testing.T) {
	r1 := rosterOf("t.1",
		line("Kicker", "K", 7),
		line("Quarterback", "QB", 20),
		line("Mystery", "XX", 3),
		line("Flex", "W/R/T", 11),
	)
	r2 := rosterOf("t.2",
		line("Defense", "DEF", 6),
	)

	dm := NewDetailedMatchup(r1, r2)
	var slots []string
	for _, pm := range dm.StarterMatchups {
		slots = append(slots, pm.Slot)
	}

	want := []string{"QB", "W/R/T", "K", "DEF", "XX"}
	if len(slots) != len(want) {
		t.Fatalf("slots: got %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot order: got %v, want %v", slots, want)
		}
	}
}

func TestDetailedMatchupBenchPairing(t *testing.T) {
	r1 := rosterOf("t.1",
		line("B1-low", "BN", 2),
		line("B1-high", "BN", 12),
	)
	r2 := rosterOf("t.2",
		line("B2-only", "BN", 6),
	)

	dm := NewDetailedMatchup(r1, r2)
	if len(dm.BenchMatchups) != 2 {
		t.Fatalf("bench matchups: got %d", len(dm.BenchMatchups))
	}

	// Top scorers pair first regardless of roster order.
	top := dm.BenchMatchups[0]
	if top.Team1Player.Name != "B1-high" || top.Team2Player.Name != "B2-only" {
		t.Errorf("top bench pair: %+v", top)
	}
	rest := dm.BenchMatchups[1]
	if rest.Team1Player.Name != "B1-low" || rest.Team2Player != nil {
		t.Errorf("second bench pair: %+v", rest)
	}
}

func TestDetailedMatchupSummaryAndWinner(t *testing.T) {
	r1 := rosterOf("t.1",
		line("QB1", "QB", 20),
		line("RB1", "RB", 10),
		line("K1", "K", 5),
	)
	r2 := rosterOf("t.2",
		line("QB2", "QB", 15),
		line("RB2", "RB", 12),
		line("K2", "K", 5),
	)

	dm := NewDetailedMatchup(r1, r2)
	s := dm.Summary()
	if s.Team1Slots != 1 || s.Team2Slots != 1 || s.TieSlots != 1 {
		t.Errorf("summary: got %+v", s)
	}
	if got := dm.WinnerTeamKey(); got != "t.1" {
		t.Errorf("winner: got %q", got)
	}
	if got := dm.Margin(); got != 3 {
		t.Errorf("margin: got %v", got)
	}
}

func TestDetailedMatchupBothNullNever(t *testing.T) {
	dm := NewDetailedMatchup(rosterOf("t.1"), rosterOf("t.2"))
	if len(dm.StarterMatchups) != 0 || len(dm.BenchMatchups) != 0 {
		t.Errorf("empty rosters should pair nothing: %+v", dm)
	}
	if dm.WinnerTeamKey() != "" {
		t.Errorf("empty rosters tie")
	}
}
