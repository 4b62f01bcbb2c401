package model

import "testing"

func TestDraftPickFromAPI(t *testing.T) {
	fixture := `{"pick": 13, "round": 2, "team_key": "nfl.l.431.t.3", "player_key": "nfl.p.100", "cost": "42"}`

	p, err := DraftPickFromAPI(decode(t, fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Pick != 13 || p.Round != 2 || p.TeamKey != "nfl.l.431.t.3" || p.Cost != 42 {
		t.Errorf("got %+v", p)
	}
}

func TestDraftPickFromAPIMalformed(t *testing.T) {
	if _, err := DraftPickFromAPI(decode(t, `{"round": 1}`)); err == nil {
		t.Error("expected error for missing pick number")
	}
	if _, err := DraftPickFromAPI("garbage"); err == nil {
		t.Error("expected error for non-object node")
	}
}

func TestDraftResultOrdering(t *testing.T) {
	d := NewDraftResult("nfl.l.431")
	for _, pick := range []int{3, 1, 2} {
		d.AddPick(&DraftPick{Pick: pick, Round: 1, TeamKey: "t.1"})
	}

	for i, want := range []int{1, 2, 3} {
		if d.Picks[i].Pick != want {
			t.Fatalf("pick order: got %v", d.Picks)
		}
	}
}

func TestDraftResultQueries(t *testing.T) {
	d := NewDraftResult("nfl.l.431")
	d.AddPick(&DraftPick{Pick: 1, Round: 1, TeamKey: "t.1", PlayerKey: "p.1"})
	d.AddPick(&DraftPick{Pick: 2, Round: 1, TeamKey: "t.2", PlayerKey: "p.2"})
	d.AddPick(&DraftPick{Pick: 3, Round: 2, TeamKey: "t.2", PlayerKey: "p.3"})

	if got := d.PicksByTeam("t.2"); len(got) != 2 || got[0].Pick != 2 {
		t.Errorf("PicksByTeam: got %+v", got)
	}
	if got := d.PicksByRound(2); len(got) != 1 || got[0].PlayerKey != "p.3" {
		t.Errorf("PicksByRound: got %+v", got)
	}
	if got := d.Rounds(); got != 2 {
		t.Errorf("Rounds: got %d", got)
	}
}

func TestDraftResultSetDone(t *testing.T) {
	d := NewDraftResult("nfl.l.431")
	d.AddPick(&DraftPick{Pick: 1})

	// A known expected count beats the non-empty heuristic.
	d.SetDone(4)
	if d.Done {
		t.Error("1 of 4 picks should not be done")
	}

	d.AddPick(&DraftPick{Pick: 2})
	d.AddPick(&DraftPick{Pick: 3})
	d.AddPick(&DraftPick{Pick: 4})
	d.SetDone(4)
	if !d.Done {
		t.Error("4 of 4 picks should be done")
	}

	// Without an expected count any picks at all count as done.
	e := NewDraftResult("nfl.l.431")
	e.SetDone(0)
	if e.Done {
		t.Error("empty draft is not done")
	}
	e.AddPick(&DraftPick{Pick: 1})
	e.SetDone(0)
	if !e.Done {
		t.Error("heuristic should mark non-empty draft done")
	}
}
