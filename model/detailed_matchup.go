package model

import (
	"math"
	"sort"
)

// PositionMatchup pairs one lineup slot occupant from each team. Either
// player may be nil when the sides fill a slot unevenly; the missing side
// contributes 0 points.
type PositionMatchup struct {
	Slot             string      `json:"slot"`
	Team1Player      *PlayerLine `json:"team1_player,omitempty"`
	Team2Player      *PlayerLine `json:"team2_player,omitempty"`
	Team1Points      float64     `json:"team1_points"`
	Team2Points      float64     `json:"team2_points"`
	PointsDifference float64     `json:"points_difference"`
}

// Tie reports exact point equality, both-null pairs included.
func (pm *PositionMatchup) Tie() bool {
	return pm.Team1Points == pm.Team2Points
}

// PositionSummary tallies which side won more lineup slots.
type PositionSummary struct {
	Team1Slots int `json:"team1_slots"`
	Team2Slots int `json:"team2_slots"`
	TieSlots   int `json:"tie_slots"`
}

// DetailedMatchup is a slot-by-slot comparison of two rosters for the same
// week. Starter pairing follows the canonical slot order and pairs the i-th
// occupant of a slot on one side with the i-th on the other; bench pairing
// ranks each bench by descending points and pairs by rank.
type DetailedMatchup struct {
	Week            int               `json:"week"`
	Team1           *TeamRoster       `json:"team1"`
	Team2           *TeamRoster       `json:"team2"`
	StarterMatchups []PositionMatchup `json:"starter_matchups"`
	BenchMatchups   []PositionMatchup `json:"bench_matchups"`
}

// NewDetailedMatchup pairs the two rosters. Both rosters must be for the
// same week; the comparison takes the week from r1.
func NewDetailedMatchup(r1, r2 *TeamRoster) *DetailedMatchup {
	dm := &DetailedMatchup{
		Week:  r1.Week,
		Team1: r1,
		Team2: r2,
	}

	for _, slot := range starterSlots(r1, r2) {
		side1 := r1.startersAt(slot)
		side2 := r2.startersAt(slot)
		for i := 0; i < len(side1) || i < len(side2); i++ {
			var p1, p2 *PlayerLine
			if i < len(side1) {
				p1 = side1[i]
			}
			if i < len(side2) {
				p2 = side2[i]
			}
			dm.StarterMatchups = append(dm.StarterMatchups, pairUp(slot, p1, p2))
		}
	}

	bench1 := benchByPoints(r1)
	bench2 := benchByPoints(r2)
	for i := 0; i < len(bench1) || i < len(bench2); i++ {
		var p1, p2 *PlayerLine
		if i < len(bench1) {
			p1 = bench1[i]
		}
		if i < len(bench2) {
			p2 = bench2[i]
		}
		dm.BenchMatchups = append(dm.BenchMatchups, pairUp("BN", p1, p2))
	}

	return dm
}

func pairUp(slot string, p1, p2 *PlayerLine) PositionMatchup {
	pm := PositionMatchup{Slot: slot, Team1Player: p1, Team2Player: p2}
	if p1 != nil {
		pm.Team1Points = p1.Points
	}
	if p2 != nil {
		pm.Team2Points = p2.Points
	}
	pm.PointsDifference = pm.Team1Points - pm.Team2Points
	return pm
}

// starterSlots merges the occupied slots of both lineups: canonical slots in
// priority order, then unrecognized codes in first-seen order.
func starterSlots(r1, r2 *TeamRoster) []string {
	seen := map[string]bool{}
	var ordered []string
	for _, r := range []*TeamRoster{r1, r2} {
		for _, p := range r.Starters() {
			if !seen[p.SelectedPosition] {
				seen[p.SelectedPosition] = true
				ordered = append(ordered, p.SelectedPosition)
			}
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return slotRank(ordered[i]) < slotRank(ordered[j])
	})
	return ordered
}

func (tr *TeamRoster) startersAt(slot string) []*PlayerLine {
	var out []*PlayerLine
	for _, p := range tr.Starters() {
		if p.SelectedPosition == slot {
			out = append(out, p)
		}
	}
	return out
}

func benchByPoints(tr *TeamRoster) []*PlayerLine {
	bench := tr.Bench()
	sorted := make([]*PlayerLine, len(bench))
	copy(sorted, bench)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Points > sorted[j].Points })
	return sorted
}

// StarterPointsDifference is team1's starter total minus team2's.
func (dm *DetailedMatchup) StarterPointsDifference() float64 {
	return dm.Team1.StarterPoints() - dm.Team2.StarterPoints()
}

// WinnerTeamKey is the team whose starters outscored the other's, empty on
// an exact tie.
func (dm *DetailedMatchup) WinnerTeamKey() string {
	diff := dm.StarterPointsDifference()
	switch {
	case diff > 0:
		return dm.Team1.TeamKey
	case diff < 0:
		return dm.Team2.TeamKey
	}
	return ""
}

// Margin is the absolute starter point difference.
func (dm *DetailedMatchup) Margin() float64 {
	return math.Abs(dm.StarterPointsDifference())
}

// Summary tallies starter slots won per side, ties included.
func (dm *DetailedMatchup) Summary() PositionSummary {
	var s PositionSummary
	for _, pm := range dm.StarterMatchups {
		switch {
		case pm.Tie():
			s.TieSlots++
		case pm.PointsDifference > 0:
			s.Team1Slots++
		default:
			s.Team2Slots++
		}
	}
	return s
}
