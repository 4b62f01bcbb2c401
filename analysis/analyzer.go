// Package analysis computes league analytics over assembled season results:
// skins game payouts, survivor pool eliminations, power rankings, scoring
// trends, and the season summary export. Everything here is pure computation
// over *model.SeasonResults; no I/O except the optional summary file write.
package analysis

import (
	"math"
	"sort"

	"github.com/cd1zz/yahoo-ffb-api/model"
)

// DefaultPowerRankingWindow is the trailing number of weeks with data that
// feed the power rating.
const DefaultPowerRankingWindow = 4

// Analyzer holds the league-specific analytics knobs.
type Analyzer struct {
	// MinSkinsMargin is the minimum margin of victory that qualifies a win
	// for the weekly skins pot.
	MinSkinsMargin float64
}

func NewAnalyzer(minSkinsMargin float64) *Analyzer {
	return &Analyzer{MinSkinsMargin: minSkinsMargin}
}

// PowerRanking is one team's entry in the power ranking table. Scores and
// margins are rounded to 2 decimals, win percentage to 3; the export
// contract depends on that rounding.
type PowerRanking struct {
	Rank             int     `json:"rank"`
	TeamKey          string  `json:"team_key"`
	TeamName         string  `json:"team_name"`
	Rating           float64 `json:"rating"`
	AvgScore         float64 `json:"avg_score"`
	AvgOpponentScore float64 `json:"avg_opponent_score"`
	WinPercentage    float64 `json:"win_percentage"`
	AvgMargin        float64 `json:"avg_margin"`
	Games            int     `json:"games"`
}

// PowerRankings rates every team over the trailing window. window is the
// number of most recent weeks with data to consider; 0 means the default.
// Rating = 0.4*avg + 0.3*(avg-oppAvg) + 0.2*(winPct*100) + 0.1*avgMargin,
// sorted descending, team name breaking rating ties.
func (a *Analyzer) PowerRankings(sr *model.SeasonResults, window int) []PowerRanking {
	if window <= 0 {
		window = DefaultPowerRankingWindow
	}
	weeks := sr.Weeks()
	if len(weeks) > window {
		weeks = weeks[len(weeks)-window:]
	}

	type tally struct {
		name        string
		scores      []float64
		oppScores   []float64
		wins        int
		totalMargin float64
	}
	tallies := map[string]*tally{}

	for _, w := range weeks {
		for _, m := range sr.Week(w).Matchups {
			if !m.IsCompleted() {
				continue
			}
			for _, side := range []*model.TeamScore{m.Team1, m.Team2} {
				tl := tallies[side.TeamKey]
				if tl == nil {
					tl = &tally{name: side.Name}
					tallies[side.TeamKey] = tl
				}
				opp := m.OpponentOf(side.TeamKey)
				tl.scores = append(tl.scores, side.Points)
				tl.oppScores = append(tl.oppScores, opp.Points)
				tl.totalMargin += side.Points - opp.Points
				if win := m.Winner(); win != nil && win.TeamKey == side.TeamKey {
					tl.wins++
				}
			}
		}
	}

	rankings := make([]PowerRanking, 0, len(tallies))
	for key, tl := range tallies {
		games := len(tl.scores)
		if games == 0 {
			continue
		}
		avg := mean(tl.scores)
		oppAvg := mean(tl.oppScores)
		winPct := float64(tl.wins) / float64(games)
		avgMargin := tl.totalMargin / float64(games)
		rating := 0.4*avg + 0.3*(avg-oppAvg) + 0.2*(winPct*100) + 0.1*avgMargin

		rankings = append(rankings, PowerRanking{
			TeamKey:          key,
			TeamName:         tl.name,
			Rating:           round2(rating),
			AvgScore:         round2(avg),
			AvgOpponentScore: round2(oppAvg),
			WinPercentage:    round3(winPct),
			AvgMargin:        round2(avgMargin),
			Games:            games,
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Rating != rankings[j].Rating {
			return rankings[i].Rating > rankings[j].Rating
		}
		return rankings[i].TeamName < rankings[j].TeamName
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
