package analysis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cd1zz/yahoo-ffb-api/model"
)

// TeamSeasonLine is one team's row in the season summary.
type TeamSeasonLine struct {
	TeamName    string  `json:"team_name"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Ties        int     `json:"ties"`
	TotalPoints float64 `json:"total_points"`
}

// SeasonSummary bundles every analytics output for one league season. The
// JSON field names are a stable export contract.
type SeasonSummary struct {
	LeagueKey        string                    `json:"league_key"`
	Season           int                       `json:"season"`
	TotalWeeks       int                       `json:"total_weeks"`
	TeamsCount       int                       `json:"teams_count"`
	TotalGames       int                       `json:"total_games"`
	AverageGameScore float64                   `json:"average_game_score"`
	SkinsResults     map[string][]SkinWin      `json:"skins_results"`
	SurvivorResults  *SurvivorResult           `json:"survivor_results"`
	PowerRankings    []PowerRanking            `json:"power_rankings"`
	TeamRecords      map[string]TeamSeasonLine `json:"team_records"`
}

// Summarize computes the full season summary. weeklyPot feeds the skins
// game; the power ranking window covers the whole season rather than the
// trailing default.
func (a *Analyzer) Summarize(sr *model.SeasonResults, weeklyPot float64) *SeasonSummary {
	s := &SeasonSummary{
		LeagueKey:       sr.LeagueKey,
		Season:          sr.Season,
		TotalWeeks:      len(sr.Weeks()),
		SkinsResults:    a.SkinsWinners(sr, weeklyPot),
		SurvivorResults: a.SurvivorResults(sr, nil),
		PowerRankings:   a.PowerRankings(sr, len(sr.Weeks())),
		TeamRecords:     map[string]TeamSeasonLine{},
	}

	games := 0
	totalPoints := 0.0
	for _, w := range sr.Weeks() {
		for _, m := range sr.Week(w).Matchups {
			if !m.IsCompleted() {
				continue
			}
			games++
			totalPoints += m.Team1.Points + m.Team2.Points
		}
	}
	s.TotalGames = games
	if games > 0 {
		s.AverageGameScore = round2(totalPoints / float64(games*2))
	}

	for _, key := range sr.TeamKeys() {
		r := sr.TeamRecord(key)
		s.TeamRecords[key] = TeamSeasonLine{
			TeamName:    sr.TeamName(key),
			Wins:        r.Wins,
			Losses:      r.Losses,
			Ties:        r.Ties,
			TotalPoints: round2(sr.TeamTotalPoints(key)),
		}
	}
	s.TeamsCount = len(s.TeamRecords)

	return s
}

// WriteFile exports the summary as indented JSON.
func (s *SeasonSummary) WriteFile(path string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding season summary: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing season summary: %w", err)
	}
	return nil
}
