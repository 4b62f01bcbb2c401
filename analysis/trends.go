package analysis

import "github.com/cd1zz/yahoo-ffb-api/model"

// WeeklyTrend is one week's league-wide scoring line.
type WeeklyTrend struct {
	Week          int     `json:"week"`
	AverageScore  float64 `json:"average_score"`
	AverageMargin float64 `json:"average_margin"`
	HighScore     float64 `json:"high_score"`
	HighTeam      string  `json:"high_team"`
}

// MatchupTrends summarizes league scoring across the season.
type MatchupTrends struct {
	Weekly        []WeeklyTrend `json:"weekly"`
	AverageScore  float64       `json:"average_score"`
	AverageMargin float64       `json:"average_margin"`
	HighestWeek   int           `json:"highest_week"`
	// Trend compares the back half of the season to the front half:
	// "improving", "declining", or "stable" within a one point band.
	Trend string `json:"trend"`
}

// Trends computes week-by-week scoring averages and the season direction
// over completed matchups.
func (a *Analyzer) Trends(sr *model.SeasonResults) *MatchupTrends {
	out := &MatchupTrends{Weekly: []WeeklyTrend{}}

	var allScores, allMargins, weekAvgs []float64
	bestWeekAvg := 0.0

	for _, w := range sr.Weeks() {
		var scores, margins []float64
		high := 0.0
		highTeam := ""
		for _, m := range sr.Week(w).Matchups {
			if !m.IsCompleted() {
				continue
			}
			for _, ts := range []*model.TeamScore{m.Team1, m.Team2} {
				scores = append(scores, ts.Points)
				if ts.Points > high {
					high = ts.Points
					highTeam = ts.Name
				}
			}
			margins = append(margins, m.Margin())
		}
		if len(scores) == 0 {
			continue
		}

		avg := mean(scores)
		out.Weekly = append(out.Weekly, WeeklyTrend{
			Week:          w,
			AverageScore:  round2(avg),
			AverageMargin: round2(mean(margins)),
			HighScore:     round2(high),
			HighTeam:      highTeam,
		})
		allScores = append(allScores, scores...)
		allMargins = append(allMargins, margins...)
		weekAvgs = append(weekAvgs, avg)
		if avg > bestWeekAvg {
			bestWeekAvg = avg
			out.HighestWeek = w
		}
	}

	out.AverageScore = round2(mean(allScores))
	out.AverageMargin = round2(mean(allMargins))
	out.Trend = trendDirection(weekAvgs)
	return out
}

func trendDirection(weekAvgs []float64) string {
	if len(weekAvgs) < 2 {
		return "stable"
	}
	half := len(weekAvgs) / 2
	front := mean(weekAvgs[:half])
	back := mean(weekAvgs[len(weekAvgs)-half:])
	switch {
	case back-front > 1:
		return "improving"
	case front-back > 1:
		return "declining"
	}
	return "stable"
}

// HeadToHeadGame is one meeting between the two teams.
type HeadToHeadGame struct {
	Week        int     `json:"week"`
	Team1Points float64 `json:"team1_points"`
	Team2Points float64 `json:"team2_points"`
	Winner      string  `json:"winner,omitempty"`
}

// HeadToHead summarizes the season series between two teams.
type HeadToHead struct {
	Team1Key    string           `json:"team1_key"`
	Team2Key    string           `json:"team2_key"`
	Team1Name   string           `json:"team1_name"`
	Team2Name   string           `json:"team2_name"`
	Team1Wins   int              `json:"team1_wins"`
	Team2Wins   int              `json:"team2_wins"`
	Ties        int              `json:"ties"`
	Team1Points float64          `json:"team1_points"`
	Team2Points float64          `json:"team2_points"`
	Games       []HeadToHeadGame `json:"games"`
}

// HeadToHead collects every completed meeting between the two teams across
// the stored weeks.
func (a *Analyzer) HeadToHead(sr *model.SeasonResults, team1Key, team2Key string) *HeadToHead {
	h := &HeadToHead{
		Team1Key:  team1Key,
		Team2Key:  team2Key,
		Team1Name: sr.TeamName(team1Key),
		Team2Name: sr.TeamName(team2Key),
		Games:     []HeadToHeadGame{},
	}

	for _, w := range sr.Weeks() {
		m := sr.Week(w).MatchupFor(team1Key)
		if m == nil || !m.HasTeam(team2Key) || !m.IsCompleted() {
			continue
		}

		s1 := m.ScoreFor(team1Key)
		s2 := m.ScoreFor(team2Key)
		game := HeadToHeadGame{Week: w, Team1Points: s1.Points, Team2Points: s2.Points}
		switch {
		case m.IsTied:
			h.Ties++
		case m.Winner() != nil && m.Winner().TeamKey == team1Key:
			h.Team1Wins++
			game.Winner = h.Team1Name
		default:
			h.Team2Wins++
			game.Winner = h.Team2Name
		}
		h.Team1Points += s1.Points
		h.Team2Points += s2.Points
		h.Games = append(h.Games, game)
	}

	h.Team1Points = round2(h.Team1Points)
	h.Team2Points = round2(h.Team2Points)
	return h
}
