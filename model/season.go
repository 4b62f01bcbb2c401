package model

import "sort"

// Record is a team's win/loss/tie tally over completed matchups.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Games is the number of completed games in the record.
func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPct is wins over games, ties counting half. Zero games yields 0.
func (r Record) WinPct() float64 {
	g := r.Games()
	if g == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(g)
}

// SeasonResults accumulates a league's weekly scoreboards. Weeks may be
// missing when a fetch failed; every aggregate scans whatever weeks are
// present and tolerates the gaps.
type SeasonResults struct {
	LeagueKey string
	Season    int

	boards map[int]*WeeklyScoreboard
}

func NewSeasonResults(leagueKey string, season int) *SeasonResults {
	return &SeasonResults{
		LeagueKey: leagueKey,
		Season:    season,
		boards:    map[int]*WeeklyScoreboard{},
	}
}

// AddWeek stores one weekly scoreboard, replacing any earlier board for the
// same week.
func (sr *SeasonResults) AddWeek(sb *WeeklyScoreboard) {
	sr.boards[sb.Week] = sb
}

// Weeks lists the weeks with data, ascending.
func (sr *SeasonResults) Weeks() []int {
	weeks := make([]int, 0, len(sr.boards))
	for w := range sr.boards {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks
}

// Week returns the scoreboard for one week, nil when absent.
func (sr *SeasonResults) Week(week int) *WeeklyScoreboard {
	return sr.boards[week]
}

// TeamKeys lists every team key seen in any matchup, sorted.
func (sr *SeasonResults) TeamKeys() []string {
	seen := map[string]bool{}
	for _, sb := range sr.boards {
		for _, ts := range sb.Scores() {
			seen[ts.TeamKey] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TeamName returns the display name last seen for a team key, falling back
// to the key itself when the team never appears.
func (sr *SeasonResults) TeamName(teamKey string) string {
	name := teamKey
	for _, w := range sr.Weeks() {
		if ts := scoreIn(sr.boards[w], teamKey); ts != nil && ts.Name != "" {
			name = ts.Name
		}
	}
	return name
}

func scoreIn(sb *WeeklyScoreboard, teamKey string) *TeamScore {
	m := sb.MatchupFor(teamKey)
	if m == nil {
		return nil
	}
	return m.ScoreFor(teamKey)
}

// TeamRecord tallies completed matchups for one team. The API's
// winner_team_key decides wins and losses.
func (sr *SeasonResults) TeamRecord(teamKey string) Record {
	var r Record
	for _, w := range sr.Weeks() {
		m := sr.boards[w].MatchupFor(teamKey)
		if m == nil || !m.IsCompleted() {
			continue
		}
		switch {
		case m.IsTied:
			r.Ties++
		case m.Winner() != nil && m.Winner().TeamKey == teamKey:
			r.Wins++
		default:
			r.Losses++
		}
	}
	return r
}

// TeamWeeklyScores returns week number to points for one team, weeks with
// data only.
func (sr *SeasonResults) TeamWeeklyScores(teamKey string) map[int]float64 {
	out := map[int]float64{}
	for _, w := range sr.Weeks() {
		if ts := scoreIn(sr.boards[w], teamKey); ts != nil {
			out[w] = ts.Points
		}
	}
	return out
}

// TeamTotalPoints sums a team's points across every week with data.
func (sr *SeasonResults) TeamTotalPoints(teamKey string) float64 {
	total := 0.0
	for _, pts := range sr.TeamWeeklyScores(teamKey) {
		total += pts
	}
	return total
}

// WeeklyHighScore is one entry in the season's high-score list.
type WeeklyHighScore struct {
	Week     int     `json:"week"`
	TeamKey  string  `json:"team_key"`
	TeamName string  `json:"team_name"`
	Points   float64 `json:"points"`
}

// HighestWeeklyScores returns the top n single-week scores of the season,
// descending, week then team key breaking point ties.
func (sr *SeasonResults) HighestWeeklyScores(n int) []WeeklyHighScore {
	var all []WeeklyHighScore
	for _, w := range sr.Weeks() {
		for _, ts := range sr.boards[w].Scores() {
			all = append(all, WeeklyHighScore{Week: w, TeamKey: ts.TeamKey, TeamName: ts.Name, Points: ts.Points})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Points != all[j].Points {
			return all[i].Points > all[j].Points
		}
		if all[i].Week != all[j].Week {
			return all[i].Week < all[j].Week
		}
		return all[i].TeamKey < all[j].TeamKey
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
