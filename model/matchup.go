package model

import (
	"log"
	"math"

	"github.com/cd1zz/yahoo-ffb-api/wire"
)

// Matchup status values as reported by the API.
const (
	StatusPregame   = "pregame"
	StatusMidevent  = "midevent"
	StatusPostevent = "postevent"
)

// TeamScore is one team's point total for exactly one week, always paired
// inside a Matchup.
type TeamScore struct {
	TeamKey         string  `json:"team_key"`
	TeamID          string  `json:"team_id"`
	Name            string  `json:"name"`
	Week            int     `json:"week"`
	Points          float64 `json:"points"`
	ProjectedPoints float64 `json:"projected_points"`
}

// TeamScoreFromAPI builds a TeamScore from a scoreboard team node, which is
// an array of a property list followed by a points object.
func TeamScoreFromAPI(data any, week int) (*TeamScore, error) {
	arr, ok := data.([]any)
	if !ok || len(arr) == 0 {
		return nil, wire.Malformed("team_score", "team node is not a non-empty array")
	}

	props := wire.Flatten(arr[0])
	key := wire.Str(props["team_key"], "")
	if key == "" {
		return nil, wire.Malformed("team_score", "missing team_key")
	}

	ts := &TeamScore{
		TeamKey: key,
		TeamID:  wire.Str(props["team_id"], ""),
		Name:    wire.Str(props["name"], ""),
		Week:    week,
	}

	// Points live in a sibling element, position varies.
	for _, el := range arr[1:] {
		if v := wire.Get(el, "team_points", "total"); v != nil {
			ts.Points = wire.Float(v, 0)
		}
		if v := wire.Get(el, "team_projected_points", "total"); v != nil {
			ts.ProjectedPoints = wire.Float(v, 0)
		}
	}

	return ts, nil
}

// Matchup is one week's head-to-head pairing of two teams.
type Matchup struct {
	Week          int        `json:"week"`
	Team1         *TeamScore `json:"team1"`
	Team2         *TeamScore `json:"team2"`
	Status        string     `json:"status"`
	IsPlayoffs    bool       `json:"is_playoffs"`
	IsConsolation bool       `json:"is_consolation"`
	IsTied        bool       `json:"is_tied"`
	WinnerTeamKey string     `json:"winner_team_key,omitempty"`
}

// MatchupFromAPI builds a Matchup from one matchups entry. The entry may or
// may not still carry the "matchup" wrapper.
func MatchupFromAPI(data any, week int) (*Matchup, error) {
	info, ok := data.(map[string]any)
	if !ok {
		return nil, wire.Malformed("matchup", "matchup node is not an object")
	}
	if inner, ok := info["matchup"].(map[string]any); ok {
		info = inner
	}

	teams := wire.Items(wire.Get(info, "0", "teams"), "team")
	if len(teams) < 2 {
		return nil, wire.Malformed("matchup", "fewer than two teams in matchup")
	}

	t1, err := TeamScoreFromAPI(teams[0], week)
	if err != nil {
		return nil, err
	}
	t2, err := TeamScoreFromAPI(teams[1], week)
	if err != nil {
		return nil, err
	}

	m := &Matchup{
		Week:          wire.Int(info["week"], week),
		Team1:         t1,
		Team2:         t2,
		Status:        wire.Str(info["status"], ""),
		IsPlayoffs:    wire.Bool(info["is_playoffs"]),
		IsConsolation: wire.Bool(info["is_consolation"]),
		WinnerTeamKey: wire.Str(info["winner_team_key"], ""),
	}
	tiedFlag := wire.Bool(info["is_tied"])
	m.IsTied = tiedFlag || t1.Points == t2.Points
	if tiedFlag && t1.Points != t2.Points {
		log.Printf("matchup week %d: is_tied flag set but points differ (%s %.2f vs %s %.2f)",
			m.Week, t1.TeamKey, t1.Points, t2.TeamKey, t2.Points)
	}

	// The API winner flag is authoritative for records, but flag it when it
	// contradicts the raw points.
	if m.Status == StatusPostevent && m.WinnerTeamKey != "" && !m.IsTied {
		byPoints := t1.TeamKey
		if t2.Points > t1.Points {
			byPoints = t2.TeamKey
		}
		if byPoints != m.WinnerTeamKey {
			log.Printf("matchup week %d: winner_team_key %s disagrees with points (%s %.2f vs %s %.2f)",
				m.Week, m.WinnerTeamKey, t1.TeamKey, t1.Points, t2.TeamKey, t2.Points)
		}
	}

	return m, nil
}

// Margin is the absolute point difference, 0 exactly when tied.
func (m *Matchup) Margin() float64 {
	return math.Abs(m.Team1.Points - m.Team2.Points)
}

// IsCompleted reports whether the matchup has finished.
func (m *Matchup) IsCompleted() bool {
	return m.Status == StatusPostevent
}

// Winner returns the winning team's score, nil when tied or undecided. The
// API's winner_team_key takes precedence over the point comparison.
func (m *Matchup) Winner() *TeamScore {
	if m.IsTied {
		return nil
	}
	switch m.WinnerTeamKey {
	case m.Team1.TeamKey:
		return m.Team1
	case m.Team2.TeamKey:
		return m.Team2
	}
	if m.WinnerTeamKey != "" {
		return nil
	}
	if m.Team1.Points > m.Team2.Points {
		return m.Team1
	}
	return m.Team2
}

// Loser returns the losing team's score, nil when tied or undecided.
func (m *Matchup) Loser() *TeamScore {
	w := m.Winner()
	if w == nil {
		return nil
	}
	if w == m.Team1 {
		return m.Team2
	}
	return m.Team1
}

// HasTeam reports whether teamKey plays in this matchup.
func (m *Matchup) HasTeam(teamKey string) bool {
	return m.Team1.TeamKey == teamKey || m.Team2.TeamKey == teamKey
}

// ScoreFor returns teamKey's score in this matchup, nil if it is not playing.
func (m *Matchup) ScoreFor(teamKey string) *TeamScore {
	switch teamKey {
	case m.Team1.TeamKey:
		return m.Team1
	case m.Team2.TeamKey:
		return m.Team2
	}
	return nil
}

// OpponentOf returns the score of teamKey's opponent, nil if teamKey is not
// playing.
func (m *Matchup) OpponentOf(teamKey string) *TeamScore {
	switch teamKey {
	case m.Team1.TeamKey:
		return m.Team2
	case m.Team2.TeamKey:
		return m.Team1
	}
	return nil
}

// WeeklyScoreboard is one week's full set of matchups for a league.
type WeeklyScoreboard struct {
	LeagueKey string     `json:"league_key"`
	Week      int        `json:"week"`
	WeekStart string     `json:"week_start,omitempty"`
	WeekEnd   string     `json:"week_end,omitempty"`
	Matchups  []*Matchup `json:"matchups"`
}

// ScoreboardFromAPI builds a WeeklyScoreboard from the scoreboard node found
// under the league response. Individual matchups that fail to parse are
// logged and skipped; the scoreboard itself only fails when the matchups
// container cannot be located at all.
func ScoreboardFromAPI(data any, leagueKey string, week int) (*WeeklyScoreboard, error) {
	matchupsNode := wire.Get(data, "0", "matchups")
	if matchupsNode == nil {
		matchupsNode = wire.Get(data, "matchups")
	}
	if matchupsNode == nil {
		return nil, wire.MalformedCtx("scoreboard", leagueKey, "no matchups container")
	}

	sb := &WeeklyScoreboard{
		LeagueKey: leagueKey,
		Week:      wire.Int(wire.Get(data, "week"), week),
	}

	seen := map[string]bool{}
	for _, entry := range wire.Items(matchupsNode, "matchup") {
		m, err := MatchupFromAPI(entry, sb.Week)
		if err != nil {
			log.Printf("skipping matchup in league %s week %d: %v", leagueKey, sb.Week, err)
			continue
		}
		for _, key := range []string{m.Team1.TeamKey, m.Team2.TeamKey} {
			if seen[key] {
				log.Printf("league %s week %d: team %s appears in more than one matchup", leagueKey, sb.Week, key)
			}
			seen[key] = true
		}
		if sb.WeekStart == "" {
			sb.WeekStart = wire.Str(mapGet(entry, "week_start"), "")
			sb.WeekEnd = wire.Str(mapGet(entry, "week_end"), "")
		}
		sb.Matchups = append(sb.Matchups, m)
	}

	return sb, nil
}

func mapGet(data any, key string) any {
	if m, ok := data.(map[string]any); ok {
		if inner, ok := m["matchup"].(map[string]any); ok {
			return inner[key]
		}
		return m[key]
	}
	return nil
}

// MatchupFor returns the matchup teamKey plays in this week, nil if absent.
func (sb *WeeklyScoreboard) MatchupFor(teamKey string) *Matchup {
	for _, m := range sb.Matchups {
		if m.HasTeam(teamKey) {
			return m
		}
	}
	return nil
}

// Scores flattens all team scores for the week, matchup order preserved.
func (sb *WeeklyScoreboard) Scores() []*TeamScore {
	out := make([]*TeamScore, 0, len(sb.Matchups)*2)
	for _, m := range sb.Matchups {
		out = append(out, m.Team1, m.Team2)
	}
	return out
}

// HighestScore returns the top score of the week, nil for an empty board.
func (sb *WeeklyScoreboard) HighestScore() *TeamScore {
	var best *TeamScore
	for _, ts := range sb.Scores() {
		if best == nil || ts.Points > best.Points {
			best = ts
		}
	}
	return best
}
