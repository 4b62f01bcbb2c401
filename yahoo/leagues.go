package yahoo

import (
	"context"
	"fmt"
	"log"

	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/cd1zz/yahoo-ffb-api/wire"
)

// GetLeague fetches league metadata.
func (c *Client) GetLeague(ctx context.Context, leagueKey string) (*model.League, error) {
	fc, err := c.request(ctx, "/league/%s", leagueKey)
	if err != nil {
		return nil, err
	}
	league, err := leagueNode(fc)
	if err != nil {
		return nil, err
	}
	return model.LeagueFromAPI(league)
}

// GetLeagueSettings fetches roster and scoring configuration.
func (c *Client) GetLeagueSettings(ctx context.Context, leagueKey string) (*model.LeagueSettings, error) {
	fc, err := c.request(ctx, "/league/%s/settings", leagueKey)
	if err != nil {
		return nil, err
	}
	league, err := leagueNode(fc)
	if err != nil {
		return nil, err
	}
	settings := subResource(league, "settings")
	if settings == nil {
		return nil, wire.MalformedCtx("settings", leagueKey, "no settings element")
	}
	return model.LeagueSettingsFromAPI(settings, leagueKey)
}

// GetLeagueTeams fetches every team in the league. Teams that fail to parse
// are logged and skipped.
func (c *Client) GetLeagueTeams(ctx context.Context, leagueKey string) ([]*model.Team, error) {
	fc, err := c.request(ctx, "/league/%s/teams", leagueKey)
	if err != nil {
		return nil, err
	}
	league, err := leagueNode(fc)
	if err != nil {
		return nil, err
	}
	teamsNode := subResource(league, "teams")
	if teamsNode == nil {
		return nil, wire.MalformedCtx("teams", leagueKey, "no teams element")
	}

	var teams []*model.Team
	for _, entry := range wire.Items(teamsNode, "team") {
		t, err := model.TeamFromAPI(entry)
		if err != nil {
			log.Printf("skipping team in league %s: %v", leagueKey, err)
			continue
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// TeamNames maps team key to display name for the whole league. Used for
// draft pick enrichment.
func (c *Client) TeamNames(ctx context.Context, leagueKey string) (map[string]string, error) {
	teams, err := c.GetLeagueTeams(ctx, leagueKey)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.TeamKey] = t.Name
	}
	return names, nil
}

// GetScoreboard fetches one week's matchups. week 0 means the league's
// current week.
func (c *Client) GetScoreboard(ctx context.Context, leagueKey string, week int) (*model.WeeklyScoreboard, error) {
	var (
		fc  any
		err error
	)
	if week > 0 {
		fc, err = c.request(ctx, "/league/%s/scoreboard;week=%d", leagueKey, week)
	} else {
		fc, err = c.request(ctx, "/league/%s/scoreboard", leagueKey)
	}
	if err != nil {
		return nil, err
	}
	league, err := leagueNode(fc)
	if err != nil {
		return nil, err
	}
	sb := subResource(league, "scoreboard")
	if sb == nil {
		return nil, wire.MalformedCtx("scoreboard", fmt.Sprintf("%s week %d", leagueKey, week), "no scoreboard element")
	}
	return model.ScoreboardFromAPI(sb, leagueKey, week)
}

// GetSeasonResults assembles the season week by week from startWeek through
// endWeek. A week whose fetch or parse fails is logged and left out; the
// analytics tolerate the gap.
func (c *Client) GetSeasonResults(ctx context.Context, leagueKey string, startWeek, endWeek, season int) (*model.SeasonResults, error) {
	if startWeek < 1 {
		startWeek = 1
	}
	if endWeek < startWeek {
		return nil, fmt.Errorf("invalid week range %d..%d", startWeek, endWeek)
	}

	sr := model.NewSeasonResults(leagueKey, season)
	for week := startWeek; week <= endWeek; week++ {
		sb, err := c.GetScoreboard(ctx, leagueKey, week)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("skipping week %d for league %s: %v", week, leagueKey, err)
			continue
		}
		sr.AddWeek(sb)
	}
	return sr, nil
}
