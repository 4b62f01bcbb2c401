package yahoo

import (
	"context"
	"fmt"

	"github.com/cd1zz/yahoo-ffb-api/model"
)

// GetTeam fetches one team's metadata.
func (c *Client) GetTeam(ctx context.Context, teamKey string) (*model.Team, error) {
	fc, err := c.request(ctx, "/team/%s", teamKey)
	if err != nil {
		return nil, err
	}
	team, err := teamNode(fc)
	if err != nil {
		return nil, err
	}
	return model.TeamFromAPI(team)
}

// GetTeamRoster fetches a team's roster with weekly player points.
func (c *Client) GetTeamRoster(ctx context.Context, teamKey string, week int) (*model.TeamRoster, error) {
	fc, err := c.request(ctx, "/team/%s/roster;week=%d/players/stats;type=week;week=%d", teamKey, week, week)
	if err != nil {
		return nil, err
	}
	team, err := teamNode(fc)
	if err != nil {
		return nil, err
	}
	return model.TeamRosterFromAPI(team, week)
}

// GetDetailedMatchup fetches both rosters and pairs them slot by slot.
func (c *Client) GetDetailedMatchup(ctx context.Context, teamKey1, teamKey2 string, week int) (*model.DetailedMatchup, error) {
	r1, err := c.GetTeamRoster(ctx, teamKey1, week)
	if err != nil {
		return nil, fmt.Errorf("fetching roster for %s: %w", teamKey1, err)
	}
	r2, err := c.GetTeamRoster(ctx, teamKey2, week)
	if err != nil {
		return nil, fmt.Errorf("fetching roster for %s: %w", teamKey2, err)
	}
	return model.NewDetailedMatchup(r1, r2), nil
}
