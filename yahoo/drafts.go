package yahoo

import (
	"context"
	"log"

	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/cd1zz/yahoo-ffb-api/wire"
)

// GetDraftResults fetches the raw draft picks for a league. Individual picks
// that fail to parse are logged and skipped. Completion is derived from the
// expected pick count when league settings are reachable, otherwise from the
// non-empty heuristic.
func (c *Client) GetDraftResults(ctx context.Context, leagueKey string) (*model.DraftResult, error) {
	draft, err := c.fetchDraftResults(ctx, leagueKey)
	if err != nil {
		return nil, err
	}
	draft.SetDone(c.expectedPickCount(ctx, leagueKey))
	return draft, nil
}

// fetchDraftResults parses the picks without deriving completion. The draft
// watcher polls through this to avoid the settings lookups on every tick.
func (c *Client) fetchDraftResults(ctx context.Context, leagueKey string) (*model.DraftResult, error) {
	fc, err := c.request(ctx, "/league/%s/draftresults", leagueKey)
	if err != nil {
		return nil, err
	}
	league, err := leagueNode(fc)
	if err != nil {
		return nil, err
	}
	resultsNode := subResource(league, "draft_results")
	if resultsNode == nil {
		return nil, wire.MalformedCtx("draft_results", leagueKey, "no draft_results element")
	}

	draft := model.NewDraftResult(leagueKey)
	for _, entry := range wire.Items(resultsNode, "draft_result") {
		pick, err := model.DraftPickFromAPI(entry)
		if err != nil {
			log.Printf("skipping draft pick in league %s: %v", leagueKey, err)
			continue
		}
		draft.AddPick(pick)
	}
	return draft, nil
}

// expectedPickCount derives roster size times team count from settings and
// metadata; 0 when either lookup fails, which drops completion back to the
// heuristic.
func (c *Client) expectedPickCount(ctx context.Context, leagueKey string) int {
	settings, err := c.GetLeagueSettings(ctx, leagueKey)
	if err != nil {
		log.Printf("no settings for %s, using non-empty draft heuristic: %v", leagueKey, err)
		return 0
	}
	league, err := c.GetLeague(ctx, leagueKey)
	if err != nil || league.NumTeams == 0 {
		log.Printf("no team count for %s, using non-empty draft heuristic", leagueKey)
		return 0
	}
	return settings.RosterSize() * league.NumTeams
}

// GetDraftPicks fetches draft results enriched with human-readable names.
// Team names are always resolved; player names only when includePlayers is
// set, since that costs one request per distinct player. Any lookup failure
// leaves the raw key in place.
func (c *Client) GetDraftPicks(ctx context.Context, leagueKey string, includePlayers bool) (*model.DraftResult, error) {
	draft, err := c.GetDraftResults(ctx, leagueKey)
	if err != nil {
		return nil, err
	}

	teamNames, err := c.TeamNames(ctx, leagueKey)
	if err != nil {
		log.Printf("team name lookup failed for %s, keeping raw keys: %v", leagueKey, err)
		teamNames = map[string]string{}
	}

	playerNames := map[string]string{}
	for _, pick := range draft.Picks {
		if name, ok := teamNames[pick.TeamKey]; ok {
			pick.TeamName = name
		}
		if !includePlayers || pick.PlayerKey == "" {
			continue
		}
		name, ok := playerNames[pick.PlayerKey]
		if !ok {
			p, err := c.GetPlayer(ctx, pick.PlayerKey)
			if err != nil {
				log.Printf("player name lookup failed for %s, keeping raw key: %v", pick.PlayerKey, err)
				playerNames[pick.PlayerKey] = ""
				continue
			}
			name = p.FullName
			playerNames[pick.PlayerKey] = name
		}
		pick.PlayerName = name
	}

	return draft, nil
}
