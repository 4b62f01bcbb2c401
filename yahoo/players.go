package yahoo

import (
	"context"
	"log"
	"net/url"
	"sort"
	"strings"

	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/cd1zz/yahoo-ffb-api/wire"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// GetPlayer fetches one player's metadata.
func (c *Client) GetPlayer(ctx context.Context, playerKey string) (*model.Player, error) {
	fc, err := c.request(ctx, "/player/%s", playerKey)
	if err != nil {
		return nil, err
	}
	node := wire.Get(fc, "player")
	if node == nil {
		return nil, wire.Malformed("player", "no player node")
	}
	return model.PlayerFromAPI(node)
}

// SearchPlayers searches the league's player pool by name. Yahoo's own
// matching is substring based, so results are re-ranked client side by
// Levenshtein similarity against the query before being returned.
func (c *Client) SearchPlayers(ctx context.Context, leagueKey, name string) ([]*model.Player, error) {
	fc, err := c.request(ctx, "/league/%s/players;search=%s", leagueKey, url.QueryEscape(name))
	if err != nil {
		return nil, err
	}
	league, err := leagueNode(fc)
	if err != nil {
		return nil, err
	}
	playersNode := subResource(league, "players")
	if playersNode == nil {
		// An empty result set arrives as a missing players element.
		return nil, nil
	}

	var players []*model.Player
	for _, entry := range wire.Items(playersNode, "player") {
		p, err := model.PlayerFromAPI(entry)
		if err != nil {
			log.Printf("skipping player in search results: %v", err)
			continue
		}
		players = append(players, p)
	}

	query := strings.ToLower(name)
	sort.SliceStable(players, func(i, j int) bool {
		return similarity(query, players[i].FullName) > similarity(query, players[j].FullName)
	})
	return players, nil
}

func similarity(query, fullName string) float64 {
	fullName = strings.ToLower(fullName)
	distance := fuzzy.LevenshteinDistance(query, fullName)
	maxLen := len(query)
	if len(fullName) > maxLen {
		maxLen = len(fullName)
	}
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(distance)/float64(maxLen)
}
