package yahoo

import (
	"context"
	"log"

	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/cd1zz/yahoo-ffb-api/wire"
)

// Game is one fantasy game edition (sport plus season) the signed-in user
// plays in.
type Game struct {
	GameKey string `json:"game_key"`
	GameID  string `json:"game_id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Season  int    `json:"season"`
}

// GetUserGames lists the fantasy game editions of the signed-in user.
func (c *Client) GetUserGames(ctx context.Context) ([]Game, error) {
	fc, err := c.request(ctx, "/users;use_login=1/games")
	if err != nil {
		return nil, err
	}
	gamesNode, err := userGamesNode(fc)
	if err != nil {
		return nil, err
	}

	var games []Game
	for _, entry := range wire.Items(gamesNode, "game") {
		props := wire.Flatten(firstElement(entry))
		key := wire.Str(props["game_key"], "")
		if key == "" {
			continue
		}
		games = append(games, Game{
			GameKey: key,
			GameID:  wire.Str(props["game_id"], ""),
			Code:    wire.Str(props["code"], ""),
			Name:    wire.Str(props["name"], ""),
			Season:  wire.Int(props["season"], 0),
		})
	}
	return games, nil
}

// GetUserLeagues lists the signed-in user's leagues for one game key, e.g.
// "nfl" for the current season or a numeric key for a past one.
func (c *Client) GetUserLeagues(ctx context.Context, gameKey string) ([]*model.League, error) {
	fc, err := c.request(ctx, "/users;use_login=1/games;game_keys=%s/leagues", gameKey)
	if err != nil {
		return nil, err
	}
	gamesNode, err := userGamesNode(fc)
	if err != nil {
		return nil, err
	}

	var leagues []*model.League
	for _, gameEntry := range wire.Items(gamesNode, "game") {
		leaguesNode := subResource(wire.List(gameEntry), "leagues")
		if leaguesNode == nil {
			continue
		}
		for _, entry := range wire.Items(leaguesNode, "league") {
			l, err := model.LeagueFromAPI(entry)
			if err != nil {
				log.Printf("skipping league for game %s: %v", gameKey, err)
				continue
			}
			leagues = append(leagues, l)
		}
	}
	return leagues, nil
}

// userGamesNode digs out users.0.user[...].games. The user node is an array
// whose first element is the user property list and whose later elements
// carry sub-resources.
func userGamesNode(fc any) (any, error) {
	user := wire.Get(fc, "users", "0", "user")
	if user == nil {
		return nil, wire.Malformed("users", "no user node")
	}
	games := subResource(wire.List(user), "games")
	if games == nil {
		return nil, wire.Malformed("users", "no games element")
	}
	return games, nil
}

// firstElement unwraps the property list of an entity that may still be in
// array form.
func firstElement(entry any) any {
	if arr, ok := entry.([]any); ok {
		if len(arr) == 0 {
			return nil
		}
		return arr[0]
	}
	return entry
}
