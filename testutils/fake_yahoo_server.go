// Package testutils provides a fake Yahoo Fantasy Sports API server backed
// by embedded wire-format fixtures. The fixtures cover every container shape
// the real API uses, so client tests exercise the full parse path.
package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Keys the fixtures are registered under.
const (
	YahooLeagueKey = "nfl.l.431"
	YahooTeam1Key  = "nfl.l.431.t.1"
	YahooTeam2Key  = "nfl.l.431.t.2"
	YahooPlayerKey = "nfl.p.100"
)

//go:embed yahoodata
var yahoodata embed.FS

type FakeYahooServer struct {
	s *httptest.Server

	// RequestCount tallies handled requests, useful for caching assertions.
	RequestCount int
}

func NewFakeYahooServer() *FakeYahooServer {
	f := &FakeYahooServer{}

	r := chi.NewRouter()
	r.Use(f.countRequests)
	r.Route("/fantasy/v2", func(r chi.Router) {
		r.Get("/league/{leagueKey}", f.leagueHandler)
		r.Get("/league/{leagueKey}/{resource}", f.leagueResourceHandler)
		r.Get("/team/{teamKey}/*", f.rosterHandler)
		r.Get("/player/{playerKey}", f.playerHandler)
		r.Get("/users;use_login=1/{games}", f.userGamesHandler)
		r.Get("/users;use_login=1/{games}/leagues", f.userLeaguesHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeYahooServer) Close() {
	f.s.Close()
}

func (f *FakeYahooServer) URL() string {
	return f.s.URL
}

func (f *FakeYahooServer) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.RequestCount++
		next.ServeHTTP(w, r)
	})
}

func (f *FakeYahooServer) leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueKey") != YahooLeagueKey {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(forbiddenMessage))
		return
	}
	serveYahooFile(w, "league.json")
}

// leagueResourceHandler serves league sub-resources. The resource segment
// may carry matrix parameters, e.g. "scoreboard;week=2".
func (f *FakeYahooServer) leagueResourceHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueKey") != YahooLeagueKey {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(forbiddenMessage))
		return
	}

	resource, params := splitMatrix(chi.URLParam(r, "resource"))
	switch resource {
	case "settings":
		serveYahooFile(w, "settings.json")
	case "teams":
		serveYahooFile(w, "teams.json")
	case "draftresults":
		serveYahooFile(w, "draftresults.json")
	case "scoreboard":
		week := params["week"]
		if week == "" {
			week = "3"
		}
		serveYahooFile(w, fmt.Sprintf("scoreboard_%s.json", week))
	case "players":
		serveYahooFile(w, "players_search.json")
	default:
		http.NotFound(w, r)
	}
}

func (f *FakeYahooServer) rosterHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "teamKey") {
	case YahooTeam1Key:
		serveYahooFile(w, "roster_t1.json")
	case YahooTeam2Key:
		serveYahooFile(w, "roster_t2.json")
	default:
		http.NotFound(w, r)
	}
}

func (f *FakeYahooServer) playerHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "playerKey") != YahooPlayerKey {
		http.NotFound(w, r)
		return
	}
	serveYahooFile(w, "player.json")
}

func (f *FakeYahooServer) userGamesHandler(w http.ResponseWriter, r *http.Request) {
	serveYahooFile(w, "users_games.json")
}

func (f *FakeYahooServer) userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	serveYahooFile(w, "users_leagues.json")
}

// splitMatrix separates a path segment from its matrix parameters:
// "scoreboard;week=2" becomes ("scoreboard", {"week": "2"}).
func splitMatrix(segment string) (string, map[string]string) {
	parts := strings.Split(segment, ";")
	params := make(map[string]string)
	for _, p := range parts[1:] {
		if k, v, ok := strings.Cut(p, "="); ok {
			params[k] = v
		}
	}
	return parts[0], params
}

func serveYahooFile(w http.ResponseWriter, name string) {
	b, err := yahoodata.ReadFile(fmt.Sprintf("yahoodata/%s", name))
	if err != nil {
		log.Printf("error reading yahoodata/%s: %v", name, err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

const forbiddenMessage = `{"error":{"description":"You are not allowed to view this page because you are not in this league."}}`
