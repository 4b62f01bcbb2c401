// Package web serves league analytics as JSON over HTTP: metadata, weekly
// scoreboards, season analysis (skins, survivor, power rankings), and the
// draft board.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cd1zz/yahoo-ffb-api/analysis"
	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/unrolled/render"
)

// Fetcher is the slice of the API client the handlers need. *yahoo.Client
// satisfies it.
type Fetcher interface {
	GetLeague(ctx context.Context, leagueKey string) (*model.League, error)
	GetLeagueSettings(ctx context.Context, leagueKey string) (*model.LeagueSettings, error)
	GetLeagueTeams(ctx context.Context, leagueKey string) ([]*model.Team, error)
	GetScoreboard(ctx context.Context, leagueKey string, week int) (*model.WeeklyScoreboard, error)
	GetSeasonResults(ctx context.Context, leagueKey string, startWeek, endWeek, season int) (*model.SeasonResults, error)
	GetDraftPicks(ctx context.Context, leagueKey string, includePlayers bool) (*model.DraftResult, error)
}

type Server struct {
	server *http.Server
}

func NewServer(port int, fetcher Fetcher, analyzer *analysis.Analyzer) *Server {
	rnd := render.New()
	router := getRouter(fetcher, analyzer, rnd)

	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}
