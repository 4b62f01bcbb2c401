package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/cd1zz/yahoo-ffb-api/analysis"
	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/cd1zz/yahoo-ffb-api/wire"
	"github.com/cd1zz/yahoo-ffb-api/yahoo"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps client errors onto HTTP statuses: rejected tokens come
// back as 401, upstream shape problems as 502, everything else as 500.
func writeError(w http.ResponseWriter, rnd *render.Render, err error) {
	status := http.StatusInternalServerError
	switch {
	case yahoo.IsUnauthorized(err):
		status = http.StatusUnauthorized
	case wire.IsMalformed(err):
		status = http.StatusBadGateway
	}
	log.Printf("request failed: %v", err)
	rnd.JSON(w, status, errorResponse{Error: err.Error()})
}

func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func queryFloat(r *http.Request, name string, def float64) float64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func rootHandler(rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.JSON(w, http.StatusOK, map[string]string{
			"service": "yahoo-ffb-api",
			"status":  "ok",
		})
	}
}

func leagueHandler(fetcher Fetcher, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := fetcher.GetLeague(r.Context(), chi.URLParam(r, "leagueKey"))
		if err != nil {
			writeError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, l)
	}
}

func settingsHandler(fetcher Fetcher, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := fetcher.GetLeagueSettings(r.Context(), chi.URLParam(r, "leagueKey"))
		if err != nil {
			writeError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, s)
	}
}

func teamsHandler(fetcher Fetcher, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := fetcher.GetLeagueTeams(r.Context(), chi.URLParam(r, "leagueKey"))
		if err != nil {
			writeError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, teams)
	}
}

// scoreboardHandler serves one week's matchups; week 0 or absent means the
// league's current week.
func scoreboardHandler(fetcher Fetcher, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week := queryInt(r, "week", 0)
		sb, err := fetcher.GetScoreboard(r.Context(), chi.URLParam(r, "leagueKey"), week)
		if err != nil {
			writeError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, sb)
	}
}

// analysisHandler serves the full season summary. Query parameters: pot
// (weekly skins pot, default 10) and margin (minimum skins margin,
// overriding the server's analyzer when present).
func analysisHandler(fetcher Fetcher, analyzer *analysis.Analyzer, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueKey := chi.URLParam(r, "leagueKey")
		sr, err := fetchSeason(r, fetcher, leagueKey)
		if err != nil {
			writeError(w, rnd, err)
			return
		}

		a := analyzer
		if margin := queryFloat(r, "margin", -1); margin >= 0 {
			a = analysis.NewAnalyzer(margin)
		}
		pot := queryFloat(r, "pot", 10)
		rnd.JSON(w, http.StatusOK, a.Summarize(sr, pot))
	}
}

func powerHandler(fetcher Fetcher, analyzer *analysis.Analyzer, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueKey := chi.URLParam(r, "leagueKey")
		sr, err := fetchSeason(r, fetcher, leagueKey)
		if err != nil {
			writeError(w, rnd, err)
			return
		}
		window := queryInt(r, "window", 0)
		rnd.JSON(w, http.StatusOK, analyzer.PowerRankings(sr, window))
	}
}

func draftHandler(fetcher Fetcher, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includePlayers := r.URL.Query().Get("players") == "1"
		draft, err := fetcher.GetDraftPicks(r.Context(), chi.URLParam(r, "leagueKey"), includePlayers)
		if err != nil {
			writeError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, draft)
	}
}

// fetchSeason assembles season results through the league's completed week.
func fetchSeason(r *http.Request, fetcher Fetcher, leagueKey string) (*model.SeasonResults, error) {
	league, err := fetcher.GetLeague(r.Context(), leagueKey)
	if err != nil {
		return nil, err
	}

	endWeek := league.EndWeek
	if !league.IsFinished && league.CurrentWeek > 0 && league.CurrentWeek < endWeek {
		endWeek = league.CurrentWeek
	}
	if endWeek < league.StartWeek {
		endWeek = league.StartWeek
	}
	return fetcher.GetSeasonResults(r.Context(), leagueKey, league.StartWeek, endWeek, league.Season)
}
