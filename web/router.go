package web

import (
	"time"

	"github.com/cd1zz/yahoo-ffb-api/analysis"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(fetcher Fetcher, analyzer *analysis.Analyzer, rnd *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Season analysis fans out one request per week upstream, so the
	// timeout is generous.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", rootHandler(rnd))

	r.Route("/league/{leagueKey}", func(r chi.Router) {
		r.Get("/", leagueHandler(fetcher, rnd))
		r.Get("/settings", settingsHandler(fetcher, rnd))
		r.Get("/teams", teamsHandler(fetcher, rnd))
		r.Get("/scoreboard", scoreboardHandler(fetcher, rnd))
		r.Get("/analysis", analysisHandler(fetcher, analyzer, rnd))
		r.Get("/power", powerHandler(fetcher, analyzer, rnd))
		r.Get("/draft", draftHandler(fetcher, rnd))
	})

	return r
}
