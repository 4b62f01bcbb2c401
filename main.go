package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/cd1zz/yahoo-ffb-api/analysis"
	"github.com/cd1zz/yahoo-ffb-api/auth"
	"github.com/cd1zz/yahoo-ffb-api/config"
	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/cd1zz/yahoo-ffb-api/web"
	"github.com/cd1zz/yahoo-ffb-api/yahoo"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

const usage = `usage: yahoo-ffb-api <command> [flags]

commands:
  auth             run the one-time OAuth2 browser authorization
  verify           check that the stored token works against the API
  leagues          list your leagues for a game (default nfl)
  league-info      show one league's metadata
  settings         show a league's roster and scoring settings
  teams            list a league's teams and managers
  scoreboard       show one week's matchups
  season-analysis  skins, survivor, power rankings, records
  draft-picks      show the draft board
  draft-watch      poll a live draft and print picks as they land
  roster           show one team's weekly roster
  head-to-head     season series between two teams
  serve            run the JSON API server
`

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "auth":
		err = runAuth(ctx)
	case "verify":
		err = runVerify(ctx)
	case "leagues":
		err = runLeagues(ctx, os.Args[2:])
	case "league-info":
		err = runLeagueInfo(ctx, os.Args[2:])
	case "settings":
		err = runSettings(ctx, os.Args[2:])
	case "teams":
		err = runTeams(ctx, os.Args[2:])
	case "scoreboard":
		err = runScoreboard(ctx, os.Args[2:])
	case "season-analysis":
		err = runSeasonAnalysis(ctx, os.Args[2:])
	case "draft-picks":
		err = runDraftPicks(ctx, os.Args[2:])
	case "draft-watch":
		err = runDraftWatch(ctx, os.Args[2:])
	case "roster":
		err = runRoster(ctx, os.Args[2:])
	case "head-to-head":
		err = runHeadToHead(ctx, os.Args[2:])
	case "serve":
		err = runServe(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

// newClient builds an authenticated API client from the environment and the
// stored token.
func newClient(ctx context.Context) (*yahoo.Client, error) {
	settings, err := config.New()
	if err != nil {
		return nil, err
	}
	mgr := auth.New(settings, clock.New())
	httpClient, err := mgr.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}
	return yahoo.New(httpClient, settings.UserAgent), nil
}

func runAuth(ctx context.Context) error {
	settings, err := config.New()
	if err != nil {
		return err
	}
	mgr := auth.New(settings, clock.New())
	if mgr.HasToken() {
		log.Printf("replacing existing token")
	}
	return mgr.Authorize(ctx)
}

func runVerify(ctx context.Context) error {
	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	games, err := c.GetUserGames(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("token OK, account has %d fantasy game editions\n", len(games))
	return nil
}

func runLeagues(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("leagues", flag.ExitOnError)
	game := fs.String("game", "nfl", "game key, e.g. nfl or a numeric edition key")
	fs.Parse(args)

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	leagues, err := c.GetUserLeagues(ctx, *game)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEAGUE KEY\tNAME\tSEASON\tTEAMS\tWEEK")
	for _, l := range leagues {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", l.LeagueKey, l.Name, l.Season, l.NumTeams, l.CurrentWeek)
	}
	return w.Flush()
}

func runLeagueInfo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("league-info", flag.ExitOnError)
	leagueKey := fs.String("league", "", "league key (required)")
	fs.Parse(args)
	if *leagueKey == "" {
		return errors.New("-league is required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	l, err := c.GetLeague(ctx, *leagueKey)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name\t%s\n", l.Name)
	fmt.Fprintf(w, "Season\t%d\n", l.Season)
	fmt.Fprintf(w, "Teams\t%d\n", l.NumTeams)
	fmt.Fprintf(w, "Scoring\t%s\n", l.ScoringType)
	fmt.Fprintf(w, "Weeks\t%d-%d (current %d)\n", l.StartWeek, l.EndWeek, l.CurrentWeek)
	fmt.Fprintf(w, "Draft\t%s\n", l.DraftStatus)
	fmt.Fprintf(w, "Finished\t%v\n", l.IsFinished)
	return w.Flush()
}

func runSettings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	leagueKey := fs.String("league", "", "league key (required)")
	fs.Parse(args)
	if *leagueKey == "" {
		return errors.New("-league is required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	s, err := c.GetLeagueSettings(ctx, *leagueKey)
	if err != nil {
		return err
	}

	fmt.Printf("Draft: %s  Scoring: %s  Playoff teams: %d (from week %d)\n\n",
		s.DraftType, s.ScoringType, s.NumPlayoffTeams, s.PlayoffStartWeek)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tCOUNT")
	for _, rp := range s.RosterPositions {
		fmt.Fprintf(w, "%s\t%d\n", rp.Position, rp.Count)
	}
	fmt.Fprintf(w, "total\t%d\n", s.RosterSize())
	if err := w.Flush(); err != nil {
		return err
	}

	names := make(map[int]string, len(s.StatCategories))
	for _, sc := range s.StatCategories {
		names[sc.StatID] = sc.Name
	}
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STAT\tPOINTS")
	for _, sm := range s.StatModifiers {
		name := names[sm.StatID]
		if name == "" {
			name = fmt.Sprintf("stat %d", sm.StatID)
		}
		fmt.Fprintf(w, "%s\t%g\n", name, sm.Value)
	}
	return w.Flush()
}

func runTeams(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	leagueKey := fs.String("league", "", "league key (required)")
	fs.Parse(args)
	if *leagueKey == "" {
		return errors.New("-league is required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	teams, err := c.GetLeagueTeams(ctx, *leagueKey)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TEAM KEY\tNAME\tMANAGERS\tMOVES\tTRADES")
	for _, t := range teams {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			t.TeamKey, t.Name, joinNames(t.ManagerNames()), t.NumberOfMoves, t.NumberOfTrades)
	}
	return w.Flush()
}

func runScoreboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scoreboard", flag.ExitOnError)
	leagueKey := fs.String("league", "", "league key (required)")
	week := fs.Int("week", 0, "week number, 0 for the current week")
	fs.Parse(args)
	if *leagueKey == "" {
		return errors.New("-league is required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	sb, err := c.GetScoreboard(ctx, *leagueKey, *week)
	if err != nil {
		return err
	}

	fmt.Printf("Week %d\n\n", sb.Week)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, m := range sb.Matchups {
		marker1, marker2 := "", ""
		if win := m.Winner(); win != nil {
			if win.TeamKey == m.Team1.TeamKey {
				marker1 = " *"
			} else {
				marker2 = " *"
			}
		}
		fmt.Fprintf(w, "%s%s\t%.2f\tvs\t%.2f\t%s%s\n",
			m.Team1.Name, marker1, m.Team1.Points, m.Team2.Points, m.Team2.Name, marker2)
	}
	return w.Flush()
}

func runSeasonAnalysis(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("season-analysis", flag.ExitOnError)
	leagueKey := fs.String("league", "", "league key (required)")
	pot := fs.Float64("pot", 10, "weekly skins pot")
	margin := fs.Float64("margin", 20, "minimum margin to win a skin")
	out := fs.String("out", "", "also write the summary as JSON to this file")
	fs.Parse(args)
	if *leagueKey == "" {
		return errors.New("-league is required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	sr, err := fetchSeason(ctx, c, *leagueKey)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(*margin)
	summary := analyzer.Summarize(sr, *pot)

	fmt.Printf("League %s, season %d, %d weeks, %d games, avg score %.2f\n\n",
		summary.LeagueKey, summary.Season, summary.TotalWeeks, summary.TotalGames, summary.AverageGameScore)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTEAM\tRATING\tRECORD\tAVG")
	for _, pr := range summary.PowerRankings {
		rec := sr.TeamRecord(pr.TeamKey)
		fmt.Fprintf(w, "%d\t%s\t%.3f\t%d-%d-%d\t%.2f\n",
			pr.Rank, pr.TeamName, pr.Rating, rec.Wins, rec.Losses, rec.Ties, pr.AvgScore)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nSkins:")
	winners := make([]string, 0, len(summary.SkinsResults))
	for name := range summary.SkinsResults {
		winners = append(winners, name)
	}
	sort.Strings(winners)
	for _, name := range winners {
		for _, win := range summary.SkinsResults[name] {
			fmt.Printf("  week %d: %s by %.2f over %s, pot %.2f\n",
				win.Week, name, win.Margin, win.Opponent, win.PotAmount)
		}
	}

	if sv := summary.SurvivorResults; sv != nil {
		fmt.Println("\nSurvivor:")
		for _, e := range sv.Eliminations {
			fmt.Printf("  week %d: %s eliminated with %.2f (%d left)\n",
				e.Week, e.TeamName, e.Score, e.Remaining)
		}
		if sv.Winner != "" {
			fmt.Printf("  winner: %s\n", sv.Winner)
		}
	}

	if *out != "" {
		if err := summary.WriteFile(*out); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", *out)
	}
	return nil
}

func runDraftPicks(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("draft-picks", flag.ExitOnError)
	leagueKey := fs.String("league", "", "league key (required)")
	players := fs.Bool("players", false, "resolve player names (one request per player)")
	fs.Parse(args)
	if *leagueKey == "" {
		return errors.New("-league is required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	draft, err := c.GetDraftPicks(ctx, *leagueKey, *players)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PICK\tROUND\tTEAM\tPLAYER")
	for _, p := range draft.Picks {
		player := p.PlayerName
		if player == "" {
			player = p.PlayerKey
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", p.Pick, p.Round, p.TeamName, player)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if !draft.Done {
		fmt.Printf("draft in progress, %d picks so far\n", len(draft.Picks))
	}
	return nil
}

func runDraftWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("draft-watch", flag.ExitOnError)
	leagueKey := fs.String("league", "", "league key (required)")
	interval := fs.Duration("interval", 30*time.Second, "poll interval")
	fs.Parse(args)
	if *leagueKey == "" {
		return errors.New("-league is required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}

	// Full draft size so the watcher can stop on its own; team names for the
	// running output.
	expected := 0
	league, err := c.GetLeague(ctx, *leagueKey)
	if err != nil {
		return err
	}
	if settings, err := c.GetLeagueSettings(ctx, *leagueKey); err == nil {
		expected = settings.RosterSize() * league.NumTeams
	} else {
		log.Printf("cannot size the draft, watching until interrupted: %v", err)
	}
	names, err := c.TeamNames(ctx, *leagueKey)
	if err != nil {
		return err
	}

	watcher := yahoo.NewDraftWatcher(c, clock.New(), *leagueKey, *interval, expected)
	picks := make(chan *model.DraftPick, 16)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx, picks)
	}()

	for p := range picks {
		team := names[p.TeamKey]
		if team == "" {
			team = p.TeamKey
		}
		fmt.Printf("pick %3d (round %2d): %s takes %s\n", p.Pick, p.Round, team, p.PlayerKey)
	}

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println("draft watch finished")
	return nil
}

func runRoster(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("roster", flag.ExitOnError)
	teamKey := fs.String("team", "", "team key (required)")
	week := fs.Int("week", 1, "week number")
	fs.Parse(args)
	if *teamKey == "" {
		return errors.New("-team is required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	roster, err := c.GetTeamRoster(ctx, *teamKey, *week)
	if err != nil {
		return err
	}

	fmt.Printf("%s, week %d\n\n", roster.TeamName, roster.Week)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tPLAYER\tPOS\tSTATUS\tPOINTS")
	for _, lines := range [][]*model.PlayerLine{roster.Starters(), roster.Bench()} {
		for _, pl := range lines {
			slot := pl.SelectedPosition
			if slot == "" {
				slot = "BN"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
				slot, pl.Name, pl.Position, pl.Status, pl.Points)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nstarters %.2f, bench %.2f\n", roster.StarterPoints(), roster.BenchPoints())
	return nil
}

func runHeadToHead(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("head-to-head", flag.ExitOnError)
	leagueKey := fs.String("league", "", "league key (required)")
	team1 := fs.String("team1", "", "first team key (required)")
	team2 := fs.String("team2", "", "second team key (required)")
	asJSON := fs.Bool("json", false, "print JSON instead of a table")
	fs.Parse(args)
	if *leagueKey == "" || *team1 == "" || *team2 == "" {
		return errors.New("-league, -team1 and -team2 are required")
	}

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	sr, err := fetchSeason(ctx, c, *leagueKey)
	if err != nil {
		return err
	}

	h2h := analysis.NewAnalyzer(0).HeadToHead(sr, *team1, *team2)
	if *asJSON {
		b, err := json.MarshalIndent(h2h, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	fmt.Printf("%s %d - %d %s (%d ties)\n\n",
		h2h.Team1Name, h2h.Team1Wins, h2h.Team2Wins, h2h.Team2Name, h2h.Ties)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WEEK\tSCORE\tWINNER")
	for _, g := range h2h.Games {
		fmt.Fprintf(w, "%d\t%.2f - %.2f\t%s\n", g.Week, g.Team1Points, g.Team2Points, g.Winner)
	}
	return w.Flush()
}

func runServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("port", 3000, "listen port")
	margin := fs.Float64("margin", 20, "minimum margin to win a skin")
	fs.Parse(args)

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	server := web.NewServer(*port, c, analysis.NewAnalyzer(*margin))

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Catch ctrl-c and properly shut everything down.
	go func() {
		<-ctx.Done()
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	wg.Add(1)
	server.ListenAndServe(shutdown, wg)

	wg.Wait()
	log.Printf("server shutdown")
	return nil
}

// fetchSeason pulls every scoreboard through the league's completed week.
func fetchSeason(ctx context.Context, c *yahoo.Client, leagueKey string) (*model.SeasonResults, error) {
	league, err := c.GetLeague(ctx, leagueKey)
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
	return c.GetSeasonResults(ctx, leagueKey, league.StartWeek, endWeek, league.Season)
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
