// Package mockfetcher is a testify mock of web.Fetcher for handler tests
// that need to script upstream failures.
package mockfetcher

import (
	"context"

	"github.com/cd1zz/yahoo-ffb-api/model"
	"github.com/stretchr/testify/mock"
)

type F struct {
	mock.Mock
}

func (f *F) GetLeague(ctx context.Context, leagueKey string) (*model.League, error) {
	args := f.Called(ctx, leagueKey)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (f *F) GetLeagueSettings(ctx context.Context, leagueKey string) (*model.LeagueSettings, error) {
	args := f.Called(ctx, leagueKey)

	var s *model.LeagueSettings
	if args.Get(0) != nil {
		s = args.Get(0).(*model.LeagueSettings)
	}

	return s, args.Error(1)
}

func (f *F) GetLeagueTeams(ctx context.Context, leagueKey string) ([]*model.Team, error) {
	args := f.Called(ctx, leagueKey)

	var teams []*model.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]*model.Team)
	}

	return teams, args.Error(1)
}

func (f *F) GetScoreboard(ctx context.Context, leagueKey string, week int) (*model.WeeklyScoreboard, error) {
	args := f.Called(ctx, leagueKey, week)

	var sb *model.WeeklyScoreboard
	if args.Get(0) != nil {
		sb = args.Get(0).(*model.WeeklyScoreboard)
	}

	return sb, args.Error(1)
}

func (f *F) GetSeasonResults(ctx context.Context, leagueKey string, startWeek, endWeek, season int) (*model.SeasonResults, error) {
	args := f.Called(ctx, leagueKey, startWeek, endWeek, season)

	var sr *model.SeasonResults
	if args.Get(0) != nil {
		sr = args.Get(0).(*model.SeasonResults)
	}

	return sr, args.Error(1)
}

func (f *F) GetDraftPicks(ctx context.Context, leagueKey string, includePlayers bool) (*model.DraftResult, error) {
	args := f.Called(ctx, leagueKey, includePlayers)

	var d *model.DraftResult
	if args.Get(0) != nil {
		d = args.Get(0).(*model.DraftResult)
	}

	return d, args.Error(1)
}
