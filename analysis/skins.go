package analysis

import (
	"sort"

	"github.com/cd1zz/yahoo-ffb-api/model"
)

// SkinWin records one week's skins payout to a team.
type SkinWin struct {
	Week      int     `json:"week"`
	Margin    float64 `json:"margin"`
	PotAmount float64 `json:"pot_amount"`
	Opponent  string  `json:"opponent"`
}

// SkinsWinners runs the skins game over every stored week in ascending
// order. The pot starts at weeklyPot; a week with no qualifying win (a
// completed, untied matchup with margin at or above MinSkinsMargin) rolls
// the pot forward by another weeklyPot. When a week qualifies, the largest
// margin takes the current pot and the pot resets. Margin ties go to the
// lexicographically smallest winning team key. Leftover pot after the last
// week is discarded.
//
// Results are keyed by the winning team's name.
func (a *Analyzer) SkinsWinners(sr *model.SeasonResults, weeklyPot float64) map[string][]SkinWin {
	results := map[string][]SkinWin{}
	pot := weeklyPot

	for _, week := range sr.Weeks() {
		var qualifying []*model.Matchup
		for _, m := range sr.Week(week).Matchups {
			// Winner() is nil when the API's winner key matches neither
			// team; such a matchup cannot take the pot.
			if m.IsCompleted() && !m.IsTied && m.Winner() != nil && m.Margin() >= a.MinSkinsMargin {
				qualifying = append(qualifying, m)
			}
		}

		if len(qualifying) == 0 {
			pot += weeklyPot
			continue
		}

		sort.Slice(qualifying, func(i, j int) bool {
			if qualifying[i].Margin() != qualifying[j].Margin() {
				return qualifying[i].Margin() > qualifying[j].Margin()
			}
			return qualifying[i].Winner().TeamKey < qualifying[j].Winner().TeamKey
		})

		best := qualifying[0]
		winner := best.Winner()
		loser := best.Loser()
		results[winner.Name] = append(results[winner.Name], SkinWin{
			Week:      week,
			Margin:    round2(best.Margin()),
			PotAmount: pot,
			Opponent:  loser.Name,
		})
		pot = weeklyPot
	}

	return results
}
