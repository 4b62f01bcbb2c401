package analysis

import "github.com/cd1zz/yahoo-ffb-api/model"

// Elimination records one round of the survivor pool.
type Elimination struct {
	Week      int     `json:"week"`
	TeamName  string  `json:"team"`
	Score     float64 `json:"score"`
	Remaining int     `json:"remaining"`
}

// SurvivorResult is the outcome of a survivor pool run.
type SurvivorResult struct {
	// Winner is the last team standing, empty when more than one team
	// remains after the final processed week.
	Winner       string        `json:"winner,omitempty"`
	Eliminations []Elimination `json:"eliminations"`
}

// SurvivorResults runs the survivor pool over weeks (all stored weeks when
// nil). The active set is every team in the first available week; each
// subsequent week eliminates the active team with the lowest score. Weeks
// without data are skipped without an elimination. Ties for the minimum
// eliminate the lexicographically smallest team name, team key breaking
// exact name collisions.
func (a *Analyzer) SurvivorResults(sr *model.SeasonResults, weeks []int) *SurvivorResult {
	if weeks == nil {
		weeks = sr.Weeks()
	}
	result := &SurvivorResult{Eliminations: []Elimination{}}

	// Seed the active set from the first week that has data.
	active := map[string]string{}
	for _, w := range weeks {
		sb := sr.Week(w)
		if sb == nil || len(sb.Matchups) == 0 {
			continue
		}
		for _, ts := range sb.Scores() {
			active[ts.TeamKey] = ts.Name
		}
		break
	}
	if len(active) == 0 {
		return result
	}

	for _, w := range weeks {
		if len(active) == 1 {
			break
		}
		sb := sr.Week(w)
		if sb == nil || len(sb.Matchups) == 0 {
			continue
		}

		lowKey := ""
		lowScore := 0.0
		for key, name := range active {
			m := sb.MatchupFor(key)
			if m == nil {
				continue
			}
			score := m.ScoreFor(key).Points
			switch {
			case lowKey == "", score < lowScore:
				lowKey, lowScore = key, score
			case score == lowScore:
				if lessByName(name, key, active[lowKey], lowKey) {
					lowKey = key
				}
			}
		}
		if lowKey == "" {
			continue
		}

		name := active[lowKey]
		delete(active, lowKey)
		result.Eliminations = append(result.Eliminations, Elimination{
			Week:      w,
			TeamName:  name,
			Score:     lowScore,
			Remaining: len(active),
		})
	}

	if len(active) == 1 {
		for _, name := range active {
			result.Winner = name
		}
	}
	return result
}

func lessByName(name1, key1, name2, key2 string) bool {
	if name1 != name2 {
		return name1 < name2
	}
	return key1 < key2
}
