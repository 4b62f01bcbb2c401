package model

import "github.com/cd1zz/yahoo-ffb-api/wire"

// Manager is one of the humans running a team.
type Manager struct {
	ManagerID      string `json:"manager_id"`
	Nickname       string `json:"nickname"`
	GUID           string `json:"guid"`
	IsCommissioner bool   `json:"is_commissioner"`
}

// Team is a fantasy franchise within a league.
type Team struct {
	TeamKey          string    `json:"team_key"`
	TeamID           string    `json:"team_id"`
	Name             string    `json:"name"`
	URL              string    `json:"url"`
	DivisionID       string    `json:"division_id,omitempty"`
	WaiverPriority   int       `json:"waiver_priority"`
	FAABBalance      int       `json:"faab_balance"`
	NumberOfMoves    int       `json:"number_of_moves"`
	NumberOfTrades   int       `json:"number_of_trades"`
	ClinchedPlayoffs bool      `json:"clinched_playoffs"`
	Managers         []Manager `json:"managers"`
}

// TeamFromAPI builds a Team from a team node: the team array (property list
// first) or a flat property map.
func TeamFromAPI(data any) (*Team, error) {
	var props map[string]any
	switch v := data.(type) {
	case []any:
		if len(v) == 0 {
			return nil, wire.Malformed("team", "team array is empty")
		}
		props = wire.Flatten(v[0])
	case map[string]any:
		props = wire.Flatten(v)
	default:
		return nil, wire.Malformed("team", "team node is neither array nor object")
	}

	key := wire.Str(props["team_key"], "")
	if key == "" {
		return nil, wire.Malformed("team", "missing team_key")
	}

	t := &Team{
		TeamKey:          key,
		TeamID:           wire.Str(props["team_id"], ""),
		Name:             wire.Str(props["name"], ""),
		URL:              wire.Str(props["url"], ""),
		DivisionID:       wire.Str(props["division_id"], ""),
		WaiverPriority:   wire.Int(props["waiver_priority"], 0),
		FAABBalance:      wire.Int(props["faab_balance"], 0),
		NumberOfMoves:    wire.Int(props["number_of_moves"], 0),
		NumberOfTrades:   wire.Int(props["number_of_trades"], 0),
		ClinchedPlayoffs: wire.Bool(props["clinched_playoffs"]),
	}

	for _, entry := range wire.Items(props["managers"], "manager") {
		m := wire.Flatten(entry)
		t.Managers = append(t.Managers, Manager{
			ManagerID:      wire.Str(m["manager_id"], ""),
			Nickname:       wire.Str(m["nickname"], ""),
			GUID:           wire.Str(m["guid"], ""),
			IsCommissioner: wire.Bool(m["is_commissioner"]),
		})
	}

	return t, nil
}

// ManagerNames lists the nicknames of all managers, skipping blanks.
func (t *Team) ManagerNames() []string {
	names := make([]string, 0, len(t.Managers))
	for _, m := range t.Managers {
		if m.Nickname != "" {
			names = append(names, m.Nickname)
		}
	}
	return names
}
