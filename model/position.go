package model

// SlotOrder is the canonical display order for starting lineup slots. Codes
// not listed here sort after these, in first-seen order.
var SlotOrder = []string{"QB", "RB", "WR", "TE", "W/R/T", "K", "DEF", "IR"}

var benchSlots = map[string]bool{
	"BN":  true,
	"IR":  true,
	"IR+": true,
}

// IsBenchSlot reports whether a selected position keeps the player out of the
// starting lineup. The empty string counts as bench: players with no slot
// assignment never start.
func IsBenchSlot(position string) bool {
	if position == "" {
		return true
	}
	return benchSlots[position]
}

// slotRank maps a slot code onto a sortable rank, canonical slots first.
func slotRank(position string) int {
	for i, s := range SlotOrder {
		if s == position {
			return i
		}
	}
	return len(SlotOrder)
}
