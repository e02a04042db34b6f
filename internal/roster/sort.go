package roster

import "sort"

// SortGamesByDate reorders the player's games oldest to newest by lexical
// date comparison. Any position computed before the sort is invalidated.
func (p *Player) SortGamesByDate() {
	sort.SliceStable(p.Games, func(i, j int) bool {
		return p.Games[i].Date < p.Games[j].Date
	})
}

// SortGamesByPoints reorders the player's games highest-scoring first.
// Games with equal points keep their relative order.
func (p *Player) SortGamesByPoints() {
	sort.SliceStable(p.Games, func(i, j int) bool {
		return p.Games[i].Points > p.Games[j].Points
	})
}
