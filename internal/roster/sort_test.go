package roster_test

import (
	"testing"

	"github.com/mauv0809/boxscore/internal/roster"
	"github.com/stretchr/testify/assert"
)

func TestSortGamesByPointsIsStable(t *testing.T) {
	p := &roster.Player{Name: "Scorer"}
	// The two 10-point games carry distinct dates so their relative order
	// is observable after the sort.
	p.AppendGame(roster.GameRecord{Date: "2024-01-01", Points: 10})
	p.AppendGame(roster.GameRecord{Date: "2024-01-02", Points: 20})
	p.AppendGame(roster.GameRecord{Date: "2024-01-03", Points: 10})
	p.AppendGame(roster.GameRecord{Date: "2024-01-04", Points: 5})

	p.SortGamesByPoints()

	points := make([]int, 0, len(p.Games))
	for _, g := range p.Games {
		points = append(points, g.Points)
	}
	assert.Equal(t, []int{20, 10, 10, 5}, points)
	assert.Equal(t, "2024-01-01", p.Games[1].Date)
	assert.Equal(t, "2024-01-03", p.Games[2].Date)
}

func TestSortGamesByDate(t *testing.T) {
	p := &roster.Player{Name: "Traveler"}
	p.AppendGame(roster.GameRecord{Date: "2024-03-15", Points: 1})
	p.AppendGame(roster.GameRecord{Date: "2023-11-02", Points: 2})
	p.AppendGame(roster.GameRecord{Date: "2024-01-20", Points: 3})

	p.SortGamesByDate()

	assert.Equal(t, "2023-11-02", p.Games[0].Date)
	assert.Equal(t, "2024-01-20", p.Games[1].Date)
	assert.Equal(t, "2024-03-15", p.Games[2].Date)
}

func TestSortGamesByDateIsLexical(t *testing.T) {
	p := &roster.Player{Name: "Sloppy"}
	// A malformed date sorts lexically, not chronologically. Accepted
	// behavior: the format contract is on the caller.
	p.AppendGame(roster.GameRecord{Date: "2024-02-01"})
	p.AppendGame(roster.GameRecord{Date: "1/5/2024"})

	p.SortGamesByDate()

	assert.Equal(t, "1/5/2024", p.Games[0].Date)
	assert.Equal(t, "2024-02-01", p.Games[1].Date)
}
