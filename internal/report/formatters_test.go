package report_test

import (
	"testing"

	"github.com/mauv0809/boxscore/internal/report"
	"github.com/mauv0809/boxscore/internal/roster"
	"github.com/mauv0809/boxscore/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func veteran(t *testing.T) *roster.Player {
	t.Helper()

	p := &roster.Player{Name: "Allen Iverson"}
	p.AppendGame(roster.GameRecord{
		Date: "2024-01-05", Points: 20, Rebounds: 5, Assists: 3, Steals: 1, Blocks: 1,
		FieldGoalsMade: 8, FieldGoalsAttempted: 15,
		ThreesMade: 2, ThreesAttempted: 5,
		FreeThrowsMade: 4, FreeThrowsAttempted: 5,
	})
	p.AppendGame(roster.GameRecord{
		Date: "2024-01-08", Points: 10, Rebounds: 5, Assists: 1, Steals: 1, Blocks: 1,
		FieldGoalsMade: 4, FieldGoalsAttempted: 10,
		ThreesMade: 0, ThreesAttempted: 3,
		FreeThrowsMade: 2, FreeThrowsAttempted: 2,
	})
	return p
}

func TestTotals(t *testing.T) {
	out := report.Totals(veteran(t))

	assert.Contains(t, out, "TOTALS for Allen Iverson")
	assert.Contains(t, out, "Games: 2")
	assert.Contains(t, out, "Points: 30")
	assert.Contains(t, out, "FG%: 48.00% (12/25)")
	assert.Contains(t, out, "3P%: 25.00% (2/8)")
	assert.Contains(t, out, "FT%: 85.71% (6/7)")
}

func TestAverages(t *testing.T) {
	out, err := report.Averages(veteran(t))
	require.NoError(t, err)

	assert.Contains(t, out, "PPG: 15.00")
	assert.Contains(t, out, "RPG: 5.00")
	assert.Contains(t, out, "APG: 2.00")
	// The rating must never read as the league-standard metric.
	assert.Contains(t, out, "simplified formula")

	_, err = report.Averages(&roster.Player{Name: "Rookie"})
	assert.ErrorIs(t, err, stats.ErrNoGames)
}

func TestBestGames(t *testing.T) {
	out, err := report.BestGames(veteran(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Best Scoring Game(s): 20 pts")
	assert.Contains(t, out, "1. 2024-01-05 - 20 pts")
	assert.NotContains(t, out, "2024-01-08")

	_, err = report.BestGames(&roster.Player{Name: "Rookie"})
	assert.ErrorIs(t, err, stats.ErrNoGames)
}

func TestPointsChart(t *testing.T) {
	p := &roster.Player{Name: "Charter"}
	p.AppendGame(roster.GameRecord{Date: "2024-01-01", Points: 4})
	p.AppendGame(roster.GameRecord{Date: "2024-01-02", Points: 5})
	p.AppendGame(roster.GameRecord{Date: "2024-01-03", Points: 0})

	out, err := report.PointsChart(p)
	require.NoError(t, err)

	assert.Contains(t, out, "[2024-01-01]   4 | **\n")
	// 5 points rounds half up to 3 stars.
	assert.Contains(t, out, "[2024-01-02]   5 | ***\n")
	assert.Contains(t, out, "[2024-01-03]   0 | \n")

	_, err = report.PointsChart(&roster.Player{Name: "Rookie"})
	assert.ErrorIs(t, err, stats.ErrNoGames)
}

func TestSummary(t *testing.T) {
	r := roster.New()
	_, err := r.AddPlayer("Rookie")
	require.NoError(t, err)
	r.Players = append(r.Players, veteran(t))

	out := report.Summary(r)

	assert.Contains(t, out, "Rookie - Games: 0\n")
	assert.Contains(t, out, "Allen Iverson - Games: 2, PPG: 15.00, Rating: ")
}
