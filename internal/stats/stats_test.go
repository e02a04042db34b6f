package stats_test

import (
	"testing"

	"github.com/mauv0809/boxscore/internal/roster"
	"github.com/mauv0809/boxscore/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShootingPercentage(t *testing.T) {
	assert.InDelta(t, 50.0, stats.ShootingPercentage(5, 10), 0.0001)
	assert.InDelta(t, 100.0, stats.ShootingPercentage(7, 7), 0.0001)

	t.Run("zero attempts is zero percent, never a division error", func(t *testing.T) {
		assert.Equal(t, 0.0, stats.ShootingPercentage(0, 0))
		assert.Equal(t, 0.0, stats.ShootingPercentage(5, 0))
		assert.Equal(t, 0.0, stats.ShootingPercentage(-3, 0))
	})
}

func TestSum(t *testing.T) {
	t.Run("empty player sums to zero", func(t *testing.T) {
		p := &roster.Player{Name: "Rookie"}
		assert.Equal(t, stats.Totals{}, stats.Sum(p))
	})

	t.Run("sums every category", func(t *testing.T) {
		p := &roster.Player{Name: "Veteran"}
		p.AppendGame(roster.GameRecord{
			Date: "2024-01-01", Points: 20, Rebounds: 5, Assists: 3, Steals: 1, Blocks: 1,
			FieldGoalsMade: 8, FieldGoalsAttempted: 15,
			ThreesMade: 2, ThreesAttempted: 5,
			FreeThrowsMade: 4, FreeThrowsAttempted: 5,
		})
		p.AppendGame(roster.GameRecord{
			Date: "2024-01-03", Points: 10, Rebounds: 10, Assists: 2, Steals: 2, Blocks: 0,
			FieldGoalsMade: 4, FieldGoalsAttempted: 9,
			ThreesMade: 0, ThreesAttempted: 2,
			FreeThrowsMade: 2, FreeThrowsAttempted: 2,
		})

		got := stats.Sum(p)
		assert.Equal(t, stats.Totals{
			Games: 2, Points: 30, Rebounds: 15, Assists: 5, Steals: 3, Blocks: 1,
			FieldGoalsMade: 12, FieldGoalsAttempted: 24,
			ThreesMade: 2, ThreesAttempted: 7,
			FreeThrowsMade: 6, FreeThrowsAttempted: 7,
		}, got)
	})
}

func TestPerGame(t *testing.T) {
	t.Run("reports no games", func(t *testing.T) {
		p := &roster.Player{Name: "Rookie"}
		_, err := stats.PerGame(p)
		assert.ErrorIs(t, err, stats.ErrNoGames)
	})

	t.Run("divides totals by game count", func(t *testing.T) {
		p := &roster.Player{Name: "Veteran"}
		p.AppendGame(roster.GameRecord{Points: 20, Rebounds: 6, Assists: 4, Steals: 2, Blocks: 1})
		p.AppendGame(roster.GameRecord{Points: 10, Rebounds: 4, Assists: 2, Steals: 0, Blocks: 0})

		avg, err := stats.PerGame(p)
		require.NoError(t, err)
		assert.InDelta(t, 15.0, avg.Points, 0.0001)
		assert.InDelta(t, 5.0, avg.Rebounds, 0.0001)
		assert.InDelta(t, 3.0, avg.Assists, 0.0001)
		assert.InDelta(t, 1.0, avg.Steals, 0.0001)
		assert.InDelta(t, 0.5, avg.Blocks, 0.0001)
	})
}

func TestEfficiencyRating(t *testing.T) {
	t.Run("no games rates zero without error", func(t *testing.T) {
		p := &roster.Player{Name: "Rookie"}
		assert.Equal(t, 0.0, stats.EfficiencyRating(p))
	})

	t.Run("single game", func(t *testing.T) {
		p := &roster.Player{Name: "Veteran"}
		p.AppendGame(roster.GameRecord{
			Points: 20, Rebounds: 5, Assists: 3, Steals: 1, Blocks: 1,
			FieldGoalsMade: 8, FieldGoalsAttempted: 15,
			FreeThrowsMade: 4, FreeThrowsAttempted: 5,
		})
		// 20+5+3+1+1 - ((15-8)+(5-4)) = 30 - 8 = 22
		assert.InDelta(t, 22.0, stats.EfficiencyRating(p), 0.0001)
	})

	t.Run("averages the raw score over games", func(t *testing.T) {
		p := &roster.Player{Name: "Veteran"}
		p.AppendGame(roster.GameRecord{Points: 10})
		p.AppendGame(roster.GameRecord{Points: 20, FieldGoalsAttempted: 4})
		// (10 + (20-4)) / 2 = 13
		assert.InDelta(t, 13.0, stats.EfficiencyRating(p), 0.0001)
	})
}

func TestBestScoringGames(t *testing.T) {
	t.Run("reports no games", func(t *testing.T) {
		p := &roster.Player{Name: "Rookie"}
		_, err := stats.BestScoringGames(p)
		assert.ErrorIs(t, err, stats.ErrNoGames)
	})

	t.Run("keeps all ties in original order", func(t *testing.T) {
		p := &roster.Player{Name: "Streaky"}
		p.AppendGame(roster.GameRecord{Date: "2024-01-01", Points: 18})
		p.AppendGame(roster.GameRecord{Date: "2024-01-02", Points: 25})
		p.AppendGame(roster.GameRecord{Date: "2024-01-03", Points: 25})
		p.AppendGame(roster.GameRecord{Date: "2024-01-04", Points: 10})

		best, err := stats.BestScoringGames(p)
		require.NoError(t, err)
		require.Len(t, best, 2)
		assert.Equal(t, 2, best[0].Position)
		assert.Equal(t, "2024-01-02", best[0].Game.Date)
		assert.Equal(t, 3, best[1].Position)
		assert.Equal(t, "2024-01-03", best[1].Game.Date)
		assert.Equal(t, 25, best[0].Game.Points)
	})
}
