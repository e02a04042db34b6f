// Package report renders rosters and derived metrics into display strings
// and CSV rows. It holds no state and performs no I/O beyond the writer it
// is handed.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/mauv0809/boxscore/internal/roster"
	"github.com/mauv0809/boxscore/internal/stats"
)

// Totals renders the player's career sums with shooting percentages.
func Totals(p *roster.Player) string {
	t := stats.Sum(p)
	var b strings.Builder
	fmt.Fprintf(&b, "=== TOTALS for %s ===\n", p.Name)
	fmt.Fprintf(&b, "Games: %d\n", t.Games)
	fmt.Fprintf(&b, "Points: %d\n", t.Points)
	fmt.Fprintf(&b, "Rebounds: %d\n", t.Rebounds)
	fmt.Fprintf(&b, "Assists: %d\n", t.Assists)
	fmt.Fprintf(&b, "Steals: %d\n", t.Steals)
	fmt.Fprintf(&b, "Blocks: %d\n", t.Blocks)
	fmt.Fprintf(&b, "FG%%: %.2f%% (%d/%d)\n",
		stats.ShootingPercentage(t.FieldGoalsMade, t.FieldGoalsAttempted), t.FieldGoalsMade, t.FieldGoalsAttempted)
	fmt.Fprintf(&b, "3P%%: %.2f%% (%d/%d)\n",
		stats.ShootingPercentage(t.ThreesMade, t.ThreesAttempted), t.ThreesMade, t.ThreesAttempted)
	fmt.Fprintf(&b, "FT%%: %.2f%% (%d/%d)\n",
		stats.ShootingPercentage(t.FreeThrowsMade, t.FreeThrowsAttempted), t.FreeThrowsMade, t.FreeThrowsAttempted)
	return b.String()
}

// Averages renders per-game averages plus the simplified efficiency rating.
// The rating is labelled as simplified so it is never mistaken for the
// league-standard metric.
func Averages(p *roster.Player) (string, error) {
	avg, err := stats.PerGame(p)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "=== AVERAGES for %s ===\n", p.Name)
	fmt.Fprintf(&b, "PPG: %.2f\n", avg.Points)
	fmt.Fprintf(&b, "RPG: %.2f\n", avg.Rebounds)
	fmt.Fprintf(&b, "APG: %.2f\n", avg.Assists)
	fmt.Fprintf(&b, "SPG: %.2f\n", avg.Steals)
	fmt.Fprintf(&b, "BPG: %.2f\n", avg.Blocks)
	fmt.Fprintf(&b, "Rating: %.2f (simplified formula, not the league PER)\n", stats.EfficiencyRating(p))
	return b.String(), nil
}

// BestGames renders the player's best-scoring game(s), keeping original
// positions and order when several games tie for the maximum.
func BestGames(p *roster.Player) (string, error) {
	ranked, err := stats.BestScoringGames(p)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "=== Best Scoring Game(s): %d pts ===\n", ranked[0].Game.Points)
	for _, rg := range ranked {
		g := rg.Game
		fmt.Fprintf(&b, "%d. %s - %d pts, FG%%=%.1f%%, 3P%%=%.1f%%\n",
			rg.Position, g.Date, g.Points,
			stats.ShootingPercentage(g.FieldGoalsMade, g.FieldGoalsAttempted),
			stats.ShootingPercentage(g.ThreesMade, g.ThreesAttempted))
	}
	return b.String(), nil
}

// PointsChart renders an ASCII bar chart of points per game, one star per
// two points, rounded half up.
func PointsChart(p *roster.Player) (string, error) {
	if len(p.Games) == 0 {
		return "", stats.ErrNoGames
	}
	var b strings.Builder
	b.WriteString("=== Points per Game (each '*' = 2 points) ===\n")
	for i, g := range p.Games {
		stars := int(math.Round(float64(g.Points) / 2.0))
		if stars < 0 {
			stars = 0
		}
		fmt.Fprintf(&b, "%3d [%s] %3d | %s\n", i+1, g.Date, g.Points, strings.Repeat("*", stars))
	}
	return b.String(), nil
}

// Summary renders a one-or-two-line overview per roster player: game count,
// and for players with games, points per game and the simplified rating.
func Summary(r *roster.Roster) string {
	var b strings.Builder
	for _, p := range r.Players {
		fmt.Fprintf(&b, "%s - Games: %d", p.Name, len(p.Games))
		if avg, err := stats.PerGame(p); err == nil {
			fmt.Fprintf(&b, ", PPG: %.2f, Rating: %.2f", avg.Points, stats.EfficiencyRating(p))
		}
		b.WriteString("\n")
	}
	return b.String()
}
