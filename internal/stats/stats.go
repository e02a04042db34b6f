package stats

import (
	"errors"

	"github.com/mauv0809/boxscore/internal/roster"
)

// ErrNoGames is returned by metrics that need at least one recorded game.
var ErrNoGames = errors.New("player has no recorded games")

// Totals holds per-category sums across all of a player's games.
type Totals struct {
	Games    int
	Points   int
	Rebounds int
	Assists  int
	Steals   int
	Blocks   int

	FieldGoalsMade      int
	FieldGoalsAttempted int
	ThreesMade          int
	ThreesAttempted     int
	FreeThrowsMade      int
	FreeThrowsAttempted int
}

// Averages holds per-game averages for the counting categories.
type Averages struct {
	Points   float64
	Rebounds float64
	Assists  float64
	Steals   float64
	Blocks   float64
}

// RankedGame pairs a game with its 1-based position in the player's
// sequence, for display.
type RankedGame struct {
	Position int
	Game     roster.GameRecord
}

// ShootingPercentage returns made/attempted as a percentage, and 0 when
// nothing was attempted.
func ShootingPercentage(made, attempted int) float64 {
	if attempted == 0 {
		return 0.0
	}
	return float64(made) / float64(attempted) * 100.0
}

// Sum totals every numeric category across the player's games. A player
// with no games sums to all zeroes.
func Sum(p *roster.Player) Totals {
	t := Totals{Games: len(p.Games)}
	for _, g := range p.Games {
		t.Points += g.Points
		t.Rebounds += g.Rebounds
		t.Assists += g.Assists
		t.Steals += g.Steals
		t.Blocks += g.Blocks
		t.FieldGoalsMade += g.FieldGoalsMade
		t.FieldGoalsAttempted += g.FieldGoalsAttempted
		t.ThreesMade += g.ThreesMade
		t.ThreesAttempted += g.ThreesAttempted
		t.FreeThrowsMade += g.FreeThrowsMade
		t.FreeThrowsAttempted += g.FreeThrowsAttempted
	}
	return t
}

// PerGame returns the player's per-game averages, or ErrNoGames for a
// player with no recorded games.
func PerGame(p *roster.Player) (Averages, error) {
	if len(p.Games) == 0 {
		return Averages{}, ErrNoGames
	}
	t := Sum(p)
	n := float64(t.Games)
	return Averages{
		Points:   float64(t.Points) / n,
		Rebounds: float64(t.Rebounds) / n,
		Assists:  float64(t.Assists) / n,
		Steals:   float64(t.Steals) / n,
		Blocks:   float64(t.Blocks) / n,
	}, nil
}

// EfficiencyRating computes a simplified per-game production score: each
// game contributes points + rebounds + assists + steals + blocks, minus
// missed field goals and missed free throws; the sum is divided by the game
// count. This is a deliberately transparent formula and not the
// league-standard efficiency metric. A player with no games rates 0.
func EfficiencyRating(p *roster.Player) float64 {
	if len(p.Games) == 0 {
		return 0.0
	}
	total := 0.0
	for _, g := range p.Games {
		raw := g.Points + g.Rebounds + g.Assists + g.Steals + g.Blocks
		raw -= (g.FieldGoalsAttempted - g.FieldGoalsMade) + (g.FreeThrowsAttempted - g.FreeThrowsMade)
		total += float64(raw)
	}
	return total / float64(len(p.Games))
}

// BestScoringGames returns every game that matches the player's maximum
// points, in original sequence order with 1-based positions. Ties are not
// broken. ErrNoGames is returned for a player with no recorded games.
func BestScoringGames(p *roster.Player) ([]RankedGame, error) {
	if len(p.Games) == 0 {
		return nil, ErrNoGames
	}
	best := p.Games[0].Points
	for _, g := range p.Games {
		if g.Points > best {
			best = g.Points
		}
	}
	var ranked []RankedGame
	for i, g := range p.Games {
		if g.Points == best {
			ranked = append(ranked, RankedGame{Position: i + 1, Game: g})
		}
	}
	return ranked, nil
}
