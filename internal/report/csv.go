package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mauv0809/boxscore/internal/roster"
	"github.com/mauv0809/boxscore/internal/stats"
)

var csvHeader = []string{
	"Date", "Points", "Rebounds", "Assists", "Steals", "Blocks",
	"FGM", "FGA", "3PM", "3PA", "FTM", "FTA", "FG%", "3P%", "FT%",
}

// WriteCSV writes the player's games to w as CSV, one row per game in
// sequence order, with the three percentage columns rendered to two
// decimals.
func WriteCSV(w io.Writer, p *roster.Player) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, g := range p.Games {
		row := []string{
			g.Date,
			strconv.Itoa(g.Points),
			strconv.Itoa(g.Rebounds),
			strconv.Itoa(g.Assists),
			strconv.Itoa(g.Steals),
			strconv.Itoa(g.Blocks),
			strconv.Itoa(g.FieldGoalsMade),
			strconv.Itoa(g.FieldGoalsAttempted),
			strconv.Itoa(g.ThreesMade),
			strconv.Itoa(g.ThreesAttempted),
			strconv.Itoa(g.FreeThrowsMade),
			strconv.Itoa(g.FreeThrowsAttempted),
			fmt.Sprintf("%.2f", stats.ShootingPercentage(g.FieldGoalsMade, g.FieldGoalsAttempted)),
			fmt.Sprintf("%.2f", stats.ShootingPercentage(g.ThreesMade, g.ThreesAttempted)),
			fmt.Sprintf("%.2f", stats.ShootingPercentage(g.FreeThrowsMade, g.FreeThrowsAttempted)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFileName derives a filesystem-friendly file name from a player's name,
// replacing spaces with underscores.
func CSVFileName(name string) string {
	return strings.ReplaceAll(name, " ", "_") + ".csv"
}
