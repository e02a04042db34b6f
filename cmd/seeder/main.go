package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/boxscore/internal/codec"
	"github.com/mauv0809/boxscore/internal/roster"
)

// Simplified config loading for the script.
func dataFile() string {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	if path, ok := os.LookupEnv("BOXSCORE_FILE"); ok {
		return path
	}
	return "players_data.txt"
}

func main() {
	log.Info("Starting roster seeder...")
	path := dataFile()

	names := []string{
		"Seeder Player A",
		"Seeder Player B",
		"Seeder Player C",
		"Seeder Player D",
	}
	const gamesPerPlayer = 20

	r := roster.New()
	for _, name := range names {
		p, err := r.AddPlayer(name)
		if err != nil {
			log.Fatalf("Failed to add player %s: %s", name, err)
		}
		for i := 0; i < gamesPerPlayer; i++ {
			p.AppendGame(randomGame())
		}
		log.Info("Seeded player", "name", name, "games", gamesPerPlayer)
	}

	if err := codec.Save(r, path); err != nil {
		log.Fatalf("Failed to write %s: %s", path, err)
	}
	log.Info("Wrote sample roster", "path", path, "players", len(r.Players))
}

// randomGame builds a box score with internally consistent shot counts so
// the sample data looks plausible.
func randomGame() roster.GameRecord {
	day := time.Now().AddDate(0, 0, -rand.Intn(365))

	fga := 5 + rand.Intn(20)
	fgm := rand.Intn(fga + 1)
	tpa := rand.Intn(fga + 1)
	tpm := rand.Intn(min(fgm, tpa) + 1)
	fta := rand.Intn(10)
	ftm := rand.Intn(fta + 1)

	return roster.GameRecord{
		Date:                day.Format("2006-01-02"),
		Points:              2*(fgm-tpm) + 3*tpm + ftm,
		Rebounds:            rand.Intn(15),
		Assists:             rand.Intn(12),
		Steals:              rand.Intn(5),
		Blocks:              rand.Intn(4),
		FieldGoalsMade:      fgm,
		FieldGoalsAttempted: fga,
		ThreesMade:          tpm,
		ThreesAttempted:     tpa,
		FreeThrowsMade:      ftm,
		FreeThrowsAttempted: fta,
	}
}
