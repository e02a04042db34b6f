package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/boxscore/internal/codec"
	"github.com/mauv0809/boxscore/internal/report"
	"github.com/mauv0809/boxscore/internal/roster"
	"github.com/mauv0809/boxscore/internal/stats"
	"github.com/spf13/cobra"
)

var gameFlags struct {
	date     string
	points   int
	rebounds int
	assists  int
	steals   int
	blocks   int
	fgm, fga int
	tpm, tpa int
	ftm, fta int
}

var (
	sortBy  string
	csvOut  string
	confirm bool
)

func init() {
	registerGameFlags(addGameCmd)
	addGameCmd.MarkFlagRequired("date")
	registerGameFlags(editGameCmd)

	deleteGameCmd.Flags().BoolVar(&confirm, "yes", false, "confirm the deletion")
	sortCmd.Flags().StringVar(&sortBy, "by", "date", "sort key: date (oldest first) or points (highest first)")
	exportCmd.Flags().StringVar(&csvOut, "out", "", "output file (defaults to <player_name>.csv in BOXSCORE_CSV_DIR)")

	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(addGameCmd)
	rootCmd.AddCommand(editGameCmd)
	rootCmd.AddCommand(deleteGameCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(averagesCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exportAllCmd)
	rootCmd.AddCommand(summaryCmd)
}

func registerGameFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&gameFlags.date, "date", "", "game date (YYYY-MM-DD)")
	fl.IntVar(&gameFlags.points, "points", 0, "points scored")
	fl.IntVar(&gameFlags.rebounds, "rebounds", 0, "rebounds")
	fl.IntVar(&gameFlags.assists, "assists", 0, "assists")
	fl.IntVar(&gameFlags.steals, "steals", 0, "steals")
	fl.IntVar(&gameFlags.blocks, "blocks", 0, "blocks")
	fl.IntVar(&gameFlags.fgm, "fgm", 0, "field goals made")
	fl.IntVar(&gameFlags.fga, "fga", 0, "field goals attempted")
	fl.IntVar(&gameFlags.tpm, "3pm", 0, "three-pointers made")
	fl.IntVar(&gameFlags.tpa, "3pa", 0, "three-pointers attempted")
	fl.IntVar(&gameFlags.ftm, "ftm", 0, "free throws made")
	fl.IntVar(&gameFlags.fta, "fta", 0, "free throws attempted")
}

// loadRoster reads the data file, treating a missing file as an empty
// roster so first use needs no setup step.
func loadRoster() (*roster.Roster, error) {
	r, err := codec.Load(cfg.DataFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("No data file yet, starting with an empty roster", "path", cfg.DataFile)
			return roster.New(), nil
		}
		return nil, err
	}
	return r, nil
}

func requirePlayer(r *roster.Roster, name string) (*roster.Player, error) {
	p, ok := r.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("no player named %q", name)
	}
	return p, nil
}

func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("game number must be an integer, got %q", arg)
	}
	return pos, nil
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player NAME",
	Short: "Add a player to the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := r.AddPlayer(args[0])
		if errors.Is(err, roster.ErrAlreadyExists) {
			fmt.Printf("Player %q already exists (%d games).\n", p.Name, len(p.Games))
			return nil
		}
		if err != nil {
			return err
		}
		if err := codec.Save(r, cfg.DataFile); err != nil {
			return err
		}
		fmt.Printf("Added player %q.\n", p.Name)
		return nil
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List all players in the roster",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		if len(r.Players) == 0 {
			fmt.Println("No players yet. Add one with 'boxscore add-player NAME'.")
			return nil
		}
		for i, p := range r.Players {
			fmt.Printf("%d. %s (%d games)\n", i+1, p.Name, len(p.Games))
		}
		return nil
	},
}

var addGameCmd = &cobra.Command{
	Use:   "add-game PLAYER",
	Short: "Record a game for a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := requirePlayer(r, args[0])
		if err != nil {
			return err
		}
		p.AppendGame(roster.GameRecord{
			Date:                gameFlags.date,
			Points:              gameFlags.points,
			Rebounds:            gameFlags.rebounds,
			Assists:             gameFlags.assists,
			Steals:              gameFlags.steals,
			Blocks:              gameFlags.blocks,
			FieldGoalsMade:      gameFlags.fgm,
			FieldGoalsAttempted: gameFlags.fga,
			ThreesMade:          gameFlags.tpm,
			ThreesAttempted:     gameFlags.tpa,
			FreeThrowsMade:      gameFlags.ftm,
			FreeThrowsAttempted: gameFlags.fta,
		})
		if err := codec.Save(r, cfg.DataFile); err != nil {
			return err
		}
		fmt.Printf("Game added for %s (%s).\n", p.Name, gameFlags.date)
		return nil
	},
}

var editGameCmd = &cobra.Command{
	Use:   "edit-game PLAYER N",
	Short: "Edit game number N for a player; only the flags you pass change",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[1])
		if err != nil {
			return err
		}
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := requirePlayer(r, args[0])
		if err != nil {
			return err
		}

		var patch roster.GamePatch
		fl := cmd.Flags()
		if fl.Changed("date") {
			patch.Date = &gameFlags.date
		}
		if fl.Changed("points") {
			patch.Points = &gameFlags.points
		}
		if fl.Changed("rebounds") {
			patch.Rebounds = &gameFlags.rebounds
		}
		if fl.Changed("assists") {
			patch.Assists = &gameFlags.assists
		}
		if fl.Changed("steals") {
			patch.Steals = &gameFlags.steals
		}
		if fl.Changed("blocks") {
			patch.Blocks = &gameFlags.blocks
		}
		if fl.Changed("fgm") {
			patch.FieldGoalsMade = &gameFlags.fgm
		}
		if fl.Changed("fga") {
			patch.FieldGoalsAttempted = &gameFlags.fga
		}
		if fl.Changed("3pm") {
			patch.ThreesMade = &gameFlags.tpm
		}
		if fl.Changed("3pa") {
			patch.ThreesAttempted = &gameFlags.tpa
		}
		if fl.Changed("ftm") {
			patch.FreeThrowsMade = &gameFlags.ftm
		}
		if fl.Changed("fta") {
			patch.FreeThrowsAttempted = &gameFlags.fta
		}

		if err := p.EditGame(pos, patch); err != nil {
			return fmt.Errorf("player %q has no game %d", p.Name, pos)
		}
		if err := codec.Save(r, cfg.DataFile); err != nil {
			return err
		}
		fmt.Printf("Game %d updated for %s.\n", pos, p.Name)
		return nil
	},
}

var deleteGameCmd = &cobra.Command{
	Use:   "delete-game PLAYER N",
	Short: "Delete game number N for a player (requires --yes)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[1])
		if err != nil {
			return err
		}
		if !confirm {
			return fmt.Errorf("refusing to delete without --yes")
		}
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := requirePlayer(r, args[0])
		if err != nil {
			return err
		}
		if err := p.DeleteGame(pos); err != nil {
			return fmt.Errorf("player %q has no game %d", p.Name, pos)
		}
		if err := codec.Save(r, cfg.DataFile); err != nil {
			return err
		}
		fmt.Printf("Game %d deleted for %s.\n", pos, p.Name)
		return nil
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort PLAYER",
	Short: "Reorder a player's games by date or points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := requirePlayer(r, args[0])
		if err != nil {
			return err
		}
		switch sortBy {
		case "date":
			p.SortGamesByDate()
			fmt.Printf("Games sorted by date (oldest first) for %s.\n", p.Name)
		case "points":
			p.SortGamesByPoints()
			fmt.Printf("Games sorted by points (highest first) for %s.\n", p.Name)
		default:
			return fmt.Errorf("unknown sort key %q, want date or points", sortBy)
		}
		return codec.Save(r, cfg.DataFile)
	},
}

var totalsCmd = &cobra.Command{
	Use:   "totals PLAYER",
	Short: "Show career totals and shooting percentages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := requirePlayer(r, args[0])
		if err != nil {
			return err
		}
		if len(p.Games) == 0 {
			fmt.Printf("No games recorded for %s.\n", p.Name)
			return nil
		}
		fmt.Print(report.Totals(p))
		return nil
	},
}

var averagesCmd = &cobra.Command{
	Use:   "averages PLAYER",
	Short: "Show per-game averages and the simplified efficiency rating",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerReport(report.Averages),
}

var bestCmd = &cobra.Command{
	Use:   "best PLAYER",
	Short: "Show the player's best-scoring game(s)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerReport(report.BestGames),
}

var chartCmd = &cobra.Command{
	Use:   "chart PLAYER",
	Short: "Show an ASCII chart of points per game",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerReport(report.PointsChart),
}

// runPlayerReport wraps the reports that need at least one recorded game.
func runPlayerReport(render func(*roster.Player) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := requirePlayer(r, args[0])
		if err != nil {
			return err
		}
		out, err := render(p)
		if errors.Is(err, stats.ErrNoGames) {
			fmt.Printf("No games recorded for %s.\n", p.Name)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}
}

var exportCmd = &cobra.Command{
	Use:   "export PLAYER",
	Short: "Export a player's games to CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		p, err := requirePlayer(r, args[0])
		if err != nil {
			return err
		}
		out := csvOut
		if out == "" {
			out = filepath.Join(cfg.CSVDir, report.CSVFileName(p.Name))
		}
		return exportPlayerCSV(p, out)
	},
}

var exportAllCmd = &cobra.Command{
	Use:   "export-all",
	Short: "Export every player to an individual CSV file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		for _, p := range r.Players {
			out := filepath.Join(cfg.CSVDir, report.CSVFileName(p.Name))
			if err := exportPlayerCSV(p, out); err != nil {
				return err
			}
		}
		return nil
	},
}

func exportPlayerCSV(p *roster.Player, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", path, err)
	}
	if err := report.WriteCSV(f, p); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Printf("Exported %s to %s.\n", p.Name, path)
	return nil
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Quick report: every player with game count, PPG and rating",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRoster()
		if err != nil {
			return err
		}
		if len(r.Players) == 0 {
			fmt.Println("No players yet.")
			return nil
		}
		fmt.Print(report.Summary(r))
		return nil
	},
}
