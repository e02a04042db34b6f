// Package codec persists a roster as a line-oriented text file:
//
//	<playerCount>
//	for each player:
//	  <name>
//	  <gameCount>
//	  for each game:
//	    <date> <pts> <reb> <ast> <stl> <blk> <fgm> <fga> <3pm> <3pa> <ftm> <fta>
//
// Names occupy a whole line and may contain spaces; dates must not, since
// game lines are split on whitespace. Encode and Decode are exact inverses
// for any roster whose names contain no newline and whose dates contain no
// whitespace.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/boxscore/internal/roster"
)

// DecodeError reports where and why a persisted roster failed to parse.
type DecodeError struct {
	Line int
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Encode writes r to w in the persisted text format.
func Encode(w io.Writer, r *roster.Roster) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(r.Players))
	for _, p := range r.Players {
		fmt.Fprintf(bw, "%s\n", p.Name)
		fmt.Fprintf(bw, "%d\n", len(p.Games))
		for _, g := range p.Games {
			fmt.Fprintf(bw, "%s %d %d %d %d %d %d %d %d %d %d %d\n",
				g.Date, g.Points, g.Rebounds, g.Assists, g.Steals, g.Blocks,
				g.FieldGoalsMade, g.FieldGoalsAttempted,
				g.ThreesMade, g.ThreesAttempted,
				g.FreeThrowsMade, g.FreeThrowsAttempted)
		}
	}
	return bw.Flush()
}

// Decode parses the persisted format into a fresh roster in a single pass.
// On any failure it returns a *DecodeError (or the underlying read error)
// and no roster, so a previously loaded roster is never partially
// overwritten.
func Decode(rd io.Reader) (*roster.Roster, error) {
	d := &decoder{sc: bufio.NewScanner(rd)}

	playerCount, err := d.count("player count")
	if err != nil {
		return nil, err
	}

	out := roster.New()
	for i := 0; i < playerCount; i++ {
		name, err := d.next("player name")
		if err != nil {
			return nil, err
		}
		gameCount, err := d.count("game count")
		if err != nil {
			return nil, err
		}
		p := &roster.Player{Name: name}
		if gameCount > 0 {
			p.Games = make([]roster.GameRecord, 0, gameCount)
		}
		for j := 0; j < gameCount; j++ {
			line, err := d.next("game line")
			if err != nil {
				return nil, err
			}
			g, err := parseGameLine(line, d.line)
			if err != nil {
				return nil, err
			}
			p.Games = append(p.Games, g)
		}
		out.Players = append(out.Players, p)
	}
	return out, nil
}

// Load reads the roster persisted at path. The returned roster is fresh;
// callers swap it in only on a nil error.
func Load(path string) (*roster.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	log.Debug("Loaded roster", "path", path, "players", len(r.Players))
	return r, nil
}

// Save writes the roster to path, replacing any previous contents.
func Save(r *roster.Roster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", path, err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	log.Debug("Saved roster", "path", path, "players", len(r.Players))
	return nil
}

// decoder reads one line at a time, tracking the line number for error
// reporting.
type decoder struct {
	sc   *bufio.Scanner
	line int
}

func (d *decoder) next(what string) (string, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return "", err
		}
		return "", &DecodeError{Line: d.line + 1, Msg: "unexpected end of file reading " + what}
	}
	d.line++
	return d.sc.Text(), nil
}

func (d *decoder) count(what string) (int, error) {
	text, err := d.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0, &DecodeError{Line: d.line, Msg: fmt.Sprintf("%s must be a non-negative integer, got %q", what, text)}
	}
	return n, nil
}

// parseGameLine splits a game line on whitespace and coerces the eleven
// numeric fields. Lines need at least twelve fields; trailing extra tokens
// are ignored.
func parseGameLine(line string, lineNo int) (roster.GameRecord, error) {
	fields := strings.Fields(line)
	if len(fields) < 12 {
		return roster.GameRecord{}, &DecodeError{Line: lineNo, Msg: fmt.Sprintf("game line has %d fields, want 12", len(fields))}
	}

	var g roster.GameRecord
	g.Date = fields[0]
	for i, target := range []*int{
		&g.Points, &g.Rebounds, &g.Assists, &g.Steals, &g.Blocks,
		&g.FieldGoalsMade, &g.FieldGoalsAttempted,
		&g.ThreesMade, &g.ThreesAttempted,
		&g.FreeThrowsMade, &g.FreeThrowsAttempted,
	} {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return roster.GameRecord{}, &DecodeError{Line: lineNo, Msg: fmt.Sprintf("field %d: %q is not an integer", i+2, fields[i+1])}
		}
		*target = n
	}
	return g, nil
}
