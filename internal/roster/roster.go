package roster

import "errors"

var (
	// ErrEmptyName is returned when adding a player without a name.
	ErrEmptyName = errors.New("player name cannot be empty")
	// ErrAlreadyExists is returned together with the existing player when a
	// duplicate name is added.
	ErrAlreadyExists = errors.New("player already exists")
	// ErrOutOfRange is returned when a 1-based position is outside the
	// current collection. The operation leaves the collection unchanged.
	ErrOutOfRange = errors.New("position out of range")
)

// New returns an empty roster.
func New() *Roster {
	return &Roster{}
}

// AddPlayer appends a new player with the given name. If a player with that
// name already exists, the existing player is returned alongside
// ErrAlreadyExists instead of creating a second entry.
func (r *Roster) AddPlayer(name string) (*Player, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	for _, p := range r.Players {
		if p.Name == name {
			return p, ErrAlreadyExists
		}
	}
	p := &Player{Name: name}
	r.Players = append(r.Players, p)
	return p, nil
}

// Player returns the player at the given 1-based position.
func (r *Roster) Player(pos int) (*Player, error) {
	if pos < 1 || pos > len(r.Players) {
		return nil, ErrOutOfRange
	}
	return r.Players[pos-1], nil
}

// FindByName returns the player with the given name, if any.
func (r *Roster) FindByName(name string) (*Player, bool) {
	for _, p := range r.Players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// AppendGame adds g to the end of the player's games, applying the
// made-shot clamp.
func (p *Player) AppendGame(g GameRecord) {
	clampMadeShots(&g)
	p.Games = append(p.Games, g)
}

// EditGame applies the non-nil fields of patch to the game at the given
// 1-based position, then re-applies the made-shot clamp.
func (p *Player) EditGame(pos int, patch GamePatch) error {
	if pos < 1 || pos > len(p.Games) {
		return ErrOutOfRange
	}
	g := &p.Games[pos-1]
	if patch.Date != nil {
		g.Date = *patch.Date
	}
	if patch.Points != nil {
		g.Points = *patch.Points
	}
	if patch.Rebounds != nil {
		g.Rebounds = *patch.Rebounds
	}
	if patch.Assists != nil {
		g.Assists = *patch.Assists
	}
	if patch.Steals != nil {
		g.Steals = *patch.Steals
	}
	if patch.Blocks != nil {
		g.Blocks = *patch.Blocks
	}
	if patch.FieldGoalsMade != nil {
		g.FieldGoalsMade = *patch.FieldGoalsMade
	}
	if patch.FieldGoalsAttempted != nil {
		g.FieldGoalsAttempted = *patch.FieldGoalsAttempted
	}
	if patch.ThreesMade != nil {
		g.ThreesMade = *patch.ThreesMade
	}
	if patch.ThreesAttempted != nil {
		g.ThreesAttempted = *patch.ThreesAttempted
	}
	if patch.FreeThrowsMade != nil {
		g.FreeThrowsMade = *patch.FreeThrowsMade
	}
	if patch.FreeThrowsAttempted != nil {
		g.FreeThrowsAttempted = *patch.FreeThrowsAttempted
	}
	clampMadeShots(g)
	return nil
}

// DeleteGame removes the game at the given 1-based position. Later games
// shift down by one.
func (p *Player) DeleteGame(pos int) error {
	if pos < 1 || pos > len(p.Games) {
		return ErrOutOfRange
	}
	p.Games = append(p.Games[:pos-1], p.Games[pos:]...)
	return nil
}

// clampMadeShots raises FieldGoalsMade to at least ThreesMade: every made
// three is also a made field goal. Made vs attempted counts are
// intentionally left unchecked.
func clampMadeShots(g *GameRecord) {
	if g.ThreesMade > g.FieldGoalsMade {
		g.FieldGoalsMade = g.ThreesMade
	}
}
