package roster

// GameRecord is one game's full box-score line for one player. Date is kept
// as a YYYY-MM-DD string so that lexical order equals chronological order;
// a date in any other form still sorts lexically.
type GameRecord struct {
	Date     string
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

// GamePatch carries the fields of a game edit. Nil fields keep the current
// value.
type GamePatch struct {
	Date                *string
	Points              *int
	Rebounds            *int
	Assists             *int
	Steals              *int
	Blocks              *int
	FieldGoalsMade      *int
	FieldGoalsAttempted *int
	ThreesMade          *int
	ThreesAttempted     *int
	FreeThrowsMade      *int
	FreeThrowsAttempted *int
}

// Player is a name plus an ordered sequence of games. The order is
// meaningful: sorts mutate it in place and reports iterate it verbatim.
// Games have no identity beyond their current 1-based position.
type Player struct {
	Name  string
	Games []GameRecord
}

// Roster is the complete, owned collection of all tracked players. It is
// replaced wholesale on load and serialized wholesale on save.
type Roster struct {
	Players []*Player
}
