package model

// MoveType discriminates the move variants
type MoveType string

const (
	MoveTypePlace    MoveType = "place"
	MoveTypePass     MoveType = "pass"
	MoveTypeExchange MoveType = "exchange"
)

// Placement is one tile laid on one cell
type Placement struct {
	Pos  Position
	Tile Tile
}

// Move is a player's action for one turn: place tiles, pass, or
// exchange rack tiles with the bag
type Move struct {
	Type MoveType

	// Placements is set for place moves
	Placements []Placement

	// ExchangeTiles is set for exchange moves; tiles are identified
	// by kind (letter, or blank)
	ExchangeTiles []Tile
}

// PlaceMove builds a place move
func PlaceMove(placements ...Placement) Move {
	return Move{Type: MoveTypePlace, Placements: placements}
}

// PassMove builds a pass move
func PassMove() Move {
	return Move{Type: MoveTypePass}
}

// ExchangeMove builds an exchange move
func ExchangeMove(tiles ...Tile) Move {
	return Move{Type: MoveTypeExchange, ExchangeTiles: tiles}
}

// Word is a word formed on the board, derived from cell contents.
// Blanks contribute their assigned letter to the text.
type Word struct {
	Positions []Position
	Text      string
}

// EndReason names the condition that completed a game
type EndReason string

const (
	EndReasonEmptyRack EndReason = "empty_rack"
	EndReasonAllPass   EndReason = "all_pass"
)

// CompletionSummary is the final outcome of a completed game
type CompletionSummary struct {
	Reason      EndReason
	FinalScores map[PlayerID]int

	// Winner is the player with the strictly highest adjusted score,
	// or empty on a tie
	Winner PlayerID
}

// MoveResult reports the outcome of a committed move
type MoveResult struct {
	Points int
	Words  []Word

	// Rack is the acting player's rack after refill
	Rack []Tile

	// Completion is set when the move ended the game
	Completion *CompletionSummary
}
