package model

import "time"

// GameID uniquely identifies a game
type GameID string

// PlayerID uniquely identifies a player across the system
type PlayerID string

// GamePhase represents the current phase of a game.
// The phase is monotonic except for the external abandon transition.
type GamePhase string

const (
	GamePhaseWaiting   GamePhase = "waiting_for_players"
	GamePhaseActive    GamePhase = "active"
	GamePhaseCompleted GamePhase = "completed"
	GamePhaseAbandoned GamePhase = "abandoned"
)

// GamePlayer is one participant's in-game state
type GamePlayer struct {
	ID    PlayerID
	Score int // may go negative after end-of-game penalties
	Rack  *Rack

	// ConsecutivePasses counts this player's passes since their last
	// non-pass move
	ConsecutivePasses int
}

// Game is the aggregate for a single match: board, bag, players and
// turn state. One game never shares mutable state with another.
type Game struct {
	ID       GameID
	Language Language
	Phase    GamePhase

	Players []*GamePlayer
	TurnIdx int // index into Players of the player to move

	Board *Board
	Bag   *TileBag

	// NonScoringTurns is the game-wide tally of consecutive passes
	// and exchanges; a scoring place move resets it
	NonScoringTurns int

	Completion *CompletionSummary

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *GamePlayer {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.TurnIdx]
}

// PlayerByID finds a participant by ID, or nil
func (g *Game) PlayerByID(id PlayerID) *GamePlayer {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AdvanceTurn rotates to the next player
func (g *Game) AdvanceTurn() {
	g.TurnIdx = (g.TurnIdx + 1) % len(g.Players)
}

// PassEndThreshold is the game-wide non-scoring-turn count that ends
// the game: three full rounds of passes/exchanges
func (g *Game) PassEndThreshold() int {
	return len(g.Players) * 3
}

// TileCount returns the total number of tiles across bag, racks and
// board. For a reachable state this equals the distribution's
// TotalTiles (the conservation law).
func (g *Game) TileCount() int {
	count := g.Bag.Count() + g.Board.NumTiles
	for _, p := range g.Players {
		count += p.Rack.Count()
	}
	return count
}

// PlayerSnapshot is a read-only view of one participant
type PlayerSnapshot struct {
	ID                PlayerID
	Score             int
	RackSize          int
	ConsecutivePasses int
}

// GameSnapshot is a read-only view of a game for status queries
type GameSnapshot struct {
	ID            GameID
	Language      Language
	Phase         GamePhase
	CurrentPlayer PlayerID
	Players       []PlayerSnapshot
	BagCount      int
	Board         [][]string
	Completion    *CompletionSummary
	UpdatedAt     time.Time
}

// Snapshot captures the game's externally visible state
func (g *Game) Snapshot() GameSnapshot {
	players := make([]PlayerSnapshot, len(g.Players))
	for i, p := range g.Players {
		players[i] = PlayerSnapshot{
			ID:                p.ID,
			Score:             p.Score,
			RackSize:          p.Rack.Count(),
			ConsecutivePasses: p.ConsecutivePasses,
		}
	}
	snap := GameSnapshot{
		ID:         g.ID,
		Language:   g.Language,
		Phase:      g.Phase,
		Players:    players,
		BagCount:   g.Bag.Count(),
		Board:      g.Board.Occupancy(),
		Completion: g.Completion,
		UpdatedAt:  g.UpdatedAt,
	}
	if g.Phase == GamePhaseActive {
		snap.CurrentPlayer = g.CurrentPlayer().ID
	}
	return snap
}
