package response

import (
	"time"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
)

// Tile represents one rack tile in API responses
type Tile struct {
	Letter string `json:"letter"`
	Points int    `json:"points"`
	Blank  bool   `json:"blank,omitempty"`
}

// TileFromModel converts a model.Tile
func TileFromModel(t model.Tile) Tile {
	return Tile{
		Letter: string(t.Letter),
		Points: t.Points,
		Blank:  t.IsBlank,
	}
}

// TilesFromModel converts a tile slice
func TilesFromModel(tiles []model.Tile) []Tile {
	result := make([]Tile, len(tiles))
	for i, t := range tiles {
		result[i] = TileFromModel(t)
	}
	return result
}

// Position is a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Word is a word formed by a move
type Word struct {
	Text      string     `json:"text"`
	Positions []Position `json:"positions"`
}

// WordFromModel converts a model.Word
func WordFromModel(w model.Word) Word {
	positions := make([]Position, len(w.Positions))
	for i, p := range w.Positions {
		positions[i] = Position{Row: p.Row, Col: p.Col}
	}
	return Word{Text: w.Text, Positions: positions}
}

// Completion is the final outcome of a completed game
type Completion struct {
	Reason      string         `json:"reason"`
	FinalScores map[string]int `json:"final_scores"`
	Winner      *string        `json:"winner"`
}

// CompletionFromModel converts a model.CompletionSummary
func CompletionFromModel(c *model.CompletionSummary) *Completion {
	if c == nil {
		return nil
	}
	scores := make(map[string]int, len(c.FinalScores))
	for pid, score := range c.FinalScores {
		scores[string(pid)] = score
	}
	var winner *string
	if c.Winner != "" {
		w := string(c.Winner)
		winner = &w
	}
	return &Completion{
		Reason:      string(c.Reason),
		FinalScores: scores,
		Winner:      winner,
	}
}

// MoveResult reports a committed move
type MoveResult struct {
	Points     int         `json:"points"`
	Words      []Word      `json:"words"`
	Rack       []Tile      `json:"rack"`
	Completion *Completion `json:"completion,omitempty"`
}

// MoveResultFromModel converts a model.MoveResult
func MoveResultFromModel(r *model.MoveResult) MoveResult {
	words := make([]Word, len(r.Words))
	for i, w := range r.Words {
		words[i] = WordFromModel(w)
	}
	return MoveResult{
		Points:     r.Points,
		Words:      words,
		Rack:       TilesFromModel(r.Rack),
		Completion: CompletionFromModel(r.Completion),
	}
}

// PlayerState is a read-only view of one participant
type PlayerState struct {
	ID                string `json:"id"`
	Score             int    `json:"score"`
	RackSize          int    `json:"rack_size"`
	ConsecutivePasses int    `json:"consecutive_passes"`
}

// GameState is the read-only game snapshot for status queries
type GameState struct {
	ID            string        `json:"id"`
	Language      string        `json:"language"`
	Phase         string        `json:"phase"`
	CurrentPlayer string        `json:"current_player,omitempty"`
	Players       []PlayerState `json:"players"`
	BagCount      int           `json:"bag_count"`
	Board         [][]string    `json:"board"`
	Completion    *Completion   `json:"completion,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// GameStateFromSnapshot converts a model.GameSnapshot
func GameStateFromSnapshot(s model.GameSnapshot) GameState {
	players := make([]PlayerState, len(s.Players))
	for i, p := range s.Players {
		players[i] = PlayerState{
			ID:                string(p.ID),
			Score:             p.Score,
			RackSize:          p.RackSize,
			ConsecutivePasses: p.ConsecutivePasses,
		}
	}
	return GameState{
		ID:            string(s.ID),
		Language:      string(s.Language),
		Phase:         string(s.Phase),
		CurrentPlayer: string(s.CurrentPlayer),
		Players:       players,
		BagCount:      s.BagCount,
		Board:         s.Board,
		Completion:    CompletionFromModel(s.Completion),
		UpdatedAt:     s.UpdatedAt,
	}
}

// RackResponse is one player's current rack
type RackResponse struct {
	PlayerID string `json:"player_id"`
	Tiles    []Tile `json:"tiles"`
}
