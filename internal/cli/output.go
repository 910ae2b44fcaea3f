package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameState:
		o.printGameState(v)
	case MoveResult:
		o.printMoveResult(v)
	case RackResponse:
		o.printRack(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Tile response type (matches API)
type Tile struct {
	Letter string `json:"letter"`
	Points int    `json:"points"`
	Blank  bool   `json:"blank,omitempty"`
}

// Position response type
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Word response type
type Word struct {
	Text      string     `json:"text"`
	Positions []Position `json:"positions"`
}

// Completion response type
type Completion struct {
	Reason      string         `json:"reason"`
	FinalScores map[string]int `json:"final_scores"`
	Winner      *string        `json:"winner"`
}

// MoveResult response type
type MoveResult struct {
	Points     int         `json:"points"`
	Words      []Word      `json:"words"`
	Rack       []Tile      `json:"rack"`
	Completion *Completion `json:"completion,omitempty"`
}

// PlayerState response type
type PlayerState struct {
	ID                string `json:"id"`
	Score             int    `json:"score"`
	RackSize          int    `json:"rack_size"`
	ConsecutivePasses int    `json:"consecutive_passes"`
}

// GameState response type
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

// RackResponse response type
type RackResponse struct {
	PlayerID string `json:"player_id"`
	Tiles    []Tile `json:"tiles"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Language: %s\n", g.Language)
	fmt.Printf("Phase: %s\n", g.Phase)
	if g.CurrentPlayer != "" {
		fmt.Printf("Current Player: %s\n", g.CurrentPlayer)
	}
	fmt.Printf("Tiles in Bag: %d\n", g.BagCount)

	fmt.Printf("Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		fmt.Printf("  - %s: %d points, %d tiles on rack\n", p.ID, p.Score, p.RackSize)
	}

	if len(g.Board) > 0 {
		fmt.Println("\nBoard:")
		o.printBoard(g.Board)
	}

	if g.Completion != nil {
		o.printCompletion(*g.Completion)
	}
}

func (o *Output) printBoard(cells [][]string) {
	size := len(cells)

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf("%2d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Printf("%2d |", row)
		for col := 0; col < size; col++ {
			cell := cells[row][col]
			if cell == "" {
				fmt.Print(" . ")
			} else {
				fmt.Printf(" %s ", cell)
			}
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

func (o *Output) printMoveResult(r MoveResult) {
	fmt.Printf("Move scored %d points\n", r.Points)

	for _, w := range r.Words {
		fmt.Printf("  - %s\n", w.Text)
	}

	if len(r.Rack) > 0 {
		fmt.Printf("Rack: %s\n", formatTiles(r.Rack))
	}

	if r.Completion != nil {
		o.printCompletion(*r.Completion)
	}
}

func (o *Output) printCompletion(c Completion) {
	fmt.Println("\nGame complete!")
	fmt.Printf("Reason: %s\n", c.Reason)

	ids := make([]string, 0, len(c.FinalScores))
	for pid := range c.FinalScores {
		ids = append(ids, pid)
	}
	sort.Strings(ids)

	fmt.Println("Final Scores:")
	for _, pid := range ids {
		fmt.Printf("  %s: %d points\n", pid, c.FinalScores[pid])
	}

	if c.Winner != nil {
		fmt.Printf("Winner: %s\n", *c.Winner)
	} else {
		fmt.Println("Result: draw")
	}
}

func (o *Output) printRack(r RackResponse) {
	fmt.Printf("Rack (%s): %s\n", r.PlayerID, formatTiles(r.Tiles))
}

func formatTiles(tiles []Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		if t.Blank {
			parts[i] = fmt.Sprintf("?(%d)", t.Points)
		} else {
			parts[i] = fmt.Sprintf("%s(%d)", t.Letter, t.Points)
		}
	}
	return strings.Join(parts, " ")
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
