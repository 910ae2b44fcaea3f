package model

import (
	"strings"
	"unicode"
)

// BoardSize is the grid dimension of the board
const BoardSize = 15

// Center is the cell the first move must cover
var Center = Position{Row: 7, Col: 7}

// PremiumType classifies a cell's score multiplier
type PremiumType int

const (
	PremiumNone PremiumType = iota
	PremiumDoubleLetter
	PremiumTripleLetter
	PremiumDoubleWord
	PremiumTripleWord
)

// LetterMultiplier returns the letter-score factor of the premium
func (p PremiumType) LetterMultiplier() int {
	switch p {
	case PremiumDoubleLetter:
		return 2
	case PremiumTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the word-score factor of the premium
func (p PremiumType) WordMultiplier() int {
	switch p {
	case PremiumDoubleWord:
		return 2
	case PremiumTripleWord:
		return 3
	default:
		return 1
	}
}

// premiumLayout is the standard board as a string grid.
// T/t = triple word/letter, D/d = double word/letter, . = plain.
// The center (7,7) is a double-word cell.
var premiumLayout = [BoardSize]string{
	"T..d...T...d..T",
	".D...t...t...D.",
	"..D...d.d...D..",
	"d..D...d...D..d",
	"....D.....D....",
	".t...t...t...t.",
	"..d...d.d...d..",
	"T..d...D...d..T",
	"..d...d.d...d..",
	".t...t...t...t.",
	"....D.....D....",
	"d..D...d...D..d",
	"..D...d.d...D..",
	".D...t...t...D.",
	"T..d...T...d..T",
}

func premiumFromRune(r rune) PremiumType {
	switch r {
	case 'd':
		return PremiumDoubleLetter
	case 't':
		return PremiumTripleLetter
	case 'D':
		return PremiumDoubleWord
	case 'T':
		return PremiumTripleWord
	default:
		return PremiumNone
	}
}

// Cell is one board square: a fixed premium classification plus an
// optional occupying tile. An occupant, once set, is never replaced.
type Cell struct {
	Premium PremiumType
	Tile    *Tile
}

// Board is the 15x15 shared grid of a game
type Board struct {
	Cells    [][]Cell
	NumTiles int
}

// NewBoard creates an empty board with the standard premium layout
func NewBoard() *Board {
	cells := make([][]Cell, BoardSize)
	for row := range cells {
		cells[row] = make([]Cell, BoardSize)
		for col, r := range premiumLayout[row] {
			cells[row][col].Premium = premiumFromRune(r)
		}
	}
	return &Board{Cells: cells}
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

// OccupantAt returns the tile at the given position, or nil if the
// cell is empty or out of bounds
func (b *Board) OccupantAt(pos Position) *Tile {
	if !b.IsValidPosition(pos) {
		return nil
	}
	return b.Cells[pos.Row][pos.Col].Tile
}

// PremiumAt returns the premium classification of the given position
func (b *Board) PremiumAt(pos Position) PremiumType {
	if !b.IsValidPosition(pos) {
		return PremiumNone
	}
	return b.Cells[pos.Row][pos.Col].Premium
}

// IsEmptyCell returns true if the position is in bounds and unoccupied
func (b *Board) IsEmptyCell(pos Position) bool {
	return b.IsValidPosition(pos) && b.Cells[pos.Row][pos.Col].Tile == nil
}

// IsEmpty returns true if no tile has been placed yet
func (b *Board) IsEmpty() bool {
	return b.NumTiles == 0
}

// PlaceTile sets the occupant of a cell. It enforces the single
// structural invariant: an occupied cell is never overwritten.
func (b *Board) PlaceTile(pos Position, tile Tile) error {
	if !b.IsValidPosition(pos) {
		return ErrInvalidPosition
	}
	if b.Cells[pos.Row][pos.Col].Tile != nil {
		return ErrCellOccupied
	}
	t := tile
	b.Cells[pos.Row][pos.Col].Tile = &t
	b.NumTiles++
	return nil
}

// HasAdjacentTile returns true if any orthogonally adjacent cell
// is occupied
func (b *Board) HasAdjacentTile(pos Position) bool {
	for _, n := range pos.Neighbours() {
		if b.OccupantAt(n) != nil {
			return true
		}
	}
	return false
}

// Occupancy returns the board as a grid of resolved letters,
// with empty strings for empty cells
func (b *Board) Occupancy() [][]string {
	grid := make([][]string, BoardSize)
	for row := range grid {
		grid[row] = make([]string, BoardSize)
		for col := range grid[row] {
			if t := b.Cells[row][col].Tile; t != nil {
				grid[row][col] = string(t.Resolved())
			}
		}
	}
	return grid
}

// String renders the board for logs and CLI output.
// Empty cells are dots, blanks show their assigned letter in lowercase.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			t := b.Cells[row][col].Tile
			switch {
			case t == nil:
				sb.WriteRune('.')
			case t.IsBlank:
				sb.WriteRune(unicode.ToLower(t.AssignedLetter))
			default:
				sb.WriteRune(t.Letter)
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
