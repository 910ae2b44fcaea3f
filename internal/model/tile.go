package model

// BlankLetter marks a blank tile in a rack or bag
const BlankLetter = '?'

// Tile is a single letter tile from the bag.
// A blank tile has Letter '?' and zero points; when placed on the board
// it carries the letter it stands for in AssignedLetter.
type Tile struct {
	Letter         rune
	Points         int
	IsBlank        bool
	AssignedLetter rune // only set for a placed blank
}

// NewTile creates a regular letter tile
func NewTile(letter rune, points int) Tile {
	return Tile{Letter: letter, Points: points}
}

// NewBlankTile creates an unassigned blank tile
func NewBlankTile() Tile {
	return Tile{Letter: BlankLetter, IsBlank: true}
}

// Resolved returns the letter this tile contributes to a word:
// the assigned letter for blanks, the face letter otherwise
func (t Tile) Resolved() rune {
	if t.IsBlank {
		return t.AssignedLetter
	}
	return t.Letter
}

// SameKind reports whether two tiles are interchangeable for rack
// accounting: blanks match blanks, letter tiles match by face letter
func (t Tile) SameKind(other Tile) bool {
	if t.IsBlank != other.IsBlank {
		return false
	}
	if t.IsBlank {
		return true
	}
	return t.Letter == other.Letter
}
