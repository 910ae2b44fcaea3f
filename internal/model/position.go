package model

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Direction is the axis of a placement line
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Above returns the position one row up
func (p Position) Above() Position {
	return Position{Row: p.Row - 1, Col: p.Col}
}

// Below returns the position one row down
func (p Position) Below() Position {
	return Position{Row: p.Row + 1, Col: p.Col}
}

// Left returns the position one column to the left
func (p Position) Left() Position {
	return Position{Row: p.Row, Col: p.Col - 1}
}

// Right returns the position one column to the right
func (p Position) Right() Position {
	return Position{Row: p.Row, Col: p.Col + 1}
}

// Next returns the neighbouring position along the given direction
func (p Position) Next(dir Direction) Position {
	if dir == Horizontal {
		return p.Right()
	}
	return p.Below()
}

// Prev returns the neighbouring position against the given direction
func (p Position) Prev(dir Direction) Position {
	if dir == Horizontal {
		return p.Left()
	}
	return p.Above()
}

// Neighbours returns the four orthogonally adjacent positions,
// including ones that may be off the board
func (p Position) Neighbours() [4]Position {
	return [4]Position{p.Above(), p.Left(), p.Right(), p.Below()}
}
