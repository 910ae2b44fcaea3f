package model

// RackSize is the maximum number of tiles a player holds
const RackSize = 7

// Rack is a player's current hand of tiles. Order is irrelevant,
// but insertion order is preserved for display purposes.
type Rack struct {
	Tiles []Tile
}

// NewRack creates an empty rack
func NewRack() *Rack {
	return &Rack{Tiles: make([]Tile, 0, RackSize)}
}

// Count returns the number of tiles currently in the rack
func (r *Rack) Count() int {
	return len(r.Tiles)
}

// IsEmpty returns true if the rack holds no tiles
func (r *Rack) IsEmpty() bool {
	return len(r.Tiles) == 0
}

// Missing returns how many tiles are needed to fill the rack
func (r *Rack) Missing() int {
	return RackSize - len(r.Tiles)
}

// Add appends tiles to the rack
func (r *Rack) Add(tiles ...Tile) {
	r.Tiles = append(r.Tiles, tiles...)
}

// index finds the first rack slot holding a tile of the same kind,
// or -1 if none
func (r *Rack) index(tile Tile) int {
	for i, t := range r.Tiles {
		if t.SameKind(tile) {
			return i
		}
	}
	return -1
}

// Contains reports whether the rack holds a tile of the same kind
func (r *Rack) Contains(tile Tile) bool {
	return r.index(tile) >= 0
}

// ContainsAll reports whether the rack holds tiles of the same kind as
// every tile in the given list, counting duplicates
func (r *Rack) ContainsAll(tiles []Tile) bool {
	scratch := make([]Tile, len(r.Tiles))
	copy(scratch, r.Tiles)
	probe := Rack{Tiles: scratch}
	for _, t := range tiles {
		if err := probe.Remove(t); err != nil {
			return false
		}
	}
	return true
}

// Remove takes one tile of the same kind out of the rack
func (r *Rack) Remove(tile Tile) error {
	i := r.index(tile)
	if i < 0 {
		return ErrTileNotInRack
	}
	// Keep order when deleting so players see a stable rack
	r.Tiles = append(r.Tiles[:i], r.Tiles[i+1:]...)
	return nil
}

// RemoveAll takes one tile of the same kind per entry out of the rack.
// The rack is unchanged if any tile is missing.
func (r *Rack) RemoveAll(tiles []Tile) error {
	if !r.ContainsAll(tiles) {
		return ErrTileNotInRack
	}
	for _, t := range tiles {
		_ = r.Remove(t)
	}
	return nil
}

// TakeAll removes one tile of the same kind per entry and returns the
// actual rack tiles, preserving their point values. The rack is
// unchanged if any tile is missing.
func (r *Rack) TakeAll(tiles []Tile) ([]Tile, error) {
	if !r.ContainsAll(tiles) {
		return nil, ErrTileNotInRack
	}
	taken := make([]Tile, 0, len(tiles))
	for _, want := range tiles {
		i := r.index(want)
		taken = append(taken, r.Tiles[i])
		r.Tiles = append(r.Tiles[:i], r.Tiles[i+1:]...)
	}
	return taken, nil
}

// PointSum returns the combined point value of the rack's tiles.
// Used for end-of-game score adjustments.
func (r *Rack) PointSum() int {
	sum := 0
	for _, t := range r.Tiles {
		sum += t.Points
	}
	return sum
}

// Letters returns the face letters of the rack's tiles,
// with '?' for blanks
func (r *Rack) Letters() []rune {
	letters := make([]rune, len(r.Tiles))
	for i, t := range r.Tiles {
		letters[i] = t.Letter
	}
	return letters
}
