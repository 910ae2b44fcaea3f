package model

import "github.com/jabibo/wordbattle-backend-sub001/internal/dependencies/random"

// TileBag is the shared pool of undrawn tiles for a game.
// All randomness flows through the injected Random so games are
// replayable under a deterministic source.
type TileBag struct {
	Tiles []Tile
}

// NewTileBag builds a full, shuffled bag from a letter distribution
func NewTileBag(dist *LetterDistribution, rnd random.Random) *TileBag {
	bag := &TileBag{Tiles: dist.Tiles()}
	bag.Shuffle(rnd)
	return bag
}

// Count returns the number of tiles left in the bag
func (b *TileBag) Count() int {
	return len(b.Tiles)
}

// IsEmpty returns true if no tiles are left
func (b *TileBag) IsEmpty() bool {
	return len(b.Tiles) == 0
}

// Shuffle randomizes the bag order (Fisher-Yates)
func (b *TileBag) Shuffle(rnd random.Random) {
	for i := len(b.Tiles) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		b.Tiles[i], b.Tiles[j] = b.Tiles[j], b.Tiles[i]
	}
}

// Draw removes and returns up to n tiles from the bag.
// Returns fewer than n if the bag is short; never errors.
func (b *TileBag) Draw(n int) []Tile {
	if n > len(b.Tiles) {
		n = len(b.Tiles)
	}
	if n <= 0 {
		return nil
	}
	drawn := make([]Tile, n)
	copy(drawn, b.Tiles[len(b.Tiles)-n:])
	b.Tiles = b.Tiles[:len(b.Tiles)-n]
	return drawn
}

// Return re-inserts tiles at the bottom of the bag. Draw pops from
// the top, so returned tiles cannot be drawn again in the same
// exchange as long as the bag held enough tiles beforehand.
func (b *TileBag) Return(tiles []Tile) {
	returned := make([]Tile, len(tiles))
	copy(returned, tiles)
	for i := range returned {
		// A blank loses its assignment when it goes back in the bag
		returned[i].AssignedLetter = 0
	}
	b.Tiles = append(returned, b.Tiles...)
}

// Exchange swaps the given tiles for an equal number drawn from the
// bag. The bag must hold at least as many tiles as are being
// exchanged, so the player never redraws a tile they just returned.
// Tile conservation nets to zero within the call.
func (b *TileBag) Exchange(tiles []Tile, rnd random.Random) ([]Tile, error) {
	if len(tiles) > len(b.Tiles) {
		return nil, ErrInsufficientBagSize
	}
	b.Return(tiles)
	drawn := b.Draw(len(tiles))
	b.Shuffle(rnd)
	return drawn, nil
}
