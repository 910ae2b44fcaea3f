package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Game lifecycle errors
	ErrGameNotFound        = errors.New("game not found")
	ErrGameNotActive       = errors.New("game is not active")
	ErrGameAlreadyStarted  = errors.New("game has already started")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNotYourTurn         = errors.New("not this player's turn")
	ErrUnknownLanguage     = errors.New("unknown language")

	// Move legality errors
	ErrEmptyPlacement      = errors.New("placement must contain at least one tile")
	ErrEmptyExchange       = errors.New("exchange must name at least one tile")
	ErrUnknownMoveType     = errors.New("unknown move type")
	ErrTileNotInRack       = errors.New("tile not in rack")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrNotInLine           = errors.New("placements must share a single row or column")
	ErrGapInPlacement      = errors.New("placements leave a gap in the word")
	ErrMustCoverCenter     = errors.New("first move must cover the center cell")
	ErrNotConnected        = errors.New("placement does not connect to existing tiles")
	ErrInvalidPosition     = errors.New("invalid board position")
	ErrInvalidLetter       = errors.New("invalid letter")
	ErrInsufficientBagSize = errors.New("not enough tiles in the bag to exchange")

	// ErrInvalidWord is the sentinel matched by errors.Is for any
	// InvalidWordError
	ErrInvalidWord = errors.New("word not in dictionary")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// InvalidWordError rejects a move and names the first offending word,
// in deterministic discovery order
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("word %q is not in the dictionary", e.Word)
}

func (e *InvalidWordError) Unwrap() error {
	return ErrInvalidWord
}
