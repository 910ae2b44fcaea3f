package storage

import (
	"context"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
)

// Storage defines the interface for data persistence.
// Implementations must be safe for concurrent use; serialization of
// moves within one game is the game controller's responsibility.
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGamesForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.GameID, error)

	// Dictionary operations, keyed by language
	GetDictionaryWords(ctx context.Context, lang model.Language) ([]string, error)
	SaveDictionaryWords(ctx context.Context, lang model.Language, words []string) error
}
