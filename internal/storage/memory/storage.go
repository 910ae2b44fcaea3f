package memory

import (
	"context"
	"sync"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
	"github.com/jabibo/wordbattle-backend-sub001/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games           map[model.GameID]*model.Game
	playerGames     map[model.PlayerID][]model.GameID
	dictionaryWords map[model.Language][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:           make(map[model.GameID]*model.Game),
		playerGames:     make(map[model.PlayerID][]model.GameID),
		dictionaryWords: make(map[model.Language][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID]; !exists {
		for _, p := range game.Players {
			s.playerGames[p.ID] = append(s.playerGames[p.ID], game.ID)
		}
	}
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[id]
	if !ok {
		return nil
	}
	for _, p := range game.Players {
		ids := s.playerGames[p.ID]
		for i, gid := range ids {
			if gid == id {
				s.playerGames[p.ID] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
	delete(s.games, id)
	return nil
}

func (s *Storage) ListGamesForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.GameID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.playerGames[playerID]
	result := make([]model.GameID, len(ids))
	copy(result, ids)
	return result, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, lang model.Language) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.dictionaryWords[lang]
	if !ok {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(words))
	copy(result, words)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, lang model.Language, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(words))
	copy(stored, words)
	s.dictionaryWords[lang] = stored
	return nil
}
