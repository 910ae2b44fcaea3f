package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
	"github.com/jabibo/wordbattle-backend-sub001/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Game aggregates are stored as JSON values; the per-player index is
// a Redis set.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	// Pipeline the value write and the per-player index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL)
	for _, p := range game.Players {
		pipe.SAdd(ctx, gamesForPlayerKey(p.ID), string(game.ID))
		if s.cfg.GameTTL > 0 {
			pipe.Expire(ctx, gamesForPlayerKey(p.ID), s.cfg.GameTTL)
		}
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	game, err := s.GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, gameKey(id))
	for _, p := range game.Players {
		pipe.SRem(ctx, gamesForPlayerKey(p.ID), string(id))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListGamesForPlayer(ctx context.Context, playerID model.PlayerID) ([]model.GameID, error) {
	members, err := s.client.SMembers(ctx, gamesForPlayerKey(playerID)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]model.GameID, len(members))
	for i, m := range members {
		ids[i] = model.GameID(m)
	}
	return ids, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, lang model.Language) ([]string, error) {
	words, err := s.client.SMembers(ctx, dictionaryKey(lang)).Result()
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}
	return words, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, lang model.Language, words []string) error {
	if len(words) == 0 {
		return nil
	}

	members := make([]interface{}, len(words))
	for i, w := range words {
		members[i] = w
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, dictionaryKey(lang))
	pipe.SAdd(ctx, dictionaryKey(lang), members...)
	_, err := pipe.Exec(ctx)
	return err
}
