package redis

import (
	"fmt"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordbattle"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesForPlayerKey returns the Redis key for the SET of a player's games
func gamesForPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:games_for_player:%s", keyPrefix, playerID)
}

// dictionaryKey returns the Redis key for a language's word set
func dictionaryKey(lang model.Language) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, lang)
}
