package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jabibo/wordbattle-backend-sub001/internal/dependencies/clock"
	"github.com/jabibo/wordbattle-backend-sub001/internal/dependencies/random"
	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/scoring"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/validation"
	"github.com/jabibo/wordbattle-backend-sub001/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller owns the game state machine: phases, turn order, pass
// counting and end-of-game triggers. Moves for one game serialize on
// a per-game mutex; validation and commit happen atomically under it.
type Controller struct {
	storage   storage.Storage
	validator *validation.Service
	scorer    *scoring.Service
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger

	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	validator *validation.Service,
	scorer *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		validator: validator,
		scorer:    scorer,
		clock:     clock,
		random:    random,
		logger:    logger,
		locks:     make(map[model.GameID]*sync.Mutex),
	}
}

// gameLock returns the mutex serializing moves for one game
func (c *Controller) gameLock(id model.GameID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[id] = lock
	}
	return lock
}

// NewGame creates a game for the given players in the given language.
// The board and bag are created once here and only mutate through
// validated moves. The game starts in the waiting phase; racks are
// dealt by StartGame.
func (c *Controller) NewGame(ctx context.Context, lang model.Language, playerIDs []model.PlayerID) (*model.Game, error) {
	if len(playerIDs) < 2 {
		return nil, model.ErrInsufficientPlayers
	}

	dist, err := model.DistributionFor(lang)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	players := make([]*model.GamePlayer, len(playerIDs))
	for i, id := range playerIDs {
		players[i] = &model.GamePlayer{ID: id, Rack: model.NewRack()}
	}

	game := &model.Game{
		ID:        model.GameID(c.random.String(12, gameIDAlphabet)),
		Language:  lang,
		Phase:     model.GamePhaseWaiting,
		Players:   players,
		Board:     model.NewBoard(),
		Bag:       model.NewTileBag(dist, c.random),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("language", string(lang)),
		slog.Int("player_count", len(playerIDs)),
		slog.Int("bag_size", game.Bag.Count()),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// StartGame deals the initial racks and activates the game. This is
// the external waiting-to-active trigger.
func (c *Controller) StartGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	lock := c.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.Phase != model.GamePhaseWaiting {
		return nil, model.ErrGameAlreadyStarted
	}

	for _, p := range game.Players {
		p.Rack.Add(game.Bag.Draw(model.RackSize)...)
	}

	game.Phase = model.GamePhaseActive
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(gameID)),
		slog.String("first_player", string(game.CurrentPlayer().ID)),
	)

	return game, nil
}

// SubmitMove validates and commits one move for the acting player.
// A rejected move mutates nothing and the turn does not advance, so
// the same player may resubmit a corrected move.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, move model.Move) (*model.MoveResult, error) {
	lock := c.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.Phase != model.GamePhaseActive {
		return nil, model.ErrGameNotActive
	}

	player := game.PlayerByID(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}
	if game.CurrentPlayer().ID != playerID {
		return nil, model.ErrNotYourTurn
	}

	var result *model.MoveResult
	switch move.Type {
	case model.MoveTypePlace:
		result, err = c.commitPlace(game, player, move.Placements)
	case model.MoveTypeExchange:
		result, err = c.commitExchange(game, player, move.ExchangeTiles)
	case model.MoveTypePass:
		result = c.commitPass(game, player)
	default:
		return nil, model.ErrUnknownMoveType
	}
	if err != nil {
		return nil, err
	}

	c.checkEndConditions(game, player)

	if game.Phase == model.GamePhaseActive {
		game.AdvanceTurn()
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	result.Rack = rackCopy(player.Rack)
	result.Completion = game.Completion

	c.logger.Info("move committed",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.String("move_type", string(move.Type)),
		slog.Int("points", result.Points),
		slog.Int("words", len(result.Words)),
		slog.String("phase", string(game.Phase)),
	)

	return result, nil
}

// commitPlace validates the placements, then commits board, rack,
// score and refill in one step
func (c *Controller) commitPlace(game *model.Game, player *model.GamePlayer, placements []model.Placement) (*model.MoveResult, error) {
	validated, err := c.validator.Validate(game.Board, player.Rack, game.Language, placements)
	if err != nil {
		return nil, err
	}

	points := c.scorer.Score(game.Board, validated.Words, validated.Placements)

	for _, p := range validated.Placements {
		if err := game.Board.PlaceTile(p.Pos, p.Tile); err != nil {
			// Unreachable after validation; a failure here is a bug
			return nil, err
		}
	}
	if err := player.Rack.RemoveAll(placementTiles(validated.Placements)); err != nil {
		return nil, err
	}

	player.Score += points
	player.Rack.Add(game.Bag.Draw(player.Rack.Missing())...)
	player.ConsecutivePasses = 0
	game.NonScoringTurns = 0

	return &model.MoveResult{Points: points, Words: validated.Words}, nil
}

// commitExchange swaps rack tiles with the bag. Exchanges are
// non-scoring turns: they count toward the all-pass end condition but
// reset the player's own pass streak.
func (c *Controller) commitExchange(game *model.Game, player *model.GamePlayer, tiles []model.Tile) (*model.MoveResult, error) {
	if len(tiles) == 0 {
		return nil, model.ErrEmptyExchange
	}
	if len(tiles) > game.Bag.Count() {
		return nil, model.ErrInsufficientBagSize
	}

	// Take the actual rack tiles so their point values survive the
	// round trip through the bag
	taken, err := player.Rack.TakeAll(tiles)
	if err != nil {
		return nil, err
	}

	drawn, err := game.Bag.Exchange(taken, c.random)
	if err != nil {
		player.Rack.Add(taken...)
		return nil, err
	}
	player.Rack.Add(drawn...)
	player.ConsecutivePasses = 0
	game.NonScoringTurns++

	return &model.MoveResult{}, nil
}

// commitPass advances the pass tallies
func (c *Controller) commitPass(game *model.Game, player *model.GamePlayer) *model.MoveResult {
	player.ConsecutivePasses++
	game.NonScoringTurns++
	return &model.MoveResult{}
}

// checkEndConditions evaluates the end-of-game triggers after every
// committed move, empty-rack before all-pass
func (c *Controller) checkEndConditions(game *model.Game, acting *model.GamePlayer) {
	switch {
	case game.Bag.IsEmpty() && acting.Rack.IsEmpty():
		c.finishGame(game, model.EndReasonEmptyRack, acting)
	case game.NonScoringTurns >= game.PassEndThreshold():
		c.finishGame(game, model.EndReasonAllPass, nil)
	}
}

// finishGame applies the end-of-game score adjustments and records
// the completion summary. For an empty-rack end the emptying player
// gains the sum of everyone else's remaining tiles while each other
// player loses their own; for an all-pass end everyone just loses
// their own remaining tiles.
func (c *Controller) finishGame(game *model.Game, reason model.EndReason, emptier *model.GamePlayer) {
	for _, p := range game.Players {
		if emptier != nil && p.ID == emptier.ID {
			continue
		}
		remaining := p.Rack.PointSum()
		p.Score -= remaining
		if emptier != nil {
			emptier.Score += remaining
		}
	}

	finalScores := make(map[model.PlayerID]int, len(game.Players))
	for _, p := range game.Players {
		finalScores[p.ID] = p.Score
	}

	game.Phase = model.GamePhaseCompleted
	game.Completion = &model.CompletionSummary{
		Reason:      reason,
		FinalScores: finalScores,
		Winner:      determineWinner(game.Players),
	}

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("reason", string(reason)),
		slog.String("winner", string(game.Completion.Winner)),
	)
}

// determineWinner returns the player with the strictly highest final
// score, or empty on a tie
func determineWinner(players []*model.GamePlayer) model.PlayerID {
	if len(players) == 0 {
		return ""
	}

	top := players[0]
	tied := false
	for _, p := range players[1:] {
		switch {
		case p.Score > top.Score:
			top = p
			tied = false
		case p.Score == top.Score:
			tied = true
		}
	}
	if tied {
		return ""
	}
	return top.ID
}

// AbandonGame ends a game prematurely. This is the explicit external
// transition for inactivity; the trigger policy lives outside the
// engine.
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	lock := c.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase == model.GamePhaseCompleted || game.Phase == model.GamePhaseAbandoned {
		return nil // Already finished
	}

	game.Phase = model.GamePhaseAbandoned
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
	)

	return c.storage.SaveGame(ctx, game)
}

// CurrentState returns a read-only snapshot for status queries
func (c *Controller) CurrentState(ctx context.Context, gameID model.GameID) (model.GameSnapshot, error) {
	lock := c.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.GameSnapshot{}, err
	}
	return game.Snapshot(), nil
}

// PlayerRack returns a copy of one player's current rack
func (c *Controller) PlayerRack(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]model.Tile, error) {
	lock := c.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	player := game.PlayerByID(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}
	return rackCopy(player.Rack), nil
}

func placementTiles(placements []model.Placement) []model.Tile {
	tiles := make([]model.Tile, len(placements))
	for i, p := range placements {
		tiles[i] = p.Tile
	}
	return tiles
}

func rackCopy(rack *model.Rack) []model.Tile {
	tiles := make([]model.Tile, len(rack.Tiles))
	copy(tiles, rack.Tiles)
	return tiles
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, lang model.Language, playerIDs []model.PlayerID) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	StartGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SubmitMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, move model.Move) (*model.MoveResult, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	CurrentState(ctx context.Context, gameID model.GameID) (model.GameSnapshot, error)
	PlayerRack(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]model.Tile, error)
}

var _ ControllerInterface = (*Controller)(nil)
