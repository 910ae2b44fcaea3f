package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jabibo/wordbattle-backend-sub001/internal/dependencies/mocks"
	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/dictionary"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/scoring"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/validation"
	"github.com/jabibo/wordbattle-backend-sub001/internal/storage/memory"
	"github.com/jabibo/wordbattle-backend-sub001/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage     *memory.Storage
	dictService *dictionary.Service
	validator   *validation.Service
	scorer      *scoring.Service
	clock       *mocks.MockClock
	random      *mocks.MockRandom
	controller  *Controller
	ctx         context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.dictService = dictionary.New(s.storage)
	s.validator = validation.New(s.dictService)
	s.scorer = scoring.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.validator, s.scorer, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()

	s.dictService.LoadWords(model.LanguageEnglish,
		[]string{"cat", "cats", "at", "to", "dog", "co", "ag"})
}

// tiles builds rack tiles from a letter string using English point
// values, with '?' for blanks
func (s *ControllerSuite) tiles(letters string) []model.Tile {
	dist, err := model.DistributionFor(model.LanguageEnglish)
	s.Require().NoError(err)

	result := make([]model.Tile, 0, len(letters))
	for _, l := range letters {
		if l == model.BlankLetter {
			result = append(result, model.NewBlankTile())
			continue
		}
		result = append(result, model.NewTile(l, dist.Points(l)))
	}
	return result
}

// activeGame saves a crafted in-progress game so tests control racks
// and bag contents exactly
func (s *ControllerSuite) activeGame(id model.GameID, bagLetters string, players ...*model.GamePlayer) *model.Game {
	game := &model.Game{
		ID:        id,
		Language:  model.LanguageEnglish,
		Phase:     model.GamePhaseActive,
		Players:   players,
		Board:     model.NewBoard(),
		Bag:       &model.TileBag{Tiles: s.tiles(bagLetters)},
		CreatedAt: s.clock.Now(),
		UpdatedAt: s.clock.Now(),
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game
}

func (s *ControllerSuite) player(id model.PlayerID, rackLetters string) *model.GamePlayer {
	rack := model.NewRack()
	rack.Add(s.tiles(rackLetters)...)
	return &model.GamePlayer{ID: id, Rack: rack}
}

func (s *ControllerSuite) place(row, col int, letter rune) model.Placement {
	dist, err := model.DistributionFor(model.LanguageEnglish)
	s.Require().NoError(err)
	return model.Placement{
		Pos:  model.Position{Row: row, Col: col},
		Tile: model.NewTile(letter, dist.Points(letter)),
	}
}

// NewGame / StartGame

func (s *ControllerSuite) TestNewGameSucceeds() {
	s.random.QueueString("GAME12345678")

	game, err := s.controller.NewGame(s.ctx, model.LanguageEnglish, []model.PlayerID{"alice", "bob"})
	s.Require().NoError(err)

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal(model.GamePhaseWaiting, game.Phase)
	s.Equal(100, game.Bag.Count())
	s.Require().Len(game.Players, 2)
	for _, p := range game.Players {
		s.True(p.Rack.IsEmpty())
		s.Equal(0, p.Score)
	}
	s.Equal(s.clock.Now(), game.CreatedAt)
}

func (s *ControllerSuite) TestNewGameRequiresTwoPlayers() {
	_, err := s.controller.NewGame(s.ctx, model.LanguageEnglish, []model.PlayerID{"alice"})
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *ControllerSuite) TestNewGameUnknownLanguage() {
	_, err := s.controller.NewGame(s.ctx, "fr", []model.PlayerID{"alice", "bob"})
	s.ErrorIs(err, model.ErrUnknownLanguage)
}

func (s *ControllerSuite) TestNewGameIsPersisted() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.NewGame(s.ctx, model.LanguageEnglish, []model.PlayerID{"alice", "bob"})
	s.Require().NoError(err)

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
}

func (s *ControllerSuite) TestStartGameDealsRacks() {
	s.random.QueueString("GAME12345678")
	created, err := s.controller.NewGame(s.ctx, model.LanguageEnglish, []model.PlayerID{"alice", "bob"})
	s.Require().NoError(err)

	game, err := s.controller.StartGame(s.ctx, created.ID)
	s.Require().NoError(err)

	s.Equal(model.GamePhaseActive, game.Phase)
	s.Equal(100-2*model.RackSize, game.Bag.Count())
	for _, p := range game.Players {
		s.Equal(model.RackSize, p.Rack.Count())
	}
	s.Equal(model.PlayerID("alice"), game.CurrentPlayer().ID)
}

func (s *ControllerSuite) TestStartGameTwiceFails() {
	s.random.QueueString("GAME12345678")
	created, _ := s.controller.NewGame(s.ctx, model.LanguageEnglish, []model.PlayerID{"alice", "bob"})
	_, err := s.controller.StartGame(s.ctx, created.ID)
	s.Require().NoError(err)

	_, err = s.controller.StartGame(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrGameAlreadyStarted)
}

func (s *ControllerSuite) TestStartGameNotFound() {
	_, err := s.controller.StartGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// SubmitMove guards

func (s *ControllerSuite) TestSubmitMoveBeforeStart() {
	s.random.QueueString("GAME12345678")
	created, _ := s.controller.NewGame(s.ctx, model.LanguageEnglish, []model.PlayerID{"alice", "bob"})

	_, err := s.controller.SubmitMove(s.ctx, created.ID, "alice", model.PassMove())
	s.ErrorIs(err, model.ErrGameNotActive)
}

func (s *ControllerSuite) TestSubmitMoveUnknownPlayer() {
	game := s.activeGame("G1", "", s.player("alice", "CAT"), s.player("bob", "DOG"))

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "mallory", model.PassMove())
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestSubmitMoveOutOfTurn() {
	game := s.activeGame("G1", "", s.player("alice", "CAT"), s.player("bob", "DOG"))

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "bob", model.PassMove())
	s.ErrorIs(err, model.ErrNotYourTurn)
}

func (s *ControllerSuite) TestSubmitMoveUnknownType() {
	game := s.activeGame("G1", "", s.player("alice", "CAT"), s.player("bob", "DOG"))

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.Move{Type: "jump"})
	s.ErrorIs(err, model.ErrUnknownMoveType)
}

// Pass

func (s *ControllerSuite) TestPassAdvancesTurn() {
	game := s.activeGame("G1", "EEEE",
		s.player("alice", "CAT"), s.player("bob", "DOG"))

	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PassMove())
	s.Require().NoError(err)

	s.Equal(0, result.Points)
	s.Nil(result.Completion)
	s.Equal(model.PlayerID("bob"), game.CurrentPlayer().ID)
	s.Equal(1, game.NonScoringTurns)
	s.Equal(1, game.Players[0].ConsecutivePasses)
}

// Place

func (s *ControllerSuite) TestPlaceMoveScoresAndRefills() {
	game := s.activeGame("G1", "EEEEE",
		s.player("alice", "CATDEFG"), s.player("bob", "DOG"))

	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PlaceMove(
		s.place(7, 6, 'C'), s.place(7, 7, 'A'), s.place(7, 8, 'T'),
	))
	s.Require().NoError(err)

	// (3+1+1) doubled on the center cell
	s.Equal(10, result.Points)
	s.Require().Len(result.Words, 1)
	s.Equal("CAT", result.Words[0].Text)
	s.Len(result.Rack, model.RackSize)

	alice := game.PlayerByID("alice")
	s.Equal(10, alice.Score)
	s.Equal(model.RackSize, alice.Rack.Count())
	s.Equal(2, game.Bag.Count())
	s.Equal(model.PlayerID("bob"), game.CurrentPlayer().ID)
	s.Equal(3, game.Board.NumTiles)
}

func (s *ControllerSuite) TestPlaceMoveResetsPassTallies() {
	game := s.activeGame("G1", "EEEEE",
		s.player("alice", "CATDEFG"), s.player("bob", "DOG"))
	game.NonScoringTurns = 3
	game.Players[0].ConsecutivePasses = 2

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PlaceMove(
		s.place(7, 6, 'C'), s.place(7, 7, 'A'), s.place(7, 8, 'T'),
	))
	s.Require().NoError(err)

	s.Equal(0, game.NonScoringTurns)
	s.Equal(0, game.Players[0].ConsecutivePasses)
}

func (s *ControllerSuite) TestPlaceMoveRefillsFromShortBag() {
	game := s.activeGame("G1", "E",
		s.player("alice", "CATDEFG"), s.player("bob", "DOGEEEE"))

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PlaceMove(
		s.place(7, 6, 'C'), s.place(7, 7, 'A'), s.place(7, 8, 'T'),
	))
	s.Require().NoError(err)

	s.Equal(5, game.PlayerByID("alice").Rack.Count())
	s.True(game.Bag.IsEmpty())
	s.Equal(model.GamePhaseActive, game.Phase)
}

func (s *ControllerSuite) TestRejectedMoveMutatesNothing() {
	game := s.activeGame("G1", "EEEEE",
		s.player("alice", "CATDEFG"), s.player("bob", "DOG"))

	// TCA is not a word
	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PlaceMove(
		s.place(7, 6, 'T'), s.place(7, 7, 'C'), s.place(7, 8, 'A'),
	))
	s.ErrorIs(err, model.ErrInvalidWord)

	s.True(game.Board.IsEmpty())
	s.Equal(model.RackSize, game.PlayerByID("alice").Rack.Count())
	s.Equal(0, game.PlayerByID("alice").Score)
	s.Equal(model.PlayerID("alice"), game.CurrentPlayer().ID)
	s.Equal(5, game.Bag.Count())

	// The same player may resubmit a corrected move
	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PlaceMove(
		s.place(7, 6, 'C'), s.place(7, 7, 'A'), s.place(7, 8, 'T'),
	))
	s.Require().NoError(err)
	s.Equal(10, result.Points)
}

func (s *ControllerSuite) TestPlaceMoveWithBlank() {
	game := s.activeGame("G1", "EEEEE",
		s.player("alice", "C?TDEFG"), s.player("bob", "DOG"))

	blank := model.NewBlankTile()
	blank.AssignedLetter = 'A'
	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PlaceMove(
		s.place(7, 6, 'C'),
		model.Placement{Pos: model.Position{Row: 7, Col: 7}, Tile: blank},
		s.place(7, 8, 'T'),
	))
	s.Require().NoError(err)

	s.Equal("CAT", result.Words[0].Text)
	// The blank contributes no points: (3+0+1) doubled
	s.Equal(8, result.Points)
}

// Exchange

func (s *ControllerSuite) TestExchangeMove() {
	game := s.activeGame("G1", "EEEEEEEE",
		s.player("alice", "CATDEFG"), s.player("bob", "DOG"))
	game.Players[0].ConsecutivePasses = 2
	before := game.TileCount()

	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice",
		model.ExchangeMove(s.tiles("CA")...))
	s.Require().NoError(err)

	s.Equal(0, result.Points)
	s.Len(result.Rack, model.RackSize)
	s.Equal(model.RackSize, game.PlayerByID("alice").Rack.Count())
	s.Equal(8, game.Bag.Count())
	s.Equal(before, game.TileCount())
	s.Equal(1, game.NonScoringTurns)
	s.Equal(0, game.Players[0].ConsecutivePasses)
	s.Equal(model.PlayerID("bob"), game.CurrentPlayer().ID)
}

func (s *ControllerSuite) TestExchangePreservesPointValues() {
	game := s.activeGame("G1", "EE",
		s.player("alice", "QZTDEFG"), s.player("bob", "DOG"))

	// Swap the high-value tiles out; their points must survive the
	// trip through the bag
	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice",
		model.ExchangeMove(s.tiles("QZ")...))
	s.Require().NoError(err)

	bagPoints := 0
	for _, t := range game.Bag.Tiles {
		bagPoints += t.Points
	}
	// Q and Z are worth 10 each; the two returned E tiles were drawn
	s.Equal(20, bagPoints)
}

func (s *ControllerSuite) TestExchangeEmptyFails() {
	game := s.activeGame("G1", "EEEE",
		s.player("alice", "CAT"), s.player("bob", "DOG"))

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.ExchangeMove())
	s.ErrorIs(err, model.ErrEmptyExchange)
}

func (s *ControllerSuite) TestExchangeRejectedWhenBagTooSmall() {
	game := s.activeGame("G1", "E",
		s.player("alice", "CAT"), s.player("bob", "DOG"))

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice",
		model.ExchangeMove(s.tiles("CA")...))
	s.ErrorIs(err, model.ErrInsufficientBagSize)

	s.Equal(3, game.PlayerByID("alice").Rack.Count())
	s.Equal(1, game.Bag.Count())
	s.Equal(model.PlayerID("alice"), game.CurrentPlayer().ID)
}

func (s *ControllerSuite) TestExchangeTileNotInRack() {
	game := s.activeGame("G1", "EEEE",
		s.player("alice", "CAT"), s.player("bob", "DOG"))

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice",
		model.ExchangeMove(s.tiles("XY")...))
	s.ErrorIs(err, model.ErrTileNotInRack)
}

// End conditions

func (s *ControllerSuite) TestEmptyRackEndsTheGame() {
	alice := s.player("alice", "CAT")
	bob := s.player("bob", "DE")
	alice.Score = 0
	bob.Score = 5
	game := s.activeGame("G1", "", alice, bob)

	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PlaceMove(
		s.place(7, 6, 'C'), s.place(7, 7, 'A'), s.place(7, 8, 'T'),
	))
	s.Require().NoError(err)

	s.Equal(model.GamePhaseCompleted, game.Phase)
	s.Require().NotNil(result.Completion)
	s.Equal(model.EndReasonEmptyRack, result.Completion.Reason)

	// Alice scores 10 for CAT and gains bob's remaining 3 points;
	// bob loses them
	s.Equal(13, result.Completion.FinalScores["alice"])
	s.Equal(2, result.Completion.FinalScores["bob"])
	s.Equal(model.PlayerID("alice"), result.Completion.Winner)
}

func (s *ControllerSuite) TestAllPassEndsTheGame() {
	alice := s.player("alice", "AB")
	bob := s.player("bob", "C")
	alice.Score = 20
	bob.Score = 10
	game := s.activeGame("G1", "EEEE", alice, bob)
	game.NonScoringTurns = 5

	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PassMove())
	s.Require().NoError(err)

	s.Equal(model.GamePhaseCompleted, game.Phase)
	s.Require().NotNil(result.Completion)
	s.Equal(model.EndReasonAllPass, result.Completion.Reason)

	// Everyone loses their own remaining tile points
	s.Equal(16, result.Completion.FinalScores["alice"])
	s.Equal(7, result.Completion.FinalScores["bob"])
	s.Equal(model.PlayerID("alice"), result.Completion.Winner)
}

func (s *ControllerSuite) TestThreePlayersPassingNineTimesEndTheGame() {
	game := s.activeGame("G1", "EEEE",
		s.player("alice", "A"), s.player("bob", "B"), s.player("carol", "C"))

	order := []model.PlayerID{"alice", "bob", "carol"}
	for i := 0; i < 8; i++ {
		result, err := s.controller.SubmitMove(s.ctx, game.ID, order[i%3], model.PassMove())
		s.Require().NoError(err)
		s.Nil(result.Completion)
	}

	result, err := s.controller.SubmitMove(s.ctx, game.ID, "carol", model.PassMove())
	s.Require().NoError(err)

	s.Equal(model.GamePhaseCompleted, game.Phase)
	s.Require().NotNil(result.Completion)
	s.Equal(model.EndReasonAllPass, result.Completion.Reason)
	s.Equal(-1, result.Completion.FinalScores["alice"])
	s.Equal(-3, result.Completion.FinalScores["bob"])
	s.Equal(-3, result.Completion.FinalScores["carol"])
	s.Equal(model.PlayerID("alice"), result.Completion.Winner)
}

func (s *ControllerSuite) TestExchangeCountsTowardAllPassEnd() {
	alice := s.player("alice", "ABCDEFG")
	bob := s.player("bob", "C")
	game := s.activeGame("G1", "EEEE", alice, bob)
	game.NonScoringTurns = 5

	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice",
		model.ExchangeMove(s.tiles("A")...))
	s.Require().NoError(err)

	s.Equal(model.GamePhaseCompleted, game.Phase)
	s.Equal(model.EndReasonAllPass, result.Completion.Reason)
}

func (s *ControllerSuite) TestTieHasNoWinner() {
	alice := s.player("alice", "AB")
	bob := s.player("bob", "DD")
	alice.Score = 10
	bob.Score = 10
	game := s.activeGame("G1", "EEEE", alice, bob)
	game.NonScoringTurns = 5

	result, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PassMove())
	s.Require().NoError(err)

	// Both end on 6 points
	s.Equal(6, result.Completion.FinalScores["alice"])
	s.Equal(6, result.Completion.FinalScores["bob"])
	s.Equal(model.PlayerID(""), result.Completion.Winner)
	s.Equal(model.PlayerID(""), game.Completion.Winner)
}

func (s *ControllerSuite) TestNoMovesAfterCompletion() {
	alice := s.player("alice", "AB")
	bob := s.player("bob", "C")
	game := s.activeGame("G1", "EEEE", alice, bob)
	game.NonScoringTurns = 5

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PassMove())
	s.Require().NoError(err)

	_, err = s.controller.SubmitMove(s.ctx, game.ID, "bob", model.PassMove())
	s.ErrorIs(err, model.ErrGameNotActive)
}

// Abandon / queries

func (s *ControllerSuite) TestAbandonGame() {
	game := s.activeGame("G1", "EEEE",
		s.player("alice", "CAT"), s.player("bob", "DOG"))

	err := s.controller.AbandonGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GamePhaseAbandoned, game.Phase)

	_, err = s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PassMove())
	s.ErrorIs(err, model.ErrGameNotActive)
}

func (s *ControllerSuite) TestAbandonFinishedGameIsANoOp() {
	alice := s.player("alice", "AB")
	bob := s.player("bob", "C")
	game := s.activeGame("G1", "EEEE", alice, bob)
	game.NonScoringTurns = 5
	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PassMove())
	s.Require().NoError(err)

	err = s.controller.AbandonGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GamePhaseCompleted, game.Phase)
}

func (s *ControllerSuite) TestCurrentState() {
	game := s.activeGame("G1", "EEEE",
		s.player("alice", "CAT"), s.player("bob", "DOG"))

	snap, err := s.controller.CurrentState(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(model.GameID("G1"), snap.ID)
	s.Equal(model.GamePhaseActive, snap.Phase)
	s.Equal(model.PlayerID("alice"), snap.CurrentPlayer)
	s.Equal(4, snap.BagCount)
	s.Require().Len(snap.Players, 2)
	s.Equal(3, snap.Players[0].RackSize)
}

func (s *ControllerSuite) TestPlayerRackReturnsACopy() {
	game := s.activeGame("G1", "",
		s.player("alice", "CAT"), s.player("bob", "DOG"))

	rack, err := s.controller.PlayerRack(s.ctx, game.ID, "alice")
	s.Require().NoError(err)
	s.Require().Len(rack, 3)

	rack[0] = model.NewTile('Z', 10)
	s.Equal('C', game.PlayerByID("alice").Rack.Tiles[0].Letter)
}

func (s *ControllerSuite) TestPlayerRackUnknownPlayer() {
	game := s.activeGame("G1", "",
		s.player("alice", "CAT"), s.player("bob", "DOG"))

	_, err := s.controller.PlayerRack(s.ctx, game.ID, "mallory")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestTileConservationAcrossMoves() {
	game := s.activeGame("G1", "EEEEEEEE",
		s.player("alice", "CATDEFG"), s.player("bob", "DOGEEEE"))
	total := game.TileCount()

	_, err := s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PlaceMove(
		s.place(7, 6, 'C'), s.place(7, 7, 'A'), s.place(7, 8, 'T'),
	))
	s.Require().NoError(err)
	s.Equal(total, game.TileCount())

	_, err = s.controller.SubmitMove(s.ctx, game.ID, "bob",
		model.ExchangeMove(s.tiles("DO")...))
	s.Require().NoError(err)
	s.Equal(total, game.TileCount())

	_, err = s.controller.SubmitMove(s.ctx, game.ID, "alice", model.PassMove())
	s.Require().NoError(err)
	s.Equal(total, game.TileCount())
}
