package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	board   *model.Board
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.board = model.NewBoard()
	s.service = New()
}

func placement(row, col int, letter rune, points int) model.Placement {
	return model.Placement{
		Pos:  model.Position{Row: row, Col: col},
		Tile: model.NewTile(letter, points),
	}
}

// word builds a Word spanning the placements plus any extra positions
func word(text string, positions ...model.Position) model.Word {
	return model.Word{Text: text, Positions: positions}
}

func positionsOf(placements []model.Placement) []model.Position {
	positions := make([]model.Position, len(placements))
	for i, p := range placements {
		positions[i] = p.Pos
	}
	return positions
}

func (s *ServiceSuite) TestPlainWordScoresFaceValue() {
	// Row 8 cols 3-5 carry no premiums
	placements := []model.Placement{
		placement(8, 3, 'C', 3),
		placement(8, 4, 'A', 1),
		placement(8, 5, 'T', 1),
	}
	words := []model.Word{word("CAT", positionsOf(placements)...)}

	s.Equal(5, s.service.Score(s.board, words, placements))
}

func (s *ServiceSuite) TestCenterDoublesTheFirstWord() {
	placements := []model.Placement{
		placement(7, 6, 'C', 3),
		placement(7, 7, 'A', 1),
		placement(7, 8, 'T', 1),
	}
	words := []model.Word{word("CAT", positionsOf(placements)...)}

	s.Equal(10, s.service.Score(s.board, words, placements))
}

func (s *ServiceSuite) TestDoubleLetterAppliesBeforeWordMultiplier() {
	// (7,3) is double letter, (7,7) is double word
	placements := []model.Placement{
		placement(7, 3, 'C', 3),
		placement(7, 4, 'A', 1),
		placement(7, 5, 'T', 1),
		placement(7, 6, 'T', 1),
		placement(7, 7, 'Y', 4),
	}
	words := []model.Word{word("CATTY", positionsOf(placements)...)}

	// (3*2 + 1 + 1 + 1 + 4) * 2
	s.Equal(26, s.service.Score(s.board, words, placements))
}

func (s *ServiceSuite) TestTripleWordCorner() {
	placements := []model.Placement{
		placement(0, 0, 'Z', 10),
		placement(0, 1, 'A', 1),
	}
	words := []model.Word{word("ZA", positionsOf(placements)...)}

	s.Equal(33, s.service.Score(s.board, words, placements))
}

func (s *ServiceSuite) TestPremiumsOnlyApplyToNewPlacements() {
	// An existing tile sits on the center double-word cell; its
	// premium is spent
	s.Require().NoError(s.board.PlaceTile(model.Position{Row: 7, Col: 7}, model.NewTile('A', 1)))

	placements := []model.Placement{
		placement(7, 6, 'C', 3),
		placement(7, 8, 'T', 1),
	}
	words := []model.Word{word("CAT",
		model.Position{Row: 7, Col: 6},
		model.Position{Row: 7, Col: 7},
		model.Position{Row: 7, Col: 8},
	)}

	s.Equal(5, s.service.Score(s.board, words, placements))
}

func (s *ServiceSuite) TestEachWordAppliesItsOwnPremiums() {
	// Board holds CAT across row 7; DOG under it forms two cross words.
	s.Require().NoError(s.board.PlaceTile(model.Position{Row: 7, Col: 6}, model.NewTile('C', 3)))
	s.Require().NoError(s.board.PlaceTile(model.Position{Row: 7, Col: 7}, model.NewTile('A', 1)))
	s.Require().NoError(s.board.PlaceTile(model.Position{Row: 7, Col: 8}, model.NewTile('T', 1)))

	placements := []model.Placement{
		placement(8, 5, 'D', 2),
		placement(8, 6, 'O', 1),
		placement(8, 7, 'G', 2),
	}
	words := []model.Word{
		word("DOG", positionsOf(placements)...),
		word("CO",
			model.Position{Row: 7, Col: 6},
			model.Position{Row: 8, Col: 6}),
		word("AG",
			model.Position{Row: 7, Col: 7},
			model.Position{Row: 8, Col: 7}),
	}

	// DOG: D2 + O1(dl at 8,6 -> 2) + G2 = 6
	// CO: C3 + O1*2 = 5
	// AG: A1 + G2 = 3
	s.Equal(14, s.service.Score(s.board, words, placements))
}

func (s *ServiceSuite) TestBingoBonus() {
	placements := []model.Placement{
		placement(7, 4, 'A', 1),
		placement(7, 5, 'B', 3),
		placement(7, 6, 'C', 3),
		placement(7, 7, 'D', 2),
		placement(7, 8, 'E', 1),
		placement(7, 9, 'F', 4),
		placement(7, 10, 'G', 2),
	}
	words := []model.Word{word("ABCDEFG", positionsOf(placements)...)}

	// (1+3+3+2+1+4+2) * 2 for the double-word center, plus the bonus
	s.Equal(16*2+BingoBonus, s.service.Score(s.board, words, placements))
}

func (s *ServiceSuite) TestBlankScoresZeroEvenOnPremium() {
	blank := model.NewBlankTile()
	blank.AssignedLetter = 'Z'
	placements := []model.Placement{
		{Pos: model.Position{Row: 0, Col: 0}, Tile: blank},
		placement(0, 1, 'A', 1),
	}
	words := []model.Word{word("ZA",
		model.Position{Row: 0, Col: 0},
		model.Position{Row: 0, Col: 1},
	)}

	// (0 + 1) * 3 for the triple-word corner
	s.Equal(3, s.service.Score(s.board, words, placements))
}

func (s *ServiceSuite) TestNoWordsScoresZero() {
	s.Equal(0, s.service.Score(s.board, nil, nil))
}
