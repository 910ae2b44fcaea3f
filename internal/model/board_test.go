package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard()
}

func (s *BoardSuite) TestNewBoardIsEmpty() {
	s.True(s.board.IsEmpty())
	s.Equal(0, s.board.NumTiles)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			s.Nil(s.board.OccupantAt(Position{Row: row, Col: col}))
		}
	}
}

func (s *BoardSuite) TestPremiumLayout() {
	// Corners and mid-edges are triple word
	s.Equal(PremiumTripleWord, s.board.PremiumAt(Position{Row: 0, Col: 0}))
	s.Equal(PremiumTripleWord, s.board.PremiumAt(Position{Row: 0, Col: 14}))
	s.Equal(PremiumTripleWord, s.board.PremiumAt(Position{Row: 14, Col: 14}))
	s.Equal(PremiumTripleWord, s.board.PremiumAt(Position{Row: 7, Col: 0}))

	// The center is double word
	s.Equal(PremiumDoubleWord, s.board.PremiumAt(Center))

	// Spot checks for the remaining premium kinds
	s.Equal(PremiumDoubleWord, s.board.PremiumAt(Position{Row: 1, Col: 1}))
	s.Equal(PremiumTripleLetter, s.board.PremiumAt(Position{Row: 1, Col: 5}))
	s.Equal(PremiumDoubleLetter, s.board.PremiumAt(Position{Row: 0, Col: 3}))
	s.Equal(PremiumNone, s.board.PremiumAt(Position{Row: 0, Col: 1}))
}

func (s *BoardSuite) TestPremiumLayoutIsSymmetric() {
	// The standard board is symmetric under 180-degree rotation
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			a := s.board.PremiumAt(Position{Row: row, Col: col})
			b := s.board.PremiumAt(Position{Row: BoardSize - 1 - row, Col: BoardSize - 1 - col})
			s.Equal(a, b)
		}
	}
}

func (s *BoardSuite) TestPremiumMultipliers() {
	s.Equal(2, PremiumDoubleLetter.LetterMultiplier())
	s.Equal(3, PremiumTripleLetter.LetterMultiplier())
	s.Equal(1, PremiumDoubleWord.LetterMultiplier())
	s.Equal(2, PremiumDoubleWord.WordMultiplier())
	s.Equal(3, PremiumTripleWord.WordMultiplier())
	s.Equal(1, PremiumDoubleLetter.WordMultiplier())
	s.Equal(1, PremiumNone.LetterMultiplier())
	s.Equal(1, PremiumNone.WordMultiplier())
}

func (s *BoardSuite) TestPlaceTile() {
	pos := Position{Row: 7, Col: 7}
	err := s.board.PlaceTile(pos, NewTile('A', 1))
	s.Require().NoError(err)

	s.False(s.board.IsEmpty())
	s.Equal(1, s.board.NumTiles)
	occupant := s.board.OccupantAt(pos)
	s.Require().NotNil(occupant)
	s.Equal('A', occupant.Letter)
}

func (s *BoardSuite) TestPlaceTileNeverOverwrites() {
	pos := Position{Row: 7, Col: 7}
	s.Require().NoError(s.board.PlaceTile(pos, NewTile('A', 1)))

	err := s.board.PlaceTile(pos, NewTile('B', 3))
	s.ErrorIs(err, ErrCellOccupied)
	s.Equal('A', s.board.OccupantAt(pos).Letter)
	s.Equal(1, s.board.NumTiles)
}

func (s *BoardSuite) TestPlaceTileOutOfBounds() {
	err := s.board.PlaceTile(Position{Row: -1, Col: 0}, NewTile('A', 1))
	s.ErrorIs(err, ErrInvalidPosition)

	err = s.board.PlaceTile(Position{Row: 0, Col: BoardSize}, NewTile('A', 1))
	s.ErrorIs(err, ErrInvalidPosition)
}

func (s *BoardSuite) TestOccupantAtOutOfBoundsIsNil() {
	s.Nil(s.board.OccupantAt(Position{Row: -1, Col: 7}))
	s.Nil(s.board.OccupantAt(Position{Row: 7, Col: BoardSize}))
}

func (s *BoardSuite) TestHasAdjacentTile() {
	center := Position{Row: 7, Col: 7}
	s.Require().NoError(s.board.PlaceTile(center, NewTile('A', 1)))

	s.True(s.board.HasAdjacentTile(Position{Row: 6, Col: 7}))
	s.True(s.board.HasAdjacentTile(Position{Row: 7, Col: 8}))
	s.False(s.board.HasAdjacentTile(Position{Row: 6, Col: 6}))
	s.False(s.board.HasAdjacentTile(Position{Row: 0, Col: 0}))
}

func (s *BoardSuite) TestOccupancyResolvesBlanks() {
	blank := NewBlankTile()
	blank.AssignedLetter = 'Q'
	s.Require().NoError(s.board.PlaceTile(Position{Row: 7, Col: 7}, blank))
	s.Require().NoError(s.board.PlaceTile(Position{Row: 7, Col: 8}, NewTile('I', 1)))

	grid := s.board.Occupancy()
	s.Equal("Q", grid[7][7])
	s.Equal("I", grid[7][8])
	s.Equal("", grid[0][0])
}

func (s *BoardSuite) TestStringShowsBlanksLowercase() {
	blank := NewBlankTile()
	blank.AssignedLetter = 'Q'
	s.Require().NoError(s.board.PlaceTile(Position{Row: 0, Col: 0}, blank))
	s.Require().NoError(s.board.PlaceTile(Position{Row: 0, Col: 1}, NewTile('I', 1)))

	rendered := s.board.String()
	s.Equal("qI.", rendered[:3])
}
