package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RackSuite struct {
	suite.Suite
}

func TestRackSuite(t *testing.T) {
	suite.Run(t, new(RackSuite))
}

func (s *RackSuite) TestNewRackIsEmpty() {
	rack := NewRack()
	s.True(rack.IsEmpty())
	s.Equal(0, rack.Count())
	s.Equal(RackSize, rack.Missing())
}

func (s *RackSuite) TestAddAndCount() {
	rack := NewRack()
	rack.Add(NewTile('A', 1), NewTile('B', 3))

	s.Equal(2, rack.Count())
	s.Equal(RackSize-2, rack.Missing())
	s.False(rack.IsEmpty())
}

func (s *RackSuite) TestContainsMatchesByKind() {
	rack := NewRack()
	rack.Add(NewTile('A', 1), NewBlankTile())

	s.True(rack.Contains(NewTile('A', 1)))
	s.True(rack.Contains(NewBlankTile()))
	s.False(rack.Contains(NewTile('Z', 10)))
}

func (s *RackSuite) TestContainsBlankIgnoresAssignment() {
	rack := NewRack()
	rack.Add(NewBlankTile())

	assigned := NewBlankTile()
	assigned.AssignedLetter = 'Q'
	s.True(rack.Contains(assigned))
}

func (s *RackSuite) TestContainsAllCountsDuplicates() {
	rack := NewRack()
	rack.Add(NewTile('A', 1), NewTile('A', 1), NewTile('B', 3))

	s.True(rack.ContainsAll([]Tile{NewTile('A', 1), NewTile('A', 1)}))
	s.False(rack.ContainsAll([]Tile{NewTile('A', 1), NewTile('A', 1), NewTile('A', 1)}))
}

func (s *RackSuite) TestRemoveTakesOneTile() {
	rack := NewRack()
	rack.Add(NewTile('A', 1), NewTile('A', 1))

	err := rack.Remove(NewTile('A', 1))
	s.Require().NoError(err)
	s.Equal(1, rack.Count())
}

func (s *RackSuite) TestRemoveMissingTileFails() {
	rack := NewRack()
	rack.Add(NewTile('A', 1))

	err := rack.Remove(NewTile('B', 3))
	s.ErrorIs(err, ErrTileNotInRack)
	s.Equal(1, rack.Count())
}

func (s *RackSuite) TestRemoveAllIsAtomic() {
	rack := NewRack()
	rack.Add(NewTile('A', 1), NewTile('B', 3))

	err := rack.RemoveAll([]Tile{NewTile('A', 1), NewTile('Z', 10)})
	s.ErrorIs(err, ErrTileNotInRack)
	s.Equal(2, rack.Count())
}

func (s *RackSuite) TestRemoveAllSucceeds() {
	rack := NewRack()
	rack.Add(NewTile('A', 1), NewTile('B', 3), NewTile('C', 3))

	err := rack.RemoveAll([]Tile{NewTile('C', 3), NewTile('A', 1)})
	s.Require().NoError(err)
	s.Equal(1, rack.Count())
	s.True(rack.Contains(NewTile('B', 3)))
}

func (s *RackSuite) TestTakeAllPreservesPointValues() {
	rack := NewRack()
	rack.Add(NewTile('Q', 10), NewTile('A', 1))

	// The probe tile's point value is irrelevant; the rack's own tile
	// comes back
	taken, err := rack.TakeAll([]Tile{NewTile('Q', 0)})
	s.Require().NoError(err)
	s.Require().Len(taken, 1)
	s.Equal(10, taken[0].Points)
	s.Equal(1, rack.Count())
}

func (s *RackSuite) TestTakeAllIsAtomic() {
	rack := NewRack()
	rack.Add(NewTile('A', 1))

	taken, err := rack.TakeAll([]Tile{NewTile('A', 1), NewTile('B', 3)})
	s.ErrorIs(err, ErrTileNotInRack)
	s.Nil(taken)
	s.Equal(1, rack.Count())
}

func (s *RackSuite) TestPointSum() {
	rack := NewRack()
	rack.Add(NewTile('Q', 10), NewTile('A', 1), NewBlankTile())

	s.Equal(11, rack.PointSum())
}

func (s *RackSuite) TestLetters() {
	rack := NewRack()
	rack.Add(NewTile('A', 1), NewBlankTile(), NewTile('Z', 10))

	s.Equal([]rune{'A', '?', 'Z'}, rack.Letters())
}
