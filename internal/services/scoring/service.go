package scoring

import (
	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
)

// BingoBonus is awarded for playing the entire rack in one move
const BingoBonus = 50

// Service computes the point value of a validated move. It is a pure
// function of the board, the extracted words and the new placements:
// identical inputs always score identically.
type Service struct{}

// New creates a new score calculator
func New() *Service {
	return &Service{}
}

// Score computes the total move score. Premium multipliers apply only
// to cells under newly placed tiles; tiles already on the board score
// face value. Each word applies only its own intersecting premiums.
func (s *Service) Score(board *model.Board, words []model.Word, placements []model.Placement) int {
	newTiles := make(map[model.Position]model.Tile, len(placements))
	for _, p := range placements {
		newTiles[p.Pos] = p.Tile
	}

	total := 0
	for _, w := range words {
		total += s.scoreWord(board, w, newTiles)
	}

	if len(placements) == model.RackSize {
		total += BingoBonus
	}

	return total
}

// scoreWord computes letterSum x wordMultiplier for one word
func (s *Service) scoreWord(board *model.Board, w model.Word, newTiles map[model.Position]model.Tile) int {
	letterSum := 0
	wordMultiplier := 1

	for _, pos := range w.Positions {
		tile, isNew := newTiles[pos]
		if !isNew {
			occupant := board.OccupantAt(pos)
			if occupant == nil {
				// Word positions always resolve to a tile for a
				// validated move
				continue
			}
			letterSum += occupant.Points
			continue
		}

		premium := board.PremiumAt(pos)
		letterSum += tile.Points * premium.LetterMultiplier()
		wordMultiplier *= premium.WordMultiplier()
	}

	return letterSum * wordMultiplier
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(board *model.Board, words []model.Word, placements []model.Placement) int
}

var _ ServiceInterface = (*Service)(nil)
