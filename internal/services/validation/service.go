package validation

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/dictionary"
)

// Service validates a proposed set of tile placements against the
// current board and extracts every newly formed word. It never
// mutates the board or the rack.
type Service struct {
	oracle dictionary.Oracle
}

// New creates a new move validator
func New(oracle dictionary.Oracle) *Service {
	return &Service{oracle: oracle}
}

// Result is the output of a successful validation: the words the move
// forms in deterministic discovery order (main word first, then cross
// words left-to-right/top-to-bottom), and the placements sorted along
// the placement line, ready for scoring and board commit.
type Result struct {
	Words      []model.Word
	Placements []model.Placement
	Direction  model.Direction
}

// Validate runs the full legality sequence. Checks run in a fixed
// order and the first failure is returned.
func (s *Service) Validate(
	board *model.Board,
	rack *model.Rack,
	lang model.Language,
	placements []model.Placement,
) (*Result, error) {
	if len(placements) == 0 {
		return nil, model.ErrEmptyPlacement
	}

	if err := checkTiles(placements); err != nil {
		return nil, err
	}

	if !rack.ContainsAll(placementTiles(placements)) {
		return nil, model.ErrTileNotInRack
	}

	if err := checkNoOverlap(board, placements); err != nil {
		return nil, err
	}

	dir, err := lineDirection(board, placements)
	if err != nil {
		return nil, err
	}

	sorted := sortAlongLine(placements, dir)

	overlay := overlayMap(sorted)
	if err := checkNoGaps(board, overlay, sorted, dir); err != nil {
		return nil, err
	}

	if err := checkCoverage(board, sorted); err != nil {
		return nil, err
	}

	words := extractWords(board, overlay, sorted, dir)

	for _, w := range words {
		if !s.oracle.IsValidWord(lang, w.Text) {
			return nil, &model.InvalidWordError{Word: w.Text}
		}
	}

	return &Result{Words: words, Placements: sorted, Direction: dir}, nil
}

// checkTiles verifies every placed tile resolves to a real letter:
// blanks must carry an assignment, letter tiles an uppercase face
func checkTiles(placements []model.Placement) error {
	for _, p := range placements {
		r := p.Tile.Resolved()
		if r == 0 || !unicode.IsUpper(r) {
			return model.ErrInvalidLetter
		}
	}
	return nil
}

func placementTiles(placements []model.Placement) []model.Tile {
	tiles := make([]model.Tile, len(placements))
	for i, p := range placements {
		tiles[i] = p.Tile
	}
	return tiles
}

// checkNoOverlap rejects placements onto occupied cells, including
// two placements targeting the same cell
func checkNoOverlap(board *model.Board, placements []model.Placement) error {
	seen := make(map[model.Position]struct{}, len(placements))
	for _, p := range placements {
		if !board.IsValidPosition(p.Pos) {
			return model.ErrInvalidPosition
		}
		if board.OccupantAt(p.Pos) != nil {
			return model.ErrCellOccupied
		}
		if _, dup := seen[p.Pos]; dup {
			return model.ErrCellOccupied
		}
		seen[p.Pos] = struct{}{}
	}
	return nil
}

// lineDirection determines the placement axis. A single tile is
// ambiguous: it reads horizontal if it has a horizontal neighbour on
// the board, vertical if it only has a vertical one.
func lineDirection(board *model.Board, placements []model.Placement) (model.Direction, error) {
	if len(placements) == 1 {
		pos := placements[0].Pos
		if board.OccupantAt(pos.Left()) != nil || board.OccupantAt(pos.Right()) != nil {
			return model.Horizontal, nil
		}
		if board.OccupantAt(pos.Above()) != nil || board.OccupantAt(pos.Below()) != nil {
			return model.Vertical, nil
		}
		return model.Horizontal, nil
	}

	sameRow, sameCol := true, true
	first := placements[0].Pos
	for _, p := range placements[1:] {
		if p.Pos.Row != first.Row {
			sameRow = false
		}
		if p.Pos.Col != first.Col {
			sameCol = false
		}
	}
	switch {
	case sameRow:
		return model.Horizontal, nil
	case sameCol:
		return model.Vertical, nil
	default:
		return 0, model.ErrNotInLine
	}
}

func sortAlongLine(placements []model.Placement, dir model.Direction) []model.Placement {
	sorted := make([]model.Placement, len(placements))
	copy(sorted, placements)
	sort.Slice(sorted, func(i, j int) bool {
		if dir == model.Horizontal {
			return sorted[i].Pos.Col < sorted[j].Pos.Col
		}
		return sorted[i].Pos.Row < sorted[j].Pos.Row
	})
	return sorted
}

func overlayMap(placements []model.Placement) map[model.Position]model.Tile {
	overlay := make(map[model.Position]model.Tile, len(placements))
	for _, p := range placements {
		overlay[p.Pos] = p.Tile
	}
	return overlay
}

// checkNoGaps requires every cell between consecutive new tiles along
// the line to be filled by an existing board occupant
func checkNoGaps(
	board *model.Board,
	overlay map[model.Position]model.Tile,
	sorted []model.Placement,
	dir model.Direction,
) error {
	for i := 1; i < len(sorted); i++ {
		for pos := sorted[i-1].Pos.Next(dir); pos != sorted[i].Pos; pos = pos.Next(dir) {
			if _, isNew := overlay[pos]; isNew {
				continue
			}
			if board.OccupantAt(pos) == nil {
				return model.ErrGapInPlacement
			}
		}
	}
	return nil
}

// checkCoverage enforces the board-coverage rule: the first move must
// cover the center cell, every later move must touch the existing
// tile cluster
func checkCoverage(board *model.Board, placements []model.Placement) error {
	if board.IsEmpty() {
		for _, p := range placements {
			if p.Pos == model.Center {
				return nil
			}
		}
		return model.ErrMustCoverCenter
	}

	for _, p := range placements {
		if board.HasAdjacentTile(p.Pos) {
			return nil
		}
	}
	return model.ErrNotConnected
}

// tileAt resolves a cell's tile from the new placements first, then
// the board
func tileAt(board *model.Board, overlay map[model.Position]model.Tile, pos model.Position) (model.Tile, bool) {
	if t, ok := overlay[pos]; ok {
		return t, true
	}
	if t := board.OccupantAt(pos); t != nil {
		return *t, true
	}
	return model.Tile{}, false
}

// wordThrough collects the contiguous occupied run through pos along
// dir, using board tiles plus the new placements
func wordThrough(
	board *model.Board,
	overlay map[model.Position]model.Tile,
	pos model.Position,
	dir model.Direction,
) model.Word {
	start := pos
	for {
		prev := start.Prev(dir)
		if _, ok := tileAt(board, overlay, prev); !ok {
			break
		}
		start = prev
	}

	var positions []model.Position
	var text strings.Builder
	for cur := start; ; cur = cur.Next(dir) {
		t, ok := tileAt(board, overlay, cur)
		if !ok {
			break
		}
		positions = append(positions, cur)
		text.WriteRune(t.Resolved())
	}

	return model.Word{Positions: positions, Text: text.String()}
}

// extractWords walks outward from the placements: the word along the
// placement line first, then each perpendicular word in line order.
// Single-letter runs are not words.
func extractWords(
	board *model.Board,
	overlay map[model.Position]model.Tile,
	sorted []model.Placement,
	dir model.Direction,
) []model.Word {
	var words []model.Word

	main := wordThrough(board, overlay, sorted[0].Pos, dir)
	if len(main.Positions) >= 2 {
		words = append(words, main)
	}

	cross := perpendicular(dir)
	for _, p := range sorted {
		w := wordThrough(board, overlay, p.Pos, cross)
		if len(w.Positions) >= 2 {
			words = append(words, w)
		}
	}

	return words
}

func perpendicular(dir model.Direction) model.Direction {
	if dir == model.Horizontal {
		return model.Vertical
	}
	return model.Horizontal
}
