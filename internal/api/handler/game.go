package handler

import (
	"encoding/json"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/jabibo/wordbattle-backend-sub001/internal/api/apierr"
	"github.com/jabibo/wordbattle-backend-sub001/internal/api/request"
	"github.com/jabibo/wordbattle-backend-sub001/internal/api/response"
	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	controller *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *game.Controller) *GameHandler {
	return &GameHandler{controller: controller}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	playerIDs := make([]model.PlayerID, len(req.PlayerIDs))
	for i, id := range req.PlayerIDs {
		if id == "" {
			apierr.WriteError(w, apierr.NewInvalidRequestError("player_ids must not contain empty IDs"))
			return
		}
		playerIDs[i] = model.PlayerID(id)
	}

	g, err := h.controller.NewGame(r.Context(), model.Language(req.Language), playerIDs)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromSnapshot(g.Snapshot()))
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	g, err := h.controller.StartGame(r.Context(), gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(g.Snapshot()))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	snap, err := h.controller.CurrentState(r.Context(), gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromSnapshot(snap))
}

// Rack handles GET /api/v1/games/{id}/players/{player_id}/rack
func (h *GameHandler) Rack(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])

	tiles, err := h.controller.PlayerRack(r.Context(), gameID, playerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RackResponse{
		PlayerID: string(playerID),
		Tiles:    response.TilesFromModel(tiles),
	})
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	var req request.SubmitMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}
	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}

	move, err := h.buildMove(r, gameID, req)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	result, err := h.controller.SubmitMove(r.Context(), gameID, model.PlayerID(req.PlayerID), move)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResultFromModel(result))
}

// Abandon handles DELETE /api/v1/games/{id}
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	if err := h.controller.AbandonGame(r.Context(), gameID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// buildMove converts the wire move into a model move. Tile point
// values are resolved server-side from the game's letter
// distribution; clients only name letters.
func (h *GameHandler) buildMove(r *http.Request, gameID model.GameID, req request.SubmitMoveRequest) (model.Move, error) {
	switch model.MoveType(req.Type) {
	case model.MoveTypePass:
		return model.PassMove(), nil

	case model.MoveTypeExchange:
		tiles := make([]model.Tile, len(req.Exchange))
		for i, letter := range req.Exchange {
			t, err := tileFromLetter(letter, false)
			if err != nil {
				return model.Move{}, err
			}
			tiles[i] = t
		}
		return model.Move{Type: model.MoveTypeExchange, ExchangeTiles: tiles}, nil

	case model.MoveTypePlace:
		g, err := h.controller.GetGame(r.Context(), gameID)
		if err != nil {
			return model.Move{}, err
		}
		dist, err := model.DistributionFor(g.Language)
		if err != nil {
			return model.Move{}, err
		}

		placements := make([]model.Placement, len(req.Placements))
		for i, p := range req.Placements {
			tile, err := placedTile(p, dist)
			if err != nil {
				return model.Move{}, err
			}
			placements[i] = model.Placement{
				Pos:  model.Position{Row: p.Row, Col: p.Col},
				Tile: tile,
			}
		}
		return model.Move{Type: model.MoveTypePlace, Placements: placements}, nil

	default:
		return model.Move{}, apierr.NewInvalidRequestError("type must be place, pass or exchange")
	}
}

// tileFromLetter parses a single-letter tile name; "?" is a blank
func tileFromLetter(s string, allowEmpty bool) (model.Tile, error) {
	if s == "" && allowEmpty {
		return model.Tile{}, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || len(s) != size {
		return model.Tile{}, model.ErrInvalidLetter
	}
	if r == model.BlankLetter {
		return model.NewBlankTile(), nil
	}
	if !unicode.IsLetter(r) {
		return model.Tile{}, model.ErrInvalidLetter
	}
	return model.NewTile(unicode.ToUpper(r), 0), nil
}

// placedTile builds the tile for one placement, with its point value
// from the distribution
func placedTile(p request.Placement, dist *model.LetterDistribution) (model.Tile, error) {
	t, err := tileFromLetter(p.Letter, false)
	if err != nil {
		return model.Tile{}, err
	}
	if p.Blank || t.IsBlank {
		blank := model.NewBlankTile()
		if !t.IsBlank {
			blank.AssignedLetter = t.Letter
		}
		return blank, nil
	}
	t.Points = dist.Points(t.Letter)
	return t, nil
}
