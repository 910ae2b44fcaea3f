package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// Word is set for invalid-word rejections
	Word string `json:"word,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeGameNotActive       = "GAME_NOT_ACTIVE"
	CodeGameAlreadyStarted  = "GAME_ALREADY_STARTED"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeNotYourTurn         = "NOT_YOUR_TURN"
	CodeUnknownLanguage     = "UNKNOWN_LANGUAGE"
	CodeEmptyPlacement      = "EMPTY_PLACEMENT"
	CodeEmptyExchange       = "EMPTY_EXCHANGE"
	CodeUnknownMoveType     = "UNKNOWN_MOVE_TYPE"
	CodeTileNotInRack       = "TILE_NOT_IN_RACK"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeNotInLine           = "NOT_IN_LINE"
	CodeGapInPlacement      = "GAP_IN_PLACEMENT"
	CodeMustCoverCenter     = "MUST_COVER_CENTER"
	CodeNotConnected        = "NOT_CONNECTED"
	CodeInvalidPosition     = "INVALID_POSITION"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeInvalidWord         = "INVALID_WORD"
	CodeInsufficientBag     = "INSUFFICIENT_BAG_SIZE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// An invalid word carries the offending text
	var iw *model.InvalidWordError
	if errors.As(err, &iw) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidWord, iw.Error(), iw.Word}}
	}

	// Map engine sentinels; every move rejection is recoverable for
	// the caller
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeGameNotFound, Message: "Game not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodePlayerNotFound, Message: "Player not found"}}
	case errors.Is(err, model.ErrGameNotActive):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameNotActive, Message: "Game is not active"}}
	case errors.Is(err, model.ErrGameAlreadyStarted):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameAlreadyStarted, Message: "Game has already started"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInsufficientPlayers, Message: "At least two players are required"}}
	case errors.Is(err, model.ErrNotYourTurn):
		return &httpError{http.StatusForbidden, APIError{Code: CodeNotYourTurn, Message: "Not your turn"}}
	case errors.Is(err, model.ErrUnknownLanguage):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeUnknownLanguage, Message: "Unsupported language"}}
	case errors.Is(err, model.ErrEmptyPlacement):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeEmptyPlacement, Message: "Place move needs at least one tile"}}
	case errors.Is(err, model.ErrEmptyExchange):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeEmptyExchange, Message: "Exchange move needs at least one tile"}}
	case errors.Is(err, model.ErrUnknownMoveType):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeUnknownMoveType, Message: "Move type must be place, pass or exchange"}}
	case errors.Is(err, model.ErrTileNotInRack):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeTileNotInRack, Message: "Tile not in rack"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{Code: CodeCellOccupied, Message: "Cell is already occupied"}}
	case errors.Is(err, model.ErrNotInLine):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeNotInLine, Message: "Placements must share a single row or column"}}
	case errors.Is(err, model.ErrGapInPlacement):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeGapInPlacement, Message: "Placements leave a gap in the word"}}
	case errors.Is(err, model.ErrMustCoverCenter):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeMustCoverCenter, Message: "First move must cover the center cell"}}
	case errors.Is(err, model.ErrNotConnected):
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeNotConnected, Message: "Placement does not connect to existing tiles"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidPosition, Message: "Invalid board position"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidLetter, Message: "Invalid letter"}}
	case errors.Is(err, model.ErrInsufficientBagSize):
		return &httpError{http.StatusConflict, APIError{Code: CodeInsufficientBag, Message: "Not enough tiles in the bag to exchange"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
