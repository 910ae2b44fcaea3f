package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Language  string   `json:"language"`
	PlayerIDs []string `json:"player_ids"`
}

// Placement is one tile placement in a move request.
// A blank tile is marked with blank=true; its letter is then the
// letter the blank stands for.
type Placement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
	Blank  bool   `json:"blank,omitempty"`
}

// SubmitMoveRequest is the request body for submitting a move.
// Type is "place", "pass" or "exchange".
type SubmitMoveRequest struct {
	PlayerID   string      `json:"player_id"`
	Type       string      `json:"type"`
	Placements []Placement `json:"placements,omitempty"`

	// Exchange lists rack tiles by letter, "?" for a blank
	Exchange []string `json:"exchange,omitempty"`
}
