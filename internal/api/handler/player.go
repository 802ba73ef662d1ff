package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/partycards-go/internal/api/gate"
	"github.com/mcoot/partycards-go/internal/api/request"
	"github.com/mcoot/partycards-go/internal/api/response"
	"github.com/mcoot/partycards-go/internal/services/game"
	"github.com/mcoot/partycards-go/internal/services/token"
)

// PlayerHandler handles the join-game endpoint
type PlayerHandler struct {
	games  *game.Controller
	tokens *token.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(games *game.Controller, tokens *token.Service) *PlayerHandler {
	return &PlayerHandler{
		games:  games,
		tokens: tokens,
	}
}

// Join handles POST /api/game/{gameId}/player.
// The join chain (lookup + join window) has already admitted the
// request and attached the game.
func (h *PlayerHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	g := gate.MustGame(r.Context())

	playerID, err := h.games.AddPlayer(r.Context(), g, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	signed, err := h.tokens.Issue(playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.JoinResponse{
		PlayerID: string(playerID),
		Token:    signed,
		Game:     response.GameFromModel(g),
	})
}
