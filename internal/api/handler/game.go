package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/partycards-go/internal/api/gate"
	"github.com/mcoot/partycards-go/internal/api/request"
	"github.com/mcoot/partycards-go/internal/api/response"
	"github.com/mcoot/partycards-go/internal/model"
	"github.com/mcoot/partycards-go/internal/services/game"
)

// GameHandler handles game endpoints
type GameHandler struct {
	games *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *game.Controller) *GameHandler {
	return &GameHandler{
		games: games,
	}
}

// Create handles POST /api/game
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.Create(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameResponse{
		Game: response.GameFromModel(g),
	})
}

// Get handles GET /api/game/{gameId}.
// The cardzar additionally sees the round's submissions.
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g := gate.MustGame(r.Context())
	player := gate.MustPlayer(r.Context())

	resp := response.GameResponse{
		Game: response.GameFromModel(g),
	}
	if player.IsCardzar {
		resp.Submissions = response.SubmissionsFromModel(g)
	}

	response.JSON(w, http.StatusOK, resp)
}

// Start handles POST /api/game/{gameId}/start (VIP only)
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	g := gate.MustGame(r.Context())

	if err := h.games.Start(r.Context(), g); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{
		Game: response.GameFromModel(g),
	})
}

// SubmitCard handles POST /api/game/{gameId}/card
func (h *GameHandler) SubmitCard(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Card == "" {
		WriteError(w, NewInvalidRequestError("card is required"))
		return
	}

	g := gate.MustGame(r.Context())
	playerID := gate.MustPlayerID(r.Context())

	if err := h.games.SubmitCard(r.Context(), g, playerID, req.Card); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{
		Game: response.GameFromModel(g),
	})
}

// PickWinner handles POST /api/game/{gameId}/winner (cardzar only)
func (h *GameHandler) PickWinner(w http.ResponseWriter, r *http.Request) {
	var req request.PickWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.WinnerID == "" {
		WriteError(w, NewInvalidRequestError("winner_id is required"))
		return
	}

	g := gate.MustGame(r.Context())

	if err := h.games.PickWinner(r.Context(), g, model.PlayerID(req.WinnerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{
		Game: response.GameFromModel(g),
	})
}

// KickPlayer handles DELETE /api/game/{gameId}/player/{playerId} (VIP only)
func (h *GameHandler) KickPlayer(w http.ResponseWriter, r *http.Request) {
	g := gate.MustGame(r.Context())
	target := model.PlayerID(mux.Vars(r)["playerId"])

	if err := h.games.RemovePlayer(r.Context(), g, target); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
