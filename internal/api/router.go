package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/partycards-go/internal/api/gate"
	"github.com/mcoot/partycards-go/internal/api/handler"
	"github.com/mcoot/partycards-go/internal/api/middleware"
	"github.com/mcoot/partycards-go/internal/services/expiry"
	"github.com/mcoot/partycards-go/internal/services/game"
	"github.com/mcoot/partycards-go/internal/services/token"
	"github.com/mcoot/partycards-go/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Storage        storage.Storage
	TokenService   *token.Service
	GameController *game.Controller
	Expiry         *expiry.Scheduler
}

// NewRouter creates a new API router with all routes and their gate
// chains configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	playerHandler := handler.NewPlayerHandler(cfg.GameController, cfg.TokenService)

	// Chains are composed once at startup; gates are stateless and
	// shared between them
	joinChain := gate.NewChain(cfg.Logger,
		gate.GameLookup(cfg.Storage, cfg.Expiry),
		gate.JoinWindow(),
	)
	memberChain := gate.NewChain(cfg.Logger,
		gate.Identity(cfg.TokenService),
		gate.GameLookup(cfg.Storage, cfg.Expiry),
		gate.Membership(),
	)
	cardzarOnly := gate.NewChain(cfg.Logger, gate.RequireRole(gate.RoleCardzar))
	vipOnly := gate.NewChain(cfg.Logger, gate.RequireRole(gate.RoleVIP))

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Unrestricted routes
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/game", gameHandler.Create).Methods(http.MethodPost)

	// Join is the only per-game route without the identity gate: the
	// caller has no token yet. Registered before the restricted
	// subrouter so it wins the match.
	api.Handle("/game/{gameId}/player",
		joinChain.Then(http.HandlerFunc(playerHandler.Join))).Methods(http.MethodPost)

	// Restricted routes: every request passes identity, lookup and
	// membership before reaching a handler
	restricted := api.PathPrefix("/game/{gameId}").Subrouter()
	restricted.Use(memberChain.Middleware())

	restricted.HandleFunc("", gameHandler.Get).Methods(http.MethodGet)
	restricted.HandleFunc("/card", gameHandler.SubmitCard).Methods(http.MethodPost)

	restricted.Handle("/start",
		vipOnly.Then(http.HandlerFunc(gameHandler.Start))).Methods(http.MethodPost)
	restricted.Handle("/player/{playerId}",
		vipOnly.Then(http.HandlerFunc(gameHandler.KickPlayer))).Methods(http.MethodDelete)
	restricted.Handle("/winner",
		cardzarOnly.Then(http.HandlerFunc(gameHandler.PickWinner))).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
