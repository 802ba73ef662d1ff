package gate

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/partycards-go/internal/model"
	"github.com/mcoot/partycards-go/internal/services/expiry"
	"github.com/mcoot/partycards-go/internal/services/token"
	"github.com/mcoot/partycards-go/internal/storage"
)

// Identity decodes the request's credential into a caller identity.
// Must run first in restricted chains: a bad credential is rejected
// before any storage I/O happens.
func Identity(tokens *token.Service) Gate {
	return Gate{
		Name:   "identity",
		Reject: model.ErrBadToken,
		Check: func(r *http.Request) (*http.Request, error) {
			playerID, err := tokens.Verify(r.Header.Get("Authorization"))
			if err != nil {
				return r, err
			}
			return r.WithContext(WithPlayerID(r.Context(), playerID)), nil
		},
	}
}

// GameLookup fetches the game named in the route and attaches it for
// downstream gates. Every successful lookup re-arms the game's expiry;
// each touch counts as activity, not only the first.
func GameLookup(store storage.Storage, scheduler *expiry.Scheduler) Gate {
	return Gate{
		Name:   "game_lookup",
		Reject: model.ErrGameNotFound,
		Check: func(r *http.Request) (*http.Request, error) {
			id := model.GameID(mux.Vars(r)["gameId"])

			game, err := store.GetGame(r.Context(), id)
			if err != nil {
				// Storage faults are indistinguishable from a missing
				// game to the caller
				return r, model.ErrGameNotFound
			}

			scheduler.Arm(id)
			return r.WithContext(WithGame(r.Context(), game)), nil
		},
	}
}

// JoinWindow rejects once the game has started. Join path only; a
// joining caller is by definition not yet a player.
func JoinWindow() Gate {
	return Gate{
		Name:   "join_window",
		Reject: model.ErrGameStarted,
		Check: func(r *http.Request) (*http.Request, error) {
			if MustGame(r.Context()).HasStarted {
				return r, model.ErrGameStarted
			}
			return r, nil
		},
	}
}

// Membership requires the caller identity to be in the game's roster
// and attaches the resolved player for downstream gates
func Membership() Gate {
	return Gate{
		Name:   "membership",
		Reject: model.ErrNotInGame,
		Check: func(r *http.Request) (*http.Request, error) {
			game := MustGame(r.Context())
			playerID := MustPlayerID(r.Context())

			player := game.Player(playerID)
			if player == nil {
				return r, model.ErrNotInGame
			}
			return r.WithContext(WithPlayer(r.Context(), player)), nil
		},
	}
}

// Role is a named capability a gate can require of the caller's
// roster entry
type Role struct {
	Name string
	Has  func(*model.Player) bool
	Err  error
}

var (
	RoleCardzar = Role{
		Name: "cardzar",
		Has:  func(p *model.Player) bool { return p.IsCardzar },
		Err:  model.ErrNotCardzar,
	}
	RoleVIP = Role{
		Name: "vip",
		Has:  func(p *model.Player) bool { return p.IsVIP },
		Err:  model.ErrNotVIP,
	}
)

// RequireRole admits only callers whose roster entry holds the given
// role. Membership must have run earlier in the chain.
func RequireRole(role Role) Gate {
	return Gate{
		Name:   "role_" + role.Name,
		Reject: role.Err,
		Check: func(r *http.Request) (*http.Request, error) {
			if !role.Has(MustPlayer(r.Context())) {
				return r, role.Err
			}
			return r, nil
		},
	}
}
