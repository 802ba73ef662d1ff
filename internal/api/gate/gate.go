package gate

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/partycards-go/internal/api/apierr"
)

// Gate is a single named check applied to a request in flight. Check
// either admits the request, possibly with an augmented context, or
// rejects it with an error describing why. Gates are stateless and
// reusable across chains; only the request context is request-scoped.
type Gate struct {
	Name string

	// Reject is the error substituted when Check panics, so a fault
	// inside a gate surfaces as that gate's rejection rather than a
	// server error
	Reject error

	Check func(r *http.Request) (*http.Request, error)
}

// Chain is an ordered, short-circuiting sequence of gates. The first
// rejection writes the response and stops the chain; no later gate
// runs. Side effects already committed by earlier gates stand.
type Chain struct {
	logger *slog.Logger
	gates  []Gate
}

// NewChain creates a chain from the given gates, applied in order
func NewChain(logger *slog.Logger, gates ...Gate) *Chain {
	return &Chain{
		logger: logger,
		gates:  gates,
	}
}

// Middleware adapts the chain for use with mux Router.Use
func (c *Chain) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return c.Then(next)
	}
}

// Then returns a handler that runs the chain and, if every gate
// admits, hands off to next
func (c *Chain) Then(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, g := range c.gates {
			// Stop invoking gates once the request is cancelled
			if r.Context().Err() != nil {
				return
			}

			admitted, err := c.run(g, r)
			if err != nil {
				c.logRejection(g, r, err)
				apierr.WriteError(w, err)
				return
			}
			r = admitted
		}

		next.ServeHTTP(w, r)
	})
}

// run evaluates a single gate, converting a panic into the gate's
// declared rejection
func (c *Chain) run(g Gate, r *http.Request) (admitted *http.Request, err error) {
	defer func() {
		if p := recover(); p != nil {
			c.logger.Error("gate panicked",
				slog.String("gate", g.Name),
				slog.Any("panic", p),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			admitted, err = r, g.Reject
		}
	}()

	return g.Check(r)
}

// logRejection records the rejection with whatever identity and
// session state earlier gates attached
func (c *Chain) logRejection(g Gate, r *http.Request, err error) {
	attrs := []any{
		slog.String("gate", g.Name),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("reason", err.Error()),
	}
	if playerID, ok := PlayerID(r.Context()); ok {
		attrs = append(attrs, slog.String("player_id", string(playerID)))
	}
	if game := Game(r.Context()); game != nil {
		attrs = append(attrs,
			slog.String("game_id", string(game.ID)),
			slog.Any("players", game.PlayerIDs()),
		)
	}
	if player := Player(r.Context()); player != nil {
		attrs = append(attrs,
			slog.String("player_name", player.Name),
			slog.Bool("is_cardzar", player.IsCardzar),
			slog.Bool("is_vip", player.IsVIP),
		)
	}

	c.logger.Warn("request rejected", attrs...)
}
