package gate

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/partycards-go/internal/model"
	"github.com/mcoot/partycards-go/internal/testutil"
)

func admitAll(name string, ran *[]string) Gate {
	return Gate{
		Name:   name,
		Reject: model.ErrBadToken,
		Check: func(r *http.Request) (*http.Request, error) {
			*ran = append(*ran, name)
			return r, nil
		},
	}
}

func rejectAll(name string, err error, ran *[]string) Gate {
	return Gate{
		Name:   name,
		Reject: err,
		Check: func(r *http.Request) (*http.Request, error) {
			*ran = append(*ran, name)
			return r, err
		},
	}
}

func next(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestChainRunsGatesInOrder(t *testing.T) {
	var ran []string
	var called bool

	chain := NewChain(testutil.NopLogger(),
		admitAll("first", &ran),
		admitAll("second", &ran),
		admitAll("third", &ran),
	)

	rr := httptest.NewRecorder()
	chain.Then(next(&called)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "third"}, ran)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestChainShortCircuitsOnFirstRejection(t *testing.T) {
	var ran []string
	var called bool

	chain := NewChain(testutil.NopLogger(),
		admitAll("first", &ran),
		rejectAll("second", model.ErrNotInGame, &ran),
		admitAll("third", &ran),
	)

	rr := httptest.NewRecorder()
	chain.Then(next(&called)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second"}, ran)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestChainContextFlowsBetweenGates(t *testing.T) {
	var seen model.PlayerID
	var called bool

	attach := Gate{
		Name:   "attach",
		Reject: model.ErrBadToken,
		Check: func(r *http.Request) (*http.Request, error) {
			return r.WithContext(WithPlayerID(r.Context(), "p1")), nil
		},
	}
	read := Gate{
		Name:   "read",
		Reject: model.ErrBadToken,
		Check: func(r *http.Request) (*http.Request, error) {
			seen = MustPlayerID(r.Context())
			return r, nil
		},
	}

	chain := NewChain(testutil.NopLogger(), attach, read)

	rr := httptest.NewRecorder()
	chain.Then(next(&called)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, model.PlayerID("p1"), seen)
	assert.True(t, called)
}

func TestChainPanicBecomesGateRejection(t *testing.T) {
	var called bool

	panicky := Gate{
		Name:   "panicky",
		Reject: model.ErrNotCardzar,
		Check: func(r *http.Request) (*http.Request, error) {
			panic("boom")
		},
	}

	chain := NewChain(testutil.NopLogger(), panicky)

	rr := httptest.NewRecorder()
	chain.Then(next(&called)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_CARDZAR")
}

func TestChainStopsOnCancelledRequest(t *testing.T) {
	var ran []string
	var called bool

	chain := NewChain(testutil.NopLogger(), admitAll("first", &ran))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	rr := httptest.NewRecorder()
	chain.Then(next(&called)).ServeHTTP(rr, req)

	assert.Empty(t, ran)
	assert.False(t, called)
}

func TestRejectionLogCarriesSessionState(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	game := &model.Game{
		ID: "g_log",
		Players: map[model.PlayerID]*model.Player{
			"p_alice": {Name: "Alice", IsCardzar: true},
			"p_bob":   {Name: "Bob"},
		},
	}

	var ran []string
	chain := NewChain(logger, rejectAll("role", model.ErrNotCardzar, &ran))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	ctx := WithPlayerID(req.Context(), "p_bob")
	ctx = WithGame(ctx, game)
	ctx = WithPlayer(ctx, game.Players["p_bob"])

	rr := httptest.NewRecorder()
	chain.Then(next(new(bool))).ServeHTTP(rr, req.WithContext(ctx))

	logged := logBuf.String()
	assert.Contains(t, logged, `"game_id":"g_log"`)
	assert.Contains(t, logged, `"player_id":"p_bob"`)
	assert.Contains(t, logged, "p_alice")
	assert.Contains(t, logged, `"player_name":"Bob"`)
	assert.Contains(t, logged, `"is_cardzar":false`)
}

func TestEmptyChainAdmits(t *testing.T) {
	var called bool

	chain := NewChain(testutil.NopLogger())

	rr := httptest.NewRecorder()
	chain.Then(next(&called)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
}
