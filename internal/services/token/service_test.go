package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/partycards-go/internal/dependencies/mocks"
	"github.com/mcoot/partycards-go/internal/model"
	"github.com/mcoot/partycards-go/internal/testutil"
)

func newTestService(t *testing.T) (*Service, *mocks.MockClock) {
	t.Helper()

	clk := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := New(Config{Secret: "test-secret", TTL: time.Hour}, clk, testutil.NopLogger())
	return svc, clk
}

func TestIssueAndVerify(t *testing.T) {
	svc, _ := newTestService(t)

	signed, err := svc.Issue("p1")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	playerID, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, model.PlayerID("p1"), playerID)
}

func TestVerifyBearerPrefix(t *testing.T) {
	svc, _ := newTestService(t)

	signed, err := svc.Issue("p1")
	require.NoError(t, err)

	playerID, err := svc.Verify("Bearer " + signed)
	require.NoError(t, err)
	assert.Equal(t, model.PlayerID("p1"), playerID)
}

func TestVerifyGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	for _, raw := range []string{"", "   ", "Bearer ", "not-a-jwt", "a.b.c"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, model.ErrBadToken, "credential %q", raw)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc, clk := newTestService(t)

	signed, err := svc.Issue("p1")
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, model.ErrBadToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	svc, clk := newTestService(t)

	other := New(Config{Secret: "other-secret", TTL: time.Hour}, clk, testutil.NopLogger())
	signed, err := other.Issue("p1")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, model.ErrBadToken)
}
