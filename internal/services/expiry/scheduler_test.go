package expiry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/partycards-go/internal/model"
	"github.com/mcoot/partycards-go/internal/storage/memory"
	"github.com/mcoot/partycards-go/internal/testutil"
)

func saveGame(t *testing.T, store *memory.Storage, id model.GameID) {
	t.Helper()
	err := store.SaveGame(context.Background(), &model.Game{
		ID:      id,
		Players: map[model.PlayerID]*model.Player{},
	})
	require.NoError(t, err)
}

func TestArmDeletesGameAfterTTL(t *testing.T) {
	store := memory.New()
	saveGame(t, store, "game-1")

	s := New(store, Config{TTL: 10 * time.Millisecond}, testutil.NopLogger())
	defer s.Stop()

	s.Arm("game-1")

	assert.Eventually(t, func() bool {
		_, err := store.GetGame(context.Background(), "game-1")
		return err != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, s.pending())
}

func TestRearmIsIdempotent(t *testing.T) {
	store := memory.New()
	saveGame(t, store, "game-1")

	s := New(store, Config{TTL: time.Hour}, testutil.NopLogger())
	defer s.Stop()

	for i := 0; i < 10; i++ {
		s.Arm("game-1")
	}

	assert.Equal(t, 1, s.pending())
}

func TestRearmSupersedesPriorTimer(t *testing.T) {
	store := memory.New()
	saveGame(t, store, "game-1")

	s := New(store, Config{TTL: 50 * time.Millisecond}, testutil.NopLogger())
	defer s.Stop()

	// Keep touching the game more often than the TTL; it must survive
	for i := 0; i < 5; i++ {
		s.Arm("game-1")
		time.Sleep(20 * time.Millisecond)
	}

	_, err := store.GetGame(context.Background(), "game-1")
	assert.NoError(t, err)
}

func TestConcurrentRearmSingleTimer(t *testing.T) {
	store := memory.New()
	saveGame(t, store, "game-1")

	s := New(store, Config{TTL: time.Hour}, testutil.NopLogger())
	defer s.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Arm("game-1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.pending())
}

func TestCancel(t *testing.T) {
	store := memory.New()
	saveGame(t, store, "game-1")

	s := New(store, Config{TTL: 10 * time.Millisecond}, testutil.NopLogger())
	defer s.Stop()

	s.Arm("game-1")
	s.Cancel("game-1")
	assert.Equal(t, 0, s.pending())

	time.Sleep(50 * time.Millisecond)
	_, err := store.GetGame(context.Background(), "game-1")
	assert.NoError(t, err)
}

func TestExpireMissingGameIsBestEffort(t *testing.T) {
	store := memory.New()

	s := New(store, Config{TTL: 5 * time.Millisecond}, testutil.NopLogger())
	defer s.Stop()

	// Never saved; deletion is a no-op and must not panic
	s.Arm("game-1")

	assert.Eventually(t, func() bool { return s.pending() == 0 }, time.Second, 5*time.Millisecond)
}
