package factory

import (
	"time"

	"github.com/mcoot/partycards-go/internal/dependencies/mocks"
	"github.com/mcoot/partycards-go/internal/services/expiry"
	"github.com/mcoot/partycards-go/internal/services/token"
	"github.com/mcoot/partycards-go/internal/storage/memory"
	"github.com/mcoot/partycards-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	tokenCfg := token.Config{Secret: "test-secret", TTL: time.Hour}
	app := newWithDependencies(store, mockClock, mockRandom, tokenCfg, expiry.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
