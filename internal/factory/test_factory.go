package factory

import (
	"time"

	cachememory "github.com/playforge/bangate/internal/cache/memory"
	"github.com/playforge/bangate/internal/dependencies/mocks"
	"github.com/playforge/bangate/internal/storage"
	"github.com/playforge/bangate/internal/storage/memory"
	"github.com/playforge/bangate/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls time for cache TTL and audit timestamps
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with an in-memory
// store, in-memory cache and a mocked clock
func NewTestApp() *TestApp {
	return NewTestAppWithStore(memory.New())
}

// NewTestAppWithStore creates a test App over a caller-provided store,
// letting tests substitute failing or instrumented doubles
func NewTestAppWithStore(store storage.Store) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	verdictCache := cachememory.New(mockClock)

	app := newWithDependencies(store, verdictCache, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
