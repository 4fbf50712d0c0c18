package factory

import (
	"context"

	"github.com/mcoot/clubregistry/internal/dependencies/mocks"
	"github.com/mcoot/clubregistry/internal/model"
	"github.com/mcoot/clubregistry/internal/storage/memory"
	"github.com/mcoot/clubregistry/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockIDs *mocks.MockIDGenerator
}

// NewTestApp creates an App backed by memory storage with a deterministic id
// generator, seeded with the fixture users
func NewTestApp() *TestApp {
	store := memory.New()
	mockIDs := mocks.NewMockIDGenerator()

	app := newWithDependencies(store, mockIDs, testutil.NopLogger())
	// Memory storage cannot fail to seed
	_ = app.Registry.Seed(context.Background(), model.FixtureUsers()...)

	return &TestApp{
		App:     app,
		MockIDs: mockIDs,
	}
}
