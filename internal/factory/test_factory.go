package factory

import (
	"time"

	"github.com/mcoot/blackjack-go/internal/dependencies/mocks"
	"github.com/mcoot/blackjack-go/internal/services/auth"
	"github.com/mcoot/blackjack-go/internal/storage/memory"
	"github.com/mcoot/blackjack-go/internal/testutil"
)

// StubVerifier accepts exactly one signature string, regardless of
// address and message. It stands in for real wallet verification in
// tests.
type StubVerifier struct {
	ValidSignature string
}

// Verify reports whether the presented signature is the configured one
func (v StubVerifier) Verify(_, _, signature string) (bool, error) {
	return signature != "" && signature == v.ValidSignature, nil
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MemStore   *memory.Store
	Verifier   StubVerifier
}

// NewTestApp creates an App configured for testing with mocked
// dependencies: memory storage, a fixed clock, queued randomness and a
// stub signature verifier.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	verifier := StubVerifier{ValidSignature: "test-signature"}

	authCfg := auth.DefaultConfig()
	authCfg.Secret = []byte("test-secret")

	app := newWithDependencies(store, mockClock, mockRandom, verifier, authCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MemStore:   store,
		Verifier:   verifier,
	}
}
