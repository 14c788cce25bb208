package session

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/lgbarn/pawns-only-go/internal/errors"
	"github.com/lgbarn/pawns-only-go/internal/testutil"
)

func TestManagerCreateAndGet(t *testing.T) {
	manager := NewManager()

	game := manager.Create("Alice", "Bob")
	testutil.AssertTrue(t, game.ID() != "", "a created session has an identifier")
	testutil.AssertEqual(t, manager.Len(), 1)

	found, err := manager.Get(game.ID())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, found.ID(), game.ID())
}

func TestManagerGetUnknown(t *testing.T) {
	manager := NewManager()

	_, err := manager.Get("no-such-session")
	testutil.AssertTrue(t, stderrors.Is(err, errors.ErrSessionNotFound), "got %v", err)
}

func TestManagerRemove(t *testing.T) {
	manager := NewManager()
	game := manager.Create("Alice", "Bob")

	manager.Remove(game.ID())
	testutil.AssertEqual(t, manager.Len(), 0)

	// Removing again is a no-op.
	manager.Remove(game.ID())
	testutil.AssertEqual(t, manager.Len(), 0)
}

func TestManagerDistinctIdentifiers(t *testing.T) {
	manager := NewManager()
	a := manager.Create("Alice", "Bob")
	b := manager.Create("Carol", "Dave")
	testutil.AssertTrue(t, a.ID() != b.ID(), "sessions must get distinct identifiers")
}

func TestManagerConcurrentAccess(t *testing.T) {
	manager := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			game := manager.Create("Alice", "Bob")
			if _, err := manager.Get(game.ID()); err != nil {
				t.Errorf("Get(%q) error: %v", game.ID(), err)
			}
			manager.Remove(game.ID())
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, manager.Len(), 0)
}
