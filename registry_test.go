package gale

import (
	"errors"
	"testing"
)

// namedEngine is a minimal Engine for exercising registry selection.
type namedEngine struct {
	name string
}

func (e *namedEngine) Name() string          { return e.name }
func (e *namedEngine) Init(Subsystem) error  { return nil }
func (e *namedEngine) Quit(Subsystem)        {}
func (e *namedEngine) Events() EventQueue    { return nil }
func (e *namedEngine) Windows() WindowDriver { return nil }

func stubFactory(name string) EngineFactory {
	return func() (Engine, error) {
		return &namedEngine{name: name}, nil
	}
}

// TestRegistryPriorityOrder verifies List sorts by priority, highest
// first.
func TestRegistryPriorityOrder(t *testing.T) {
	r := &Registry{}
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)
	r.Register("mid", 50, stubFactory("mid"), nil)

	got := r.List()
	want := []string{"high", "mid", "low"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestRegistryAvailableFilters verifies Available excludes backends
// whose probe reports false.
func TestRegistryAvailableFilters(t *testing.T) {
	r := &Registry{}
	r.Register("yes", 10, stubFactory("yes"), func() bool { return true })
	r.Register("no", 100, stubFactory("no"), func() bool { return false })

	got := r.Available()
	if len(got) != 1 || got[0] != "yes" {
		t.Errorf("Available() = %v, want [yes]", got)
	}
}

// TestRegistryNewEnginePicksBest verifies selection falls through to the
// highest-priority available backend.
func TestRegistryNewEnginePicksBest(t *testing.T) {
	r := &Registry{}
	r.Register("fallback", 10, stubFactory("fallback"), nil)
	r.Register("native", 100, stubFactory("native"), nil)
	r.Register("absent", 200, stubFactory("absent"), func() bool { return false })

	e, err := r.newEngine()
	if err != nil {
		t.Fatalf("newEngine() error: %v", err)
	}
	if e.Name() != "native" {
		t.Errorf("Name() = %q, want %q", e.Name(), "native")
	}
}

// TestRegistryNewEngineSkipsFailingFactory verifies a factory error
// moves selection on to the next candidate.
func TestRegistryNewEngineSkipsFailingFactory(t *testing.T) {
	r := &Registry{}
	r.Register("broken", 100, func() (Engine, error) {
		return nil, errors.New("boom")
	}, nil)
	r.Register("working", 10, stubFactory("working"), nil)

	e, err := r.newEngine()
	if err != nil {
		t.Fatalf("newEngine() error: %v", err)
	}
	if e.Name() != "working" {
		t.Errorf("Name() = %q, want %q", e.Name(), "working")
	}
}

// TestRegistryNoBackend tests the empty-registry error.
func TestRegistryNoBackend(t *testing.T) {
	r := &Registry{}
	if _, err := r.newEngine(); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("newEngine() error = %v, want ErrNoBackendAvailable", err)
	}
}

// TestRegistryByNameErrors verifies the typed lookup errors.
func TestRegistryByNameErrors(t *testing.T) {
	r := &Registry{}
	r.Register("down", 10, stubFactory("down"), func() bool { return false })

	_, err := r.newEngineByName("missing")
	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "missing" {
		t.Errorf("error = %v, want BackendNotFoundError{missing}", err)
	}

	_, err = r.newEngineByName("down")
	var unavail *BackendUnavailableError
	if !errors.As(err, &unavail) || unavail.Name != "down" {
		t.Errorf("error = %v, want BackendUnavailableError{down}", err)
	}
}

// TestRegistryGetCopies verifies Get returns a copy, not the live entry.
func TestRegistryGetCopies(t *testing.T) {
	r := &Registry{}
	r.Register("x", 10, stubFactory("x"), nil)

	entry, ok := r.Get("x")
	if !ok {
		t.Fatal("Get() reported missing entry")
	}
	entry.Priority = 9999

	again, _ := r.Get("x")
	if again.Priority != 10 {
		t.Errorf("Priority = %d after caller mutation, want 10", again.Priority)
	}
}

// TestRegistryUnregister verifies removal.
func TestRegistryUnregister(t *testing.T) {
	r := &Registry{}
	r.Register("x", 10, stubFactory("x"), nil)
	r.Unregister("x")
	if _, ok := r.Get("x"); ok {
		t.Error("entry still present after Unregister")
	}
}

// TestGlobalMemoryBackend verifies the in-process backend registers
// itself on import.
func TestGlobalMemoryBackend(t *testing.T) {
	entry, ok := Lookup("memory")
	if !ok {
		t.Fatal("memory backend not registered")
	}
	if entry.Priority != 10 {
		t.Errorf("Priority = %d, want 10", entry.Priority)
	}
	if !entry.Available() {
		t.Error("memory backend should always be available")
	}
}
