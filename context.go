package gale

import (
	"fmt"
	"io"
)

// Context owns an engine instance and the subsystems initialized on it.
// It replaces the process-wide global state native multimedia libraries
// keep: every wrapper (windows, renderers, event sources, input queries)
// is constructed from a Context, which keeps the library testable in
// isolation and makes backend selection explicit.
//
// A Context is bound to the goroutine (and, for native backends, the OS
// thread) that created it. Context implements io.Closer.
type Context struct {
	engine Engine
	sub    Subsystem
	closed bool
}

var _ io.Closer = (*Context)(nil)

// Option configures a Context during creation.
type Option func(*contextOptions)

type contextOptions struct {
	engine  Engine
	backend string
	sub     Subsystem
}

func defaultContextOptions() contextOptions {
	return contextOptions{
		sub: SubsystemVideo | SubsystemEvents,
	}
}

// WithBackend selects a registered backend by name.
func WithBackend(name string) Option {
	return func(o *contextOptions) {
		o.backend = name
	}
}

// WithEngine injects an engine instance directly, bypassing the registry.
// Intended for tests and embedders that construct backends themselves.
func WithEngine(e Engine) Option {
	return func(o *contextOptions) {
		o.engine = e
	}
}

// WithSubsystems sets the subsystems to initialize.
// The default is video and events.
func WithSubsystems(sub Subsystem) Option {
	return func(o *contextOptions) {
		o.sub = sub
	}
}

// New creates a Context: it selects an engine backend, initializes the
// requested subsystems on it, and returns the handle owning both.
//
// Backend selection order: WithEngine, then WithBackend, then the
// highest-priority available registered backend.
func New(opts ...Option) (*Context, error) {
	options := defaultContextOptions()
	for _, opt := range opts {
		opt(&options)
	}

	engine := options.engine
	var err error
	switch {
	case engine != nil:
	case options.backend != "":
		engine, err = globalRegistry.newEngineByName(options.backend)
	default:
		engine, err = globalRegistry.newEngine()
	}
	if err != nil {
		return nil, err
	}

	propagateLogger(engine)

	if err := engine.Init(options.sub); err != nil {
		return nil, fmt.Errorf("gale: init %q: %w", engine.Name(), err)
	}

	Logger().Info("engine initialized",
		"backend", engine.Name(),
		"subsystems", fmt.Sprintf("%#x", uint32(options.sub)))

	return &Context{engine: engine, sub: options.sub}, nil
}

// Engine returns the engine backing this context.
func (c *Context) Engine() Engine {
	return c.engine
}

// Events returns the engine's event queue.
func (c *Context) Events() EventQueue {
	return c.engine.Events()
}

// Subsystems returns the subsystem mask the context was initialized with.
func (c *Context) Subsystems() Subsystem {
	return c.sub
}

// Close shuts the initialized subsystems down.
// Close is idempotent; multiple calls are safe.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.engine.Quit(c.sub)
	Logger().Info("engine shut down", "backend", c.engine.Name())
	return nil
}
