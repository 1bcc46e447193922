// Package gale provides a type-safe Go layer over a native multimedia
// engine (windowing, 2D rendering, input).
//
// # Overview
//
// gale wraps an engine backend (SDL2 by default) behind small typed
// interfaces: windows and renderers are handles with explicit Close,
// input events are a closed set of typed records instead of a raw tagged
// union, and process-wide engine state is held by an explicit Context
// rather than package globals.
//
// # Quick Start
//
//	import (
//	    "github.com/gale-engine/gale"
//	    "github.com/gale-engine/gale/event"
//	    "github.com/gale-engine/gale/window"
//
//	    _ "github.com/gale-engine/gale/backend/sdl" // enable the SDL2 backend
//	)
//
//	ctx, err := gale.New(gale.WithSubsystems(gale.SubsystemVideo))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	win, err := window.New(ctx, window.Options{Title: "hello", Size: gale.Sz(800, 600)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer win.Close()
//
//	src := event.NewSource(ctx)
//	for running {
//	    for ev := range src.All() {
//	        switch ev := ev.(type) {
//	        case event.Quit:
//	            running = false
//	        case event.Key:
//	            _ = ev.Scancode
//	        }
//	    }
//	}
//
// # Architecture
//
// The library is organized into:
//   - Root package: engine driver interfaces, backend registry, Context,
//     raw event records, geometry value types
//   - event: typed events, converter, polling (eager Range, lazy Cursor)
//   - window, render, surface, input: the wrapper surface
//   - backend/sdl, backend/term: engine backends
//
// # Backends
//
// Backends register themselves through the registry; importing a backend
// package for side effects makes it available. The built-in "memory"
// backend is always available and runs fully in-process, which keeps the
// rest of the library usable headless and under test.
package gale
