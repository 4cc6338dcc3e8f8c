// Package pkg provides the core libraries for Rackplan corridor rack layout.
//
// # Overview
//
// Rackplan turns a small set of corridor and rack parameters into fully
// resolved scene geometry. The solver never rejects input: every value is
// clamped into its feasible interval and each clamp is reported. The pkg
// directory is organized into three main areas:
//
//  1. Core solver - units, parameters, constraint propagation, geometry
//  2. Serialization - scene output and the constraint dependency graph
//  3. Infrastructure - caching, pipeline orchestration, observability
//
// # Architecture
//
// The typical data flow through Rackplan:
//
//	params.toml
//	     ↓
//	[params] package (load, normalize, resize)
//	     ↓
//	[layout] package (propagate → stack levels → envelopes → place duct/pipes)
//	     ↓
//	[scene] package (JSON scene output)
//
// # Quick Start
//
// Resolve a parameter file and emit a scene:
//
//	import (
//	    "github.com/rackworks/rackplan/pkg/layout"
//	    "github.com/rackworks/rackplan/pkg/params"
//	    "github.com/rackworks/rackplan/pkg/scene"
//	)
//
//	a, _ := params.Load("params.toml")
//	prims, rep := layout.Build(a)
//	s := scene.New(prims, rep)
//	_ = scene.WriteFile(s, "out.scene.json")
//
// # Main Packages
//
// [units] - Conversions between source units (feet, inches) and the internal
// meter-based coordinate system.
//
// [params] - Parameter aggregate: corridor, rack cross-section, and per-tier
// duct and pipe specs, with TOML load/save and prefix-preserving resize.
//
// [layout] - The constraint solver. Propagation clamps upstream values,
// stacks tier levels, resolves per-tier envelopes, and clamps duct and pipe
// placements; assembly emits frame members and service geometry.
//
// [scene] - Scene serialization (primitives plus the clamp report) as JSON.
//
// [depgraph] - The dependency structure of the solver, renderable as
// Graphviz DOT or SVG.
//
// [pipeline] - Complete load → resolve → assemble pipeline with caching,
// used by the CLI. Ensures consistent behavior across entry points.
//
// [cache] - Content-addressed scene cache with file and null backends.
//
// [observability] - Hooks for metrics and tracing without hard backend
// dependencies.
//
// [errors] - Structured error codes shared across packages.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//
// [units]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/units
// [params]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/params
// [layout]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/layout
// [scene]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/scene
// [depgraph]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/depgraph
// [pipeline]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/cache
// [observability]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/observability
// [errors]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/rackworks/rackplan/pkg/buildinfo
package pkg
