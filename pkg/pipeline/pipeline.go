// Package pipeline provides the core layout pipeline for Rackplan.
//
// This package implements the complete load → resolve → assemble pipeline
// that can be used by CLI and library consumers. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and normalize a parameter aggregate from a TOML file
//  2. Resolve: Propagate constraints, clamping every value into range
//  3. Assemble: Emit the scene (frame members, ducts, pipes) from the
//     resolved parameters
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{ParamsPath: "params.toml"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := scene.Marshal(result.Scene)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rackworks/rackplan/pkg/cache"
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/scene"
)

// Options contains all configuration for the layout pipeline.
type Options struct {
	// ParamsPath is the TOML parameter file to load. Ignored when Params is set.
	ParamsPath string `json:"params_path,omitempty"`

	// Params is an in-memory aggregate. Takes precedence over ParamsPath.
	Params *params.Aggregate `json:"params,omitempty"`

	// IncludeReport embeds the clamp report in the emitted scene.
	IncludeReport bool `json:"include_report,omitempty"`

	// Refresh bypasses the cache and recomputes the scene.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Params == nil && o.ParamsPath == "" {
		return fmt.Errorf("params or params_path is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SceneKeyOpts returns cache key options for the scene stage.
func (o *Options) SceneKeyOpts() cache.SceneKeyOpts {
	return cache.SceneKeyOpts{IncludeReport: o.IncludeReport}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Params is the resolved (clamped and normalized) aggregate.
	Params *params.Aggregate

	// ParamsHash is the content hash of the resolved aggregate.
	ParamsHash string

	// Scene is the emitted geometry plus the clamp report.
	Scene scene.Scene

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the scene came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RunID          string
	TierCount      int
	PrimitiveCount int
	WarningCount   int
	LoadTime       time.Duration
	ResolveTime    time.Duration
	AssembleTime   time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	SceneHit bool // Whether the scene came from cache
}
