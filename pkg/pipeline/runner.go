package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/rackworks/rackplan/pkg/cache"
	"github.com/rackworks/rackplan/pkg/layout"
	"github.com/rackworks/rackplan/pkg/observability"
	"github.com/rackworks/rackplan/pkg/params"
	"github.com/rackworks/rackplan/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → resolve → assemble pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}
	result.Stats.RunID = uuid.NewString()

	// Stage 1: Load
	loadStart := time.Now()
	a, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.TierCount = len(a.Tiers)

	// Stage 2: Resolve
	resolveStart := time.Now()
	observability.Pipeline().OnPropagateStart(ctx, len(a.Tiers))
	rep := layout.Propagate(a)
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.WarningCount = len(rep.Warnings)
	observability.Pipeline().OnPropagateComplete(ctx, len(a.Tiers), len(rep.Warnings), result.Stats.ResolveTime, nil)

	result.Params = a
	if data, err := params.Marshal(a); err == nil {
		result.ParamsHash = cache.Hash(data)
	}

	r.Logger.Info("resolved constraints",
		"tiers", len(a.Tiers),
		"warnings", len(rep.Warnings),
		"duration", result.Stats.ResolveTime)

	// Stage 3: Assemble (cached by resolved-parameter hash)
	assembleStart := time.Now()
	sc, sceneHit, err := r.AssembleWithCacheInfo(ctx, a, rep, result.ParamsHash, opts)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Scene = sc
	result.Stats.AssembleTime = time.Since(assembleStart)
	result.Stats.PrimitiveCount = len(sc.Primitives)
	result.CacheInfo.SceneHit = sceneHit

	r.Logger.Info("assembled scene",
		"primitives", len(sc.Primitives),
		"cached", sceneHit,
		"duration", result.Stats.AssembleTime)

	return result, nil
}

// Load reads the parameter aggregate for the run. In-memory parameters are
// cloned so the caller's copy is never mutated by propagation.
func (r *Runner) Load(ctx context.Context, opts Options) (*params.Aggregate, error) {
	if opts.Params != nil {
		return opts.Params.Clone(), nil
	}

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.ParamsPath)
	a, err := params.Load(opts.ParamsPath)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.ParamsPath, 0, time.Since(start), err)
		return nil, err
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.ParamsPath, len(a.Tiers), time.Since(start), nil)
	return a, nil
}

// AssembleWithCacheInfo emits the scene with caching and returns cache hit info.
// The aggregate must already be resolved; paramsHash keys the cache entry.
func (r *Runner) AssembleWithCacheInfo(ctx context.Context, a *params.Aggregate, rep *layout.Report, paramsHash string, opts Options) (scene.Scene, bool, error) {
	cacheKey := r.Keyer.SceneKey(paramsHash, opts.SceneKeyOpts())

	if !opts.Refresh && paramsHash != "" {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := scene.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "scene")
				return cached, true, nil
			}
			// Deserialization failure falls through to recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "scene")
	}

	start := time.Now()
	observability.Pipeline().OnAssembleStart(ctx, len(a.Tiers))
	prims := layout.Assemble(a, rep)
	observability.Pipeline().OnAssembleComplete(ctx, len(prims), time.Since(start), nil)

	sc := scene.New(prims, rep)
	if !opts.IncludeReport {
		sc.Report = nil
	}

	if paramsHash != "" {
		if data, err := scene.Marshal(sc); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLScene); err == nil {
				observability.Cache().OnCacheSet(ctx, "scene", len(data))
			}
		}
	}

	return sc, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
