package pipeline

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rackworks/rackplan/pkg/cache"
	"github.com/rackworks/rackplan/pkg/params"
)

func TestOptionsValidate(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err == nil {
		t.Error("ValidateAndSetDefaults() = nil, want error without params")
	}

	o = Options{Params: params.Default()}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if o.Logger == nil {
		t.Error("Logger not defaulted")
	}

	// Idempotent
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error = %v", err)
	}
}

func TestExecuteInMemory(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	a := params.Default()
	before := a.Clone()

	result, err := r.Execute(context.Background(), Options{Params: a})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Stats.RunID == "" {
		t.Error("Stats.RunID is empty")
	}
	if result.Stats.TierCount != 2 {
		t.Errorf("Stats.TierCount = %d, want 2", result.Stats.TierCount)
	}
	if len(result.Scene.Primitives) == 0 {
		t.Error("Execute() emitted no primitives")
	}
	if result.Stats.PrimitiveCount != len(result.Scene.Primitives) {
		t.Errorf("Stats.PrimitiveCount = %d, want %d", result.Stats.PrimitiveCount, len(result.Scene.Primitives))
	}
	if result.ParamsHash == "" {
		t.Error("ParamsHash is empty")
	}

	// The caller's aggregate is never mutated.
	if !reflect.DeepEqual(a, before) {
		t.Error("Execute() mutated the input aggregate")
	}
}

func TestExecuteFromFile(t *testing.T) {
	a := params.Default()
	path := filepath.Join(t.TempDir(), "params.toml")
	if err := params.Save(a, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{ParamsPath: path})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Stats.TierCount != 2 {
		t.Errorf("Stats.TierCount = %d, want 2", result.Stats.TierCount)
	}
}

func TestExecuteMissingFile(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{
		ParamsPath: filepath.Join(t.TempDir(), "absent.toml"),
	})
	if err == nil {
		t.Error("Execute() = nil error for missing file")
	}
}

func TestExecuteSceneCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	ctx := context.Background()
	opts := Options{Params: params.Default(), IncludeReport: true}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheInfo.SceneHit {
		t.Error("first run reported a cache hit")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if !second.CacheInfo.SceneHit {
		t.Error("second run missed the cache")
	}
	if !reflect.DeepEqual(first.Scene.Primitives, second.Scene.Primitives) {
		t.Error("cached scene differs from computed scene")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute() error = %v", err)
	}
	if third.CacheInfo.SceneHit {
		t.Error("refresh run reported a cache hit")
	}
}

func TestExecuteReportToggle(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()
	ctx := context.Background()

	// Out-of-range offset forces a clamp warning.
	a := params.Default()
	a.Tiers[0].Duct.Enabled = true
	a.Tiers[0].Duct.Offset = 400

	with, err := r.Execute(ctx, Options{Params: a, IncludeReport: true})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if with.Scene.Report == nil || len(with.Scene.Report.Warnings) == 0 {
		t.Error("IncludeReport=true produced no embedded report")
	}
	if with.Stats.WarningCount == 0 {
		t.Error("Stats.WarningCount = 0, want clamp warnings")
	}

	without, err := r.Execute(ctx, Options{Params: a})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if without.Scene.Report != nil {
		t.Error("IncludeReport=false embedded a report")
	}
}
