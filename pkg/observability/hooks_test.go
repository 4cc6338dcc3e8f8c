package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "params.toml")
	p.OnLoadComplete(ctx, "params.toml", 3, time.Second, nil)
	p.OnPropagateStart(ctx, 3)
	p.OnPropagateComplete(ctx, 3, 2, time.Second, nil)
	p.OnAssembleStart(ctx, 3)
	p.OnAssembleComplete(ctx, 42, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "scene")
	c.OnCacheMiss(ctx, "scene")
	c.OnCacheSet(ctx, "scene", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	SetCacheHooks(nil)
	if Cache() != customCache {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	p := &testPipelineHooks{}
	SetPipelineHooks(p)

	ctx := context.Background()
	Pipeline().OnPropagateStart(ctx, 3)
	Pipeline().OnPropagateComplete(ctx, 3, 1, time.Millisecond, nil)

	if p.propagateStarts != 1 {
		t.Errorf("propagateStarts = %d, want 1", p.propagateStarts)
	}
	if p.propagateCompletes != 1 {
		t.Errorf("propagateCompletes = %d, want 1", p.propagateCompletes)
	}

	c := &testCacheHooks{}
	SetCacheHooks(c)
	Cache().OnCacheHit(ctx, "scene")
	Cache().OnCacheMiss(ctx, "scene")
	Cache().OnCacheSet(ctx, "scene", 10)

	if c.hits != 1 || c.misses != 1 || c.sets != 1 {
		t.Errorf("cache events = %d/%d/%d, want 1/1/1", c.hits, c.misses, c.sets)
	}
}

// testPipelineHooks counts pipeline events.
type testPipelineHooks struct {
	propagateStarts    int
	propagateCompletes int
}

func (h *testPipelineHooks) OnLoadStart(context.Context, string) {}
func (h *testPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
}
func (h *testPipelineHooks) OnPropagateStart(context.Context, int) { h.propagateStarts++ }
func (h *testPipelineHooks) OnPropagateComplete(context.Context, int, int, time.Duration, error) {
	h.propagateCompletes++
}
func (h *testPipelineHooks) OnAssembleStart(context.Context, int)                          {}
func (h *testPipelineHooks) OnAssembleComplete(context.Context, int, time.Duration, error) {}

// testCacheHooks counts cache events.
type testCacheHooks struct {
	hits, misses, sets int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }
