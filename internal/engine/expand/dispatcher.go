package expand

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/tt"
	"go.trai.ch/zerr"
)

// Dispatcher is the expansion facade. It resolves the target artifact through
// the cache, brackets the invocation with the environment scope, and converts
// every failure mode, including a panicking transformer, into an error value.
//
// Calls are fully serialized: the environment and working directory are
// process-wide, so two in-flight calls would corrupt each other's snapshots.
// Deployments wanting real concurrency must run separate processes.
type Dispatcher struct {
	mu     sync.Mutex
	cache  *Cache
	logger ports.Logger
	tracer ports.Tracer

	restoreFailures atomic.Uint64
}

// NewDispatcher creates a dispatcher with its own private cache.
func NewDispatcher(loader ports.ExpanderLoader, log ports.Logger, tracer ports.Tracer) *Dispatcher {
	return &Dispatcher{
		cache:  NewCache(loader),
		logger: log,
		tracer: tracer,
	}
}

// Expand performs one expansion call. A load failure here is tagged as an
// internal-consistency problem: callers are expected to have verified the
// artifact through ListCapabilities first.
func (d *Dispatcher) Expand(ctx context.Context, req domain.ExpandRequest) (*tt.Tree, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, span := d.tracer.Start(ctx, "expand")
	defer span.End()
	span.SetAttribute("macro", req.Macro)

	handle, id, err := d.cache.GetOrLoad(req.Artifact)
	if err != nil {
		err = errors.Join(domain.ErrArtifactNotListed, err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("artifact", id.Fingerprint())

	snap := captureEnv(req.Env, req.WorkDir, d.logger)
	tree, expErr := invoke(handle, req)
	if n := snap.restore(d.logger); n > 0 {
		d.restoreFailures.Add(uint64(n))
	}

	if expErr != nil {
		span.RecordError(expErr)
		return nil, expErr
	}
	return tree, nil
}

// ListCapabilities returns the macros declared by the artifact at path. This
// is the discovery path: load failures are an ordinary, expected outcome here.
func (d *Dispatcher) ListCapabilities(ctx context.Context, path string) ([]abi.Macro, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, span := d.tracer.Start(ctx, "list_capabilities")
	defer span.End()

	handle, id, err := d.cache.GetOrLoad(path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("artifact", id.Fingerprint())

	return listMacros(handle)
}

// Stats reports counters surfaced in the daemon status.
type Stats struct {
	LoadedArtifacts int
	RestoreFailures uint64
}

// Stats returns the dispatcher's current counters.
func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Stats{
		LoadedArtifacts: d.cache.Len(),
		RestoreFailures: d.restoreFailures.Load(),
	}
}

// invoke calls into the handle with panic containment: a transformer that
// aborts abnormally yields a diagnostic instead of taking down the process.
func invoke(handle ports.Expander, req domain.ExpandRequest) (tree *tt.Tree, err error) {
	defer func() {
		if r := recover(); r != nil {
			tree = nil
			err = errors.Join(domain.ErrExpandFailed, zerr.New("transformer panicked: "+fmt.Sprint(r)))
		}
	}()

	tree, err = handle.Expand(req.Macro, req.Input, req.Attrs)
	if err != nil {
		err = errors.Join(domain.ErrExpandFailed, err)
	}
	return tree, err
}

// listMacros reads the handle's capability list with the same containment.
func listMacros(handle ports.Expander) (macros []abi.Macro, err error) {
	defer func() {
		if r := recover(); r != nil {
			macros = nil
			err = errors.Join(domain.ErrArtifactLoad, zerr.New("capability listing panicked: "+fmt.Sprint(r)))
		}
	}()

	return handle.Macros(), nil
}
