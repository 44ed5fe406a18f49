package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/numffi/numffi/go/boundary"
	numfferrors "github.com/numffi/numffi/go/domain/errors"
	numffiwazero "github.com/numffi/numffi/go/infrastructure/wazero"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// Executor owns a wazero runtime with WASI and the numffi host module.
type Executor struct {
	runtime     wazero.Runtime
	logger      *slog.Logger
	adapterOpts []numffiwazero.AdapterOption
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	adapterOpts := append([]numffiwazero.AdapterOption{numffiwazero.WithLogger(e.logger)}, e.adapterOpts...)
	if err := numffiwazero.RegisterWithRuntime(ctx, rt, adapterOpts...); err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor, including every instance.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Instance is an instantiated guest exporting the numffi function set.
// An Instance must not be used by multiple goroutines at once.
type Instance struct {
	module api.Module
	logger *slog.Logger
}

// LoadModule instantiates wasmBytes under name and checks that it exports
// every numffi symbol. Reactor modules get their _initialize export called.
func (e *Executor) LoadModule(ctx context.Context, name string, wasmBytes []byte) (*Instance, error) {
	cfg := wazero.NewModuleConfig().WithName(name)
	mod, err := e.runtime.InstantiateWithConfig(ctx, wasmBytes, cfg)
	if err != nil {
		return nil, &numfferrors.GuestError{Operation: "instantiate", Err: err}
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			_ = mod.Close(ctx)
			return nil, &numfferrors.GuestError{Operation: "call", Export: "_initialize", Err: err}
		}
	}

	for _, sym := range boundary.Symbols() {
		if mod.ExportedFunction(sym.Name) == nil {
			_ = mod.Close(ctx)
			return nil, &numfferrors.GuestError{Operation: "instantiate", Export: sym.Name, Err: numfferrors.ErrExportNotFound}
		}
	}

	e.logger.DebugContext(ctx, "host: guest loaded", "guest", mod.Name())
	return &Instance{module: mod, logger: e.logger}, nil
}

// Name returns the module name the instance was loaded under.
func (p *Instance) Name() string {
	return p.module.Name()
}

// Memory returns the guest's linear memory, where inputs must be placed.
func (p *Instance) Memory() api.Memory {
	return p.module.Memory()
}

// HashDJB2 calls the guest's hash_djb2 with the string at offset.
func (p *Instance) HashDJB2(ctx context.Context, offset uint32) (uint64, error) {
	return p.call(ctx, boundary.SymbolHashDJB2, api.EncodeU32(offset))
}

// Fibonacci calls the guest's fibonacci.
func (p *Instance) Fibonacci(ctx context.Context, n uint32) (uint64, error) {
	return p.call(ctx, boundary.SymbolFibonacci, api.EncodeU32(n))
}

// SumArray calls the guest's soma_array over count int64 values at offset.
func (p *Instance) SumArray(ctx context.Context, offset uint32, count uint64) (int64, error) {
	res, err := p.call(ctx, boundary.SymbolSomaArray, api.EncodeU32(offset), count)
	return int64(res), err //nolint:gosec // G115: i64 result carries an int64
}

// Close closes the guest module.
func (p *Instance) Close(ctx context.Context) error {
	return p.module.Close(ctx)
}

func (p *Instance) call(ctx context.Context, name string, params ...uint64) (uint64, error) {
	f := p.module.ExportedFunction(name)
	if f == nil {
		return 0, &numfferrors.GuestError{Operation: "call", Export: name, Err: numfferrors.ErrExportNotFound}
	}

	results, err := f.Call(numffiwazero.WithGuestName(ctx, p.module.Name()), params...)
	if err != nil {
		p.logger.ErrorContext(ctx, "host: guest call failed", "guest", p.module.Name(), "function", name, "error", err)
		return 0, &numfferrors.GuestError{Operation: "call", Export: name, Err: err}
	}
	if len(results) == 0 {
		return 0, &numfferrors.GuestError{Operation: "call", Export: name, Err: fmt.Errorf("no results")}
	}
	return results[0], nil
}
