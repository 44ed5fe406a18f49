// Package wazero exposes the numffi function set to WebAssembly guests.
package wazero

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/numffi/numffi/go/boundary"
	numfferrors "github.com/numffi/numffi/go/domain/errors"
	"github.com/numffi/numffi/go/domain/numeric"
	"github.com/numffi/numffi/go/internal/abi"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

const (
	// DefaultModuleName is the host module guests import from.
	DefaultModuleName = "numffi"

	// DefaultMaxStringLen bounds the terminator search of hash_djb2 (1MB).
	DefaultMaxStringLen = 1 * 1024 * 1024

	// MaxArrayLen is the largest int64 count that fits in 32-bit linear memory.
	MaxArrayLen = math.MaxUint32 / 8
)

// validate is a package-level singleton; creating a validator per call is expensive.
var validate = validator.New()

// AdapterConfig holds configuration for the wazero adapter.
type AdapterConfig struct {
	// Logger receives debug records for rejected input. Defaults to slog.Default().
	Logger *slog.Logger `validate:"-"`

	// ModuleName is the host module name (default: "numffi").
	ModuleName string `validate:"required,printascii"`

	// MaxArrayLen caps the element count accepted by soma_array.
	MaxArrayLen uint64 `validate:"gt=0,lte=536870911"`

	// MaxStringLen caps the string length, in bytes, accepted by hash_djb2.
	// A string whose terminator lies further away yields the sentinel.
	MaxStringLen uint32 `validate:"gt=0"`
}

// AdapterOption configures the adapter.
type AdapterOption func(*AdapterConfig)

// WithModuleName sets the host module name (default: "numffi").
func WithModuleName(name string) AdapterOption {
	return func(c *AdapterConfig) {
		c.ModuleName = name
	}
}

// WithMaxStringLen sets the longest string hash_djb2 will scan.
func WithMaxStringLen(n uint32) AdapterOption {
	return func(c *AdapterConfig) {
		c.MaxStringLen = n
	}
}

// WithMaxArrayLen sets the largest element count soma_array will read.
func WithMaxArrayLen(n uint64) AdapterOption {
	return func(c *AdapterConfig) {
		c.MaxArrayLen = n
	}
}

// WithLogger sets the logger used for rejected-input diagnostics.
func WithLogger(logger *slog.Logger) AdapterOption {
	return func(c *AdapterConfig) {
		c.Logger = logger
	}
}

// defaultAdapterConfig returns the default adapter configuration.
func defaultAdapterConfig() AdapterConfig {
	return AdapterConfig{
		ModuleName:   DefaultModuleName,
		MaxStringLen: DefaultMaxStringLen,
		MaxArrayLen:  MaxArrayLen,
	}
}

// NewAdapterConfig applies opts over the defaults and validates the result.
func NewAdapterConfig(opts ...AdapterOption) (AdapterConfig, error) {
	cfg := defaultAdapterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if err := validate.Struct(cfg); err != nil {
		ce := &numfferrors.ConfigError{Err: err}
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			ce.Field = verrs[0].Field()
		}
		return cfg, ce
	}
	return cfg, nil
}

// RegisterWithRuntime creates a host module exporting the numffi functions
// and instantiates it in runtime.
//
// Each exported function:
//   - Treats offset 0 as null and returns 0 without reading memory
//   - Bounds every read against the caller's linear memory
//   - Returns 0 for anything it cannot read, and logs the reason at debug level
func RegisterWithRuntime(ctx context.Context, runtime wazero.Runtime, opts ...AdapterOption) error {
	cfg, err := NewAdapterConfig(opts...)
	if err != nil {
		return err
	}

	h := &hostFunctions{cfg: cfg}
	impls := map[string]api.GoModuleFunc{
		boundary.SymbolHashDJB2:  h.hashDJB2,
		boundary.SymbolFibonacci: h.fibonacci,
		boundary.SymbolSomaArray: h.somaArray,
	}

	builder := runtime.NewHostModuleBuilder(cfg.ModuleName)
	for _, sym := range boundary.Symbols() {
		fn, ok := impls[sym.Name]
		if !ok {
			return fmt.Errorf("wazero: no host implementation for %q", sym.Name)
		}
		params := make([]api.ValueType, len(sym.Params))
		for i, p := range sym.Params {
			params[i] = valueType(p.Kind)
		}
		builder.NewFunctionBuilder().
			WithGoModuleFunction(fn, params, []api.ValueType{valueType(sym.Result)}).
			WithParameterNames(paramNames(sym)...).
			Export(sym.Name)
	}

	if _, err := builder.Instantiate(ctx); err != nil {
		return fmt.Errorf("wazero: failed to instantiate host module %q: %w", cfg.ModuleName, err)
	}
	return nil
}

// valueType maps a boundary kind onto its wasm32 representation.
func valueType(k boundary.ValueKind) api.ValueType {
	switch k {
	case boundary.KindPointer, boundary.KindUint32:
		return api.ValueTypeI32
	default:
		return api.ValueTypeI64
	}
}

func paramNames(sym boundary.Symbol) []string {
	names := make([]string, len(sym.Params))
	for i, p := range sym.Params {
		names[i] = p.Name
	}
	return names
}

// hostFunctions holds the immutable config shared by the registered functions.
type hostFunctions struct {
	cfg AdapterConfig
}

// hashDJB2 implements hash_djb2(i32) -> i64.
func (h *hostFunctions) hashDJB2(ctx context.Context, mod api.Module, stack []uint64) {
	offset := api.DecodeU32(stack[0])
	stack[0] = boundary.Sentinel

	if offset == 0 {
		h.reject(ctx, mod, boundary.SymbolHashDJB2, "null pointer", offset)
		return
	}
	mem := mod.Memory()
	if mem == nil {
		h.reject(ctx, mod, boundary.SymbolHashDJB2, "caller has no memory", offset)
		return
	}
	size := mem.Size()
	if offset >= size {
		h.reject(ctx, mod, boundary.SymbolHashDJB2, "pointer out of bounds", offset)
		return
	}

	rest, ok := mem.Read(offset, size-offset)
	if !ok {
		h.reject(ctx, mod, boundary.SymbolHashDJB2, "pointer out of bounds", offset)
		return
	}
	view, ok := abi.TerminatedPrefix(rest, int(h.cfg.MaxStringLen))
	if !ok {
		h.reject(ctx, mod, boundary.SymbolHashDJB2, "string not terminated", offset)
		return
	}
	stack[0] = numeric.HashDJB2(view)
}

// fibonacci implements fibonacci(i32) -> i64. Every input is valid.
func (h *hostFunctions) fibonacci(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = numeric.Fibonacci(api.DecodeU32(stack[0]))
}

// somaArray implements soma_array(i32, i64) -> i64.
func (h *hostFunctions) somaArray(ctx context.Context, mod api.Module, stack []uint64) {
	offset := api.DecodeU32(stack[0])
	count := stack[1]
	stack[0] = boundary.Sentinel

	if offset == 0 {
		h.reject(ctx, mod, boundary.SymbolSomaArray, "null pointer", offset)
		return
	}
	if count == 0 {
		return
	}
	if count > h.cfg.MaxArrayLen {
		h.reject(ctx, mod, boundary.SymbolSomaArray, "array length exceeds limit", offset, "count", count)
		return
	}
	mem := mod.Memory()
	if mem == nil {
		h.reject(ctx, mod, boundary.SymbolSomaArray, "caller has no memory", offset)
		return
	}

	// count <= MaxArrayLen keeps count*8 within uint32.
	view, ok := mem.Read(offset, uint32(count*8)) //nolint:gosec // G115: bounded above
	if !ok {
		h.reject(ctx, mod, boundary.SymbolSomaArray, "array out of bounds", offset, "count", count)
		return
	}
	stack[0] = api.EncodeI64(numeric.SumLittleEndian(view))
}

func (h *hostFunctions) reject(ctx context.Context, mod api.Module, name, reason string, offset uint32, attrs ...any) {
	if !h.cfg.Logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	args := append([]any{
		"function", name,
		"guest", GetGuestName(ctx, mod),
		"reason", reason,
		"offset", offset,
	}, attrs...)
	h.cfg.Logger.DebugContext(ctx, "wazero: rejected boundary input", args...)
}
