// Package dylib loads transformer plugins from shared objects using the Go
// plugin mechanism and resolves their versioned registration symbol.
package dylib

import (
	"errors"
	"fmt"
	"plugin"

	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	// ErrNoExpanderSymbol is returned when an artifact exports none of the
	// known registration symbols.
	ErrNoExpanderSymbol = zerr.New("artifact exports no expander symbol")

	// ErrBadSymbolType is returned when a registration symbol has the wrong type.
	ErrBadSymbolType = zerr.New("expander symbol has unexpected type")

	// ErrAttrsUnsupported is returned when an attribute tree is passed to a
	// plugin built against the v1 contract.
	ErrAttrsUnsupported = zerr.New("plugin ABI v1 does not support attribute trees")
)

var _ ports.ExpanderLoader = (*Loader)(nil)

// Loader implements ports.ExpanderLoader via plugin.Open.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load opens the artifact and resolves its expander. The returned handle is
// bound to the artifact as it existed on disk at open time; the caller keys
// it by identity and never reuses it across rebuilds.
func (l *Loader) Load(path string) (ports.Expander, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "dynamic loader rejected artifact"), "path", path)
	}

	handle, err := resolve(p, path)
	if err != nil {
		return nil, err
	}

	l.logger.Info(fmt.Sprintf("loaded transformer plugin %s (%s)", path, handle.abiVersion))
	return handle, nil
}

// symbolTable abstracts plugin.Plugin for resolution tests.
type symbolTable interface {
	Lookup(name string) (plugin.Symbol, error)
}

// resolve probes the registration symbols newest-first and adapts whatever
// contract version the plugin was built against.
func resolve(syms symbolTable, path string) (*Expander, error) {
	if sym, err := syms.Lookup(abi.SymbolV2); err == nil {
		impl, ok := asExpander(sym)
		if !ok {
			return nil, zerr.With(errors.Join(ErrBadSymbolType, zerr.New("symbol "+abi.SymbolV2)), "path", path)
		}
		return &Expander{path: path, abiVersion: "abi v2", impl: impl}, nil
	}

	if sym, err := syms.Lookup(abi.SymbolV1); err == nil {
		impl, ok := asExpanderV1(sym)
		if !ok {
			return nil, zerr.With(errors.Join(ErrBadSymbolType, zerr.New("symbol "+abi.SymbolV1)), "path", path)
		}
		return &Expander{path: path, abiVersion: "abi v1", impl: v1Bridge{impl: impl}}, nil
	}

	return nil, zerr.With(errors.Join(ErrNoExpanderSymbol, zerr.New("probed "+abi.SymbolV2+" and "+abi.SymbolV1)), "path", path)
}

// asExpander accepts both an exported interface variable (which Lookup
// returns as a pointer) and a direct implementation value.
func asExpander(sym plugin.Symbol) (abi.Expander, bool) {
	switch v := sym.(type) {
	case *abi.Expander:
		return *v, *v != nil
	case abi.Expander:
		return v, true
	default:
		return nil, false
	}
}

func asExpanderV1(sym plugin.Symbol) (abi.ExpanderV1, bool) {
	switch v := sym.(type) {
	case *abi.ExpanderV1:
		return *v, *v != nil
	case abi.ExpanderV1:
		return v, true
	default:
		return nil, false
	}
}
