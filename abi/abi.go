// Package abi is the contract between the expansion service and transformer
// plugins. A plugin is a Go plugin (buildmode=plugin) that exports one of the
// versioned expander symbols declared here; the service resolves the newest
// symbol it understands and forwards calls through it.
package abi

import "go.mexp.dev/mexpd/tt"

// Versioned registration symbols, newest first. A plugin exports exactly one:
//
//	var MacroExpanderV2 abi.Expander = myExpander{}
//
// Older plugins may still export MacroExpanderV1; the service adapts them.
const (
	// SymbolV2 is the current registration symbol. Its value must implement Expander.
	SymbolV2 = "MacroExpanderV2"

	// SymbolV1 is the legacy registration symbol. Its value must implement
	// ExpanderV1; attribute trees are not supported at this version.
	SymbolV1 = "MacroExpanderV1"
)

// MacroKind classifies a macro exposed by a plugin.
type MacroKind uint8

const (
	// FunctionLike macros are invoked as name!(...).
	FunctionLike MacroKind = iota
	// Attribute macros annotate an item and receive it as input.
	Attribute
	// Derive macros generate companion items for a type definition.
	Derive
)

// String returns the canonical name of the kind.
func (k MacroKind) String() string {
	switch k {
	case FunctionLike:
		return "function-like"
	case Attribute:
		return "attribute"
	case Derive:
		return "derive"
	default:
		return "unknown"
	}
}

// MacroKindFromString is the inverse of MacroKind.String. Unrecognized names
// map to FunctionLike, the most permissive kind.
func MacroKindFromString(s string) MacroKind {
	switch s {
	case "attribute":
		return Attribute
	case "derive":
		return Derive
	default:
		return FunctionLike
	}
}

// Macro names one capability exposed by a plugin.
type Macro struct {
	Name string
	Kind MacroKind
}

// Expander is the current plugin-side interface. Implementations run inside
// the service process; a panic in Expand is contained by the caller.
type Expander interface {
	// Expand applies the named macro to the input tree. attrs is non-nil only
	// for attribute macros. A non-nil error is surfaced verbatim to the
	// requesting tool as a diagnostic.
	Expand(macro string, input *tt.Tree, attrs *tt.Tree) (*tt.Tree, error)

	// Macros lists the capabilities this plugin exposes.
	Macros() []Macro
}

// ExpanderV1 is the legacy plugin-side interface, kept so plugins built
// against the previous release keep loading.
type ExpanderV1 interface {
	Expand(macro string, input *tt.Tree) (*tt.Tree, error)
	Macros() []Macro
}
