// Package ports defines the core interfaces for the application.
package ports

import (
	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/tt"
)

// Expander is a loaded, callable transformer plugin bound to one on-disk
// artifact. Handles are owned exclusively by the expander cache and are
// never shared outside it.
//
//go:generate mockgen -source=expander.go -destination=mocks/mock_expander.go -package=mocks
type Expander interface {
	// Expand applies the named macro. attrs is non-nil only for attribute
	// macros. The returned error is an opaque diagnostic for the caller.
	Expand(macro string, input *tt.Tree, attrs *tt.Tree) (*tt.Tree, error)

	// Macros lists the capabilities declared by the plugin.
	Macros() []abi.Macro
}

// ExpanderLoader resolves an artifact path into a callable Expander. The
// ABI-version detection and symbol resolution behind it are opaque to the
// core: given a path, it produces a handle or an error.
type ExpanderLoader interface {
	Load(path string) (Expander, error)
}
