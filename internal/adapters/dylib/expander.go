package dylib

import (
	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/tt"
)

var _ ports.Expander = (*Expander)(nil)

// Expander is a resolved plugin handle. It forwards calls to the plugin's
// registered implementation; panic containment happens at the dispatcher's
// call boundary, not here.
type Expander struct {
	path       string
	abiVersion string
	impl       abi.Expander
}

// Expand forwards to the plugin.
func (e *Expander) Expand(macro string, input *tt.Tree, attrs *tt.Tree) (*tt.Tree, error) {
	return e.impl.Expand(macro, input, attrs)
}

// Macros forwards to the plugin.
func (e *Expander) Macros() []abi.Macro {
	return e.impl.Macros()
}

// v1Bridge adapts a legacy plugin to the current contract.
type v1Bridge struct {
	impl abi.ExpanderV1
}

func (b v1Bridge) Expand(macro string, input *tt.Tree, attrs *tt.Tree) (*tt.Tree, error) {
	if attrs != nil {
		return nil, ErrAttrsUnsupported
	}
	return b.impl.Expand(macro, input)
}

func (b v1Bridge) Macros() []abi.Macro {
	return b.impl.Macros()
}
