package domain

import "go.mexp.dev/mexpd/tt"

// ExpandRequest describes one expansion call. It is immutable once built.
type ExpandRequest struct {
	// Artifact is the path of the transformer plugin to invoke.
	Artifact string
	// Macro is the name of the capability to apply.
	Macro string
	// Input is the tree the macro operates on.
	Input *tt.Tree
	// Attrs is the attribute tree, present only for attribute macros.
	Attrs *tt.Tree
	// Env holds environment variable overrides applied for the duration of
	// the call and restored afterwards.
	Env map[string]string
	// WorkDir, if non-empty, is the working directory for the call.
	WorkDir string
}
