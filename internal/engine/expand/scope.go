package expand

import (
	"fmt"
	"os"

	"go.mexp.dev/mexpd/internal/core/ports"
)

// envSnapshot records the process state touched by one expansion call: the
// prior value (or absence) of every overridden variable, and the prior
// working directory when one was requested. It is consumed exactly once by
// restore, in the same call frame that captured it.
type envSnapshot struct {
	vars    map[string]*string // nil value = variable was unset
	prevDir string
	hasDir  bool
}

// captureEnv applies the requested overrides and returns the snapshot needed
// to undo them. A failure to change the working directory is logged and the
// call proceeds in whatever directory resulted; variable overrides are plain
// Setenv calls.
func captureEnv(overrides map[string]string, workDir string, log ports.Logger) *envSnapshot {
	snap := &envSnapshot{vars: make(map[string]*string, len(overrides))}

	for k, v := range overrides {
		if prev, ok := os.LookupEnv(k); ok {
			p := prev
			snap.vars[k] = &p
		} else {
			snap.vars[k] = nil
		}
		if err := os.Setenv(k, v); err != nil {
			log.Warn(fmt.Sprintf("failed to set %s for expansion call: %v", k, err))
		}
	}

	if workDir != "" {
		if prev, err := os.Getwd(); err == nil {
			snap.prevDir = prev
			snap.hasDir = true
		}
		if err := os.Chdir(workDir); err != nil {
			log.Warn(fmt.Sprintf("failed to change working dir to %s: %v", workDir, err))
		}
	}

	return snap
}

// restore puts every touched variable and the working directory back to their
// pre-call state. Failures are logged and counted but never abort; the number
// of failed restorations is returned so the caller can track drift.
func (s *envSnapshot) restore(log ports.Logger) int {
	failed := 0

	for k, prev := range s.vars {
		var err error
		if prev != nil {
			err = os.Setenv(k, *prev)
		} else {
			err = os.Unsetenv(k)
		}
		if err != nil {
			failed++
			log.Error(fmt.Errorf("failed to restore environment variable %s: %w", k, err))
		}
	}

	if s.hasDir {
		if err := os.Chdir(s.prevDir); err != nil {
			failed++
			log.Error(fmt.Errorf("failed to restore working dir to %s: %w", s.prevDir, err))
		}
	}

	return failed
}
