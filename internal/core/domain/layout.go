package domain

import (
	"os"
	"path/filepath"
)

const (
	// MexpdDirName is the runtime directory name under the user cache dir.
	MexpdDirName = "mexpd"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "mexpd.yaml"

	// SocketFileName is the name of the daemon's Unix socket.
	SocketFileName = "mexpd.sock"

	// PIDFileName is the name of the daemon's PID file.
	PIDFileName = "mexpd.pid"

	// LogFileName is the name of the spawned daemon's log file.
	LogFileName = "mexpd.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// SocketPerm restricts the daemon socket to the owning user (rw-------).
	SocketPerm = 0o600
)

// DefaultRuntimePath returns the directory holding the socket and PID file.
// It prefers the user cache directory and falls back to the system temp dir.
func DefaultRuntimePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, MexpdDirName)
}

// DefaultSocketPath returns the default daemon socket path.
func DefaultSocketPath() string {
	return filepath.Join(DefaultRuntimePath(), SocketFileName)
}

// DefaultPIDPath returns the default daemon PID file path.
func DefaultPIDPath() string {
	return filepath.Join(DefaultRuntimePath(), PIDFileName)
}

// DefaultLogPath returns the log file path for a background-spawned daemon.
func DefaultLogPath() string {
	return filepath.Join(DefaultRuntimePath(), LogFileName)
}
