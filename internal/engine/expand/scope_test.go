package expand

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mexp.dev/mexpd/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestCaptureEnvBracketExactness(t *testing.T) {
	log := quietLogger(t)

	t.Setenv("MEXPD_SCOPE_SET", "before")
	require.NoError(t, os.Unsetenv("MEXPD_SCOPE_UNSET"))

	snap := captureEnv(map[string]string{
		"MEXPD_SCOPE_SET":   "inside",
		"MEXPD_SCOPE_UNSET": "inside",
	}, "", log)

	assert.Equal(t, "inside", os.Getenv("MEXPD_SCOPE_SET"))
	assert.Equal(t, "inside", os.Getenv("MEXPD_SCOPE_UNSET"))

	snap.restore(log)

	assert.Equal(t, "before", os.Getenv("MEXPD_SCOPE_SET"))
	_, present := os.LookupEnv("MEXPD_SCOPE_UNSET")
	assert.False(t, present, "previously unset variable must be unset again")
}

func TestCaptureEnvWorkingDirBracket(t *testing.T) {
	log := quietLogger(t)

	before, err := os.Getwd()
	require.NoError(t, err)

	target := t.TempDir()
	snap := captureEnv(nil, target, log)

	inside, err := os.Getwd()
	require.NoError(t, err)
	// Resolve symlinks; the temp dir may be one (e.g. /tmp on darwin).
	want, err := os.Stat(target)
	require.NoError(t, err)
	got, err := os.Stat(inside)
	require.NoError(t, err)
	assert.True(t, os.SameFile(want, got), "call should run inside the override dir")

	failures := snap.restore(log)
	assert.Zero(t, failures)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCaptureEnvChdirFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	before, err := os.Getwd()
	require.NoError(t, err)

	snap := captureEnv(nil, "/nonexistent/mexpd-test-dir", log)
	snap.restore(log)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
