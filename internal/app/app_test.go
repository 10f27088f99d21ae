package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/internal/app"
	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/internal/core/ports/mocks"
	"go.mexp.dev/mexpd/internal/engine/expand"
	"go.mexp.dev/mexpd/tt"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	ctrl      *gomock.Controller
	loader    *mocks.MockConfigLoader
	connector *mocks.MockDaemonConnector
	expLoader *mocks.MockExpanderLoader
	watcher   *mocks.MockWatcher
}

func newTestApp(t *testing.T) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	m := &appMocks{
		ctrl:      ctrl,
		loader:    mocks.NewMockConfigLoader(ctrl),
		connector: mocks.NewMockDaemonConnector(ctrl),
		expLoader: mocks.NewMockExpanderLoader(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
	}

	dispatcher := expand.NewDispatcher(m.expLoader, log, tracer)
	return app.New(m.loader, m.connector, dispatcher, m.watcher, log), m
}

func TestExpand_UsesDaemon(t *testing.T) {
	a, m := newTestApp(t)
	ctx := context.Background()

	client := mocks.NewMockDaemonClient(m.ctrl)
	m.connector.EXPECT().Connect(ctx).Return(client, nil)
	client.EXPECT().
		Expand(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.ExpandRequest) (*tt.Tree, error) {
			assert.Equal(t, "/plugins/derive.so", req.Artifact)
			assert.Equal(t, "derive_debug", req.Macro)
			return tt.Ident("expanded"), nil
		})
	client.EXPECT().Close().Return(nil)

	result, err := a.Expand(ctx, app.ExpandOptions{
		Path:  "/plugins/derive.so",
		Macro: "derive_debug",
		Input: tt.Ident("input"),
	})
	require.NoError(t, err)
	assert.Equal(t, "expanded", result.Text)
}

func TestExpand_NoDaemonRunsLocally(t *testing.T) {
	a, m := newTestApp(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "local.so")
	require.NoError(t, os.WriteFile(path, []byte("artifact"), 0o644))

	expander := mocks.NewMockExpander(m.ctrl)
	expander.EXPECT().
		Expand("up", gomock.Any(), gomock.Any()).
		Return(tt.Ident("UP"), nil)
	m.expLoader.EXPECT().Load(path).Return(expander, nil)

	result, err := a.Expand(ctx, app.ExpandOptions{
		Path:     path,
		Macro:    "up",
		Input:    tt.Ident("up"),
		NoDaemon: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "UP", result.Text)
}

func TestExpand_ConnectFailure(t *testing.T) {
	a, m := newTestApp(t)
	ctx := context.Background()

	m.connector.EXPECT().Connect(ctx).Return(nil, errors.New("socket missing"))

	_, err := a.Expand(ctx, app.ExpandOptions{Path: "/plugins/x.so", Macro: "m"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to reach daemon")
}

func TestList_UsesDaemon(t *testing.T) {
	a, m := newTestApp(t)
	ctx := context.Background()

	client := mocks.NewMockDaemonClient(m.ctrl)
	m.connector.EXPECT().Connect(ctx).Return(client, nil)
	client.EXPECT().
		ListCapabilities(ctx, "/plugins/derive.so").
		Return([]abi.Macro{{Name: "derive_debug", Kind: abi.Derive}}, nil)
	client.EXPECT().Close().Return(nil)

	macros, err := a.List(ctx, "/plugins/derive.so", false)
	require.NoError(t, err)
	require.Len(t, macros, 1)
	assert.Equal(t, "derive_debug", macros[0].Name)
}

func TestDaemonStatus_NotRunning(t *testing.T) {
	a, m := newTestApp(t)

	m.connector.EXPECT().IsRunning().Return(false)

	status, err := a.DaemonStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Running)
}

func TestDaemonStatus_Running(t *testing.T) {
	a, m := newTestApp(t)
	ctx := context.Background()

	client := mocks.NewMockDaemonClient(m.ctrl)
	m.connector.EXPECT().IsRunning().Return(true)
	m.connector.EXPECT().Connect(ctx).Return(client, nil)
	client.EXPECT().Status(ctx).Return(&ports.DaemonStatus{Running: true, PID: 42}, nil)
	client.EXPECT().Close().Return(nil)

	status, err := a.DaemonStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.Equal(t, 42, status.PID)
}

func TestStopDaemon_NotRunning(t *testing.T) {
	a, m := newTestApp(t)

	m.connector.EXPECT().IsRunning().Return(false)

	err := a.StopDaemon(context.Background())
	assert.ErrorIs(t, err, domain.ErrDaemonNotRunning)
}

func TestServeDaemon_StopsOnContextCancel(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "cache"))
	a, m := newTestApp(t)

	cfg := domain.DefaultConfig()
	cfg.Socket = filepath.Join(t.TempDir(), "serve.sock")
	m.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.ServeDaemon(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(cfg.Socket)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("daemon did not stop on context cancel")
	}
}

func TestServeDaemon_WatchesPluginDirs(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "cache"))
	a, m := newTestApp(t)

	cfg := domain.DefaultConfig()
	cfg.Socket = filepath.Join(t.TempDir(), "serve.sock")
	cfg.PluginDirs = []string{t.TempDir()}
	m.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)

	m.watcher.EXPECT().Start(gomock.Any(), cfg.PluginDirs).Return(nil)
	m.watcher.EXPECT().Events().Return(func(func(ports.WatchEvent) bool) {})
	m.watcher.EXPECT().Stop().Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.ServeDaemon(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(cfg.Socket)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("daemon did not stop on context cancel")
	}
}

func TestStopDaemon_Running(t *testing.T) {
	a, m := newTestApp(t)
	ctx := context.Background()

	client := mocks.NewMockDaemonClient(m.ctrl)
	m.connector.EXPECT().IsRunning().Return(true)
	m.connector.EXPECT().Connect(ctx).Return(client, nil)
	client.EXPECT().Shutdown(ctx).Return(nil)
	client.EXPECT().Close().Return(nil)

	err := a.StopDaemon(ctx)
	require.NoError(t, err)
}
