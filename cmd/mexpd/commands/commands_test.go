package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/cmd/mexpd/commands"
	"go.mexp.dev/mexpd/internal/app"
	"go.mexp.dev/mexpd/internal/build"
	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/tt"
)

type mockApp struct {
	expandFunc func(ctx context.Context, opts app.ExpandOptions) (*tt.Tree, error)
	listFunc   func(ctx context.Context, path string, noDaemon bool) ([]abi.Macro, error)
	statusFunc func(ctx context.Context) (*ports.DaemonStatus, error)
	stopFunc   func(ctx context.Context) error
}

func (m *mockApp) Expand(ctx context.Context, opts app.ExpandOptions) (*tt.Tree, error) {
	if m.expandFunc != nil {
		return m.expandFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) List(ctx context.Context, path string, noDaemon bool) ([]abi.Macro, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, path, noDaemon)
	}
	return nil, nil
}

func (m *mockApp) ServeDaemon(context.Context) error { return nil }

func (m *mockApp) DaemonStatus(ctx context.Context) (*ports.DaemonStatus, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx)
	}
	return &ports.DaemonStatus{}, nil
}

func (m *mockApp) StopDaemon(ctx context.Context) error {
	if m.stopFunc != nil {
		return m.stopFunc(ctx)
	}
	return nil
}

func inputJSON(t *testing.T, tree *tt.Tree) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(tt.Flatten(tree))
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestCommands_Expand(t *testing.T) {
	t.Run("wires flags and prints expansion", func(t *testing.T) {
		var captured app.ExpandOptions

		mock := &mockApp{
			expandFunc: func(_ context.Context, opts app.ExpandOptions) (*tt.Tree, error) {
				captured = opts
				return tt.Ident("expanded"), nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetInput(inputJSON(t, tt.Ident("source")))
		cli.SetArgs([]string{
			"expand", "/plugins/derive.so", "derive_debug",
			"--env", "CARGO_MANIFEST_DIR=/src",
			"--workdir", "/src",
			"--no-daemon",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "/plugins/derive.so", captured.Path)
		assert.Equal(t, "derive_debug", captured.Macro)
		assert.Equal(t, "source", captured.Input.Text)
		assert.Equal(t, map[string]string{"CARGO_MANIFEST_DIR": "/src"}, captured.Env)
		assert.Equal(t, "/src", captured.WorkDir)
		assert.True(t, captured.NoDaemon)

		var flat tt.FlatTree
		require.NoError(t, json.Unmarshal(out.Bytes(), &flat))
		result, err := tt.Inflate(&flat)
		require.NoError(t, err)
		assert.Equal(t, "expanded", result.Text)
	})

	t.Run("diagnostic exits through expansion sentinel", func(t *testing.T) {
		mock := &mockApp{
			expandFunc: func(context.Context, app.ExpandOptions) (*tt.Tree, error) {
				return nil, domain.ErrExpandFailed
			},
		}

		cli := commands.New(mock)
		stderr := new(bytes.Buffer)
		cli.SetOutput(new(bytes.Buffer), stderr)
		cli.SetInput(inputJSON(t, tt.Ident("x")))
		cli.SetArgs([]string{"expand", "/plugins/p.so", "m"})

		err := cli.Execute(context.Background())
		assert.ErrorIs(t, err, domain.ErrExpansionFailed)
		assert.Contains(t, stderr.String(), domain.ErrExpandFailed.Error())
	})

	t.Run("rejects malformed env flag", func(t *testing.T) {
		mock := &mockApp{}
		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetInput(inputJSON(t, tt.Ident("x")))
		cli.SetArgs([]string{"expand", "/plugins/p.so", "m", "--env", "NOVALUE"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "KEY=VALUE")
	})
}

func TestCommands_List(t *testing.T) {
	mock := &mockApp{
		listFunc: func(_ context.Context, path string, noDaemon bool) ([]abi.Macro, error) {
			assert.Equal(t, "/plugins/derive.so", path)
			assert.False(t, noDaemon)
			return []abi.Macro{{Name: "derive_debug", Kind: abi.Derive}}, nil
		},
	}

	cli := commands.New(mock)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs([]string{"list", "/plugins/derive.so"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "derive_debug")
	assert.Contains(t, out.String(), "derive")
}

func TestCommands_ListError(t *testing.T) {
	mock := &mockApp{
		listFunc: func(context.Context, string, bool) ([]abi.Macro, error) {
			return nil, errors.New("no such artifact")
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"list", "/plugins/missing.so"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such artifact")
}

func TestCommands_DaemonStatus(t *testing.T) {
	mock := &mockApp{
		statusFunc: func(context.Context) (*ports.DaemonStatus, error) {
			return &ports.DaemonStatus{Running: false}, nil
		},
	}

	cli := commands.New(mock)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs([]string{"daemon", "status"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "not running")
}

func TestCommands_DaemonStop(t *testing.T) {
	mock := &mockApp{
		stopFunc: func(context.Context) error {
			return domain.ErrDaemonNotRunning
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"daemon", "stop"})

	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrDaemonNotRunning)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
