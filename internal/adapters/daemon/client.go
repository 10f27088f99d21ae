// Package daemon implements the background daemon adapter for mexpd.
// It provides gRPC server and client for inter-process communication over
// Unix Domain Sockets.
package daemon

import (
	"context"
	"time"

	"go.mexp.dev/mexpd/abi"
	expandv1 "go.mexp.dev/mexpd/api/expand/v1"
	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/tt"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var _ ports.DaemonClient = (*Client)(nil)

// Client implements ports.DaemonClient.
type Client struct {
	conn   *grpc.ClientConn
	client expandv1.ExpandServiceClient
}

// Dial connects to the daemon over UDS.
// Note: grpc.NewClient returns immediately; actual connection happens lazily on first RPC.
func Dial(socketPath string) (*Client, error) {
	target := "unix://" + socketPath

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "daemon client creation failed")
	}

	return &Client{
		conn:   conn,
		client: expandv1.NewExpandServiceClient(conn),
	}, nil
}

// Expand implements ports.DaemonClient.
func (c *Client) Expand(ctx context.Context, req domain.ExpandRequest) (*tt.Tree, error) {
	resp, err := c.client.Expand(ctx, &expandv1.ExpandRequest{
		Path:    req.Artifact,
		Macro:   req.Macro,
		Input:   tt.Flatten(req.Input),
		Attrs:   tt.Flatten(req.Attrs),
		Env:     req.Env,
		WorkDir: req.WorkDir,
	})
	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, zerr.Wrap(domain.ErrExpandFailed, resp.Error)
	}
	return tt.Inflate(resp.Expansion)
}

// ListCapabilities implements ports.DaemonClient.
func (c *Client) ListCapabilities(ctx context.Context, path string) ([]abi.Macro, error) {
	resp, err := c.client.List(ctx, &expandv1.ListRequest{Path: path})
	if err != nil {
		return nil, err
	}

	macros := make([]abi.Macro, 0, len(resp.Macros))
	for _, m := range resp.Macros {
		macros = append(macros, abi.Macro{
			Name: m.Name,
			Kind: abi.MacroKindFromString(m.Kind),
		})
	}
	return macros, nil
}

// Ping implements ports.DaemonClient.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &expandv1.PingRequest{})
	return err
}

// Status implements ports.DaemonClient.
func (c *Client) Status(ctx context.Context) (*ports.DaemonStatus, error) {
	resp, err := c.client.Status(ctx, &expandv1.StatusRequest{})
	if err != nil {
		return nil, err
	}
	return &ports.DaemonStatus{
		Running:         resp.Running,
		PID:             int(resp.Pid),
		Uptime:          time.Duration(resp.UptimeSeconds) * time.Second,
		LastActivity:    time.Unix(resp.LastActivityUnix, 0),
		IdleRemaining:   time.Duration(resp.IdleRemainingSeconds) * time.Second,
		LoadedArtifacts: resp.LoadedArtifacts,
		RestoreFailures: resp.RestoreFailures,
	}, nil
}

// Shutdown implements ports.DaemonClient.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.client.Shutdown(ctx, &expandv1.ShutdownRequest{Graceful: true})
	return err
}

// Close implements ports.DaemonClient.
func (c *Client) Close() error {
	return c.conn.Close()
}
