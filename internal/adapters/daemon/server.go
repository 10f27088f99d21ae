package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	expandv1 "go.mexp.dev/mexpd/api/expand/v1"
	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/internal/engine/expand"
	"go.mexp.dev/mexpd/tt"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements the gRPC expansion service.
type Server struct {
	expandv1.UnimplementedExpandServiceServer
	lifecycle  *Lifecycle
	dispatcher *expand.Dispatcher
	logger     ports.Logger
	socketPath string
	pidPath    string
	grpcServer *grpc.Server
	listener   net.Listener
}

// NewServer creates a daemon server bound to the configured socket.
func NewServer(
	lifecycle *Lifecycle,
	dispatcher *expand.Dispatcher,
	logger ports.Logger,
	cfg *domain.Config,
) *Server {
	s := &Server{
		lifecycle:  lifecycle,
		dispatcher: dispatcher,
		logger:     logger,
		socketPath: cfg.Socket,
		pidPath:    domain.DefaultPIDPath(),
		grpcServer: grpc.NewServer(),
	}
	expandv1.RegisterExpandServiceServer(s.grpcServer, s)
	return s
}

// Serve starts the gRPC server on the UDS and blocks until the context is
// cancelled, the idle timer fires, or a Shutdown RPC arrives.
func (s *Server) Serve(ctx context.Context) error {
	dir := filepath.Dir(s.socketPath)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create runtime directory")
	}

	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove stale socket")
	}

	lis, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return zerr.Wrap(err, "failed to listen on UDS")
	}
	s.listener = lis

	if err := os.Chmod(s.socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return zerr.Wrap(err, "failed to set socket permissions")
	}

	if err := s.writePIDFile(); err != nil {
		_ = lis.Close()
		return err
	}

	defer s.cleanup()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	s.logger.Info("daemon listening on " + s.socketPath)

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return ctx.Err()
	case <-s.lifecycle.ShutdownChan():
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) cleanup() {
	_ = os.Remove(s.socketPath)
	_ = os.Remove(s.pidPath)
}

func (s *Server) writePIDFile() error {
	// The PID file lives in the state directory, which is not the socket's
	// directory when a custom socket is configured.
	if err := os.MkdirAll(filepath.Dir(s.pidPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}
	pid := os.Getpid()
	if err := os.WriteFile(s.pidPath, []byte(fmt.Sprintf("%d", pid)), domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write pid file")
	}
	return nil
}

// Expand implements ExpandService.Expand.
func (s *Server) Expand(ctx context.Context, req *expandv1.ExpandRequest) (*expandv1.ExpandResponse, error) {
	s.lifecycle.ResetTimer()

	input, err := tt.Inflate(req.Input)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	attrs, err := tt.Inflate(req.Attrs)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.dispatcher.Expand(ctx, domain.ExpandRequest{
		Artifact: req.Path,
		Macro:    req.Macro,
		Input:    input,
		Attrs:    attrs,
		Env:      req.Env,
		WorkDir:  req.WorkDir,
	})
	if err != nil {
		// A transformer that ran and failed is a diagnostic for the caller,
		// not a transport failure. Loading problems stay gRPC errors.
		if errors.Is(err, domain.ErrExpandFailed) {
			return &expandv1.ExpandResponse{Error: expandDiagnostic(err)}, nil
		}
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}

	return &expandv1.ExpandResponse{Expansion: tt.Flatten(result)}, nil
}

// expandDiagnostic pulls the human-readable detail out of a failed
// expansion. The classification sentinel travels as the error's join head
// and must not leak into the payload the client re-tags.
func expandDiagnostic(err error) string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err.Error()
	}
	var parts []string
	for _, cause := range joined.Unwrap() {
		if cause == domain.ErrExpandFailed {
			continue
		}
		parts = append(parts, cause.Error())
	}
	if len(parts) == 0 {
		return err.Error()
	}
	return strings.Join(parts, "\n")
}

// List implements ExpandService.List.
func (s *Server) List(ctx context.Context, req *expandv1.ListRequest) (*expandv1.ListResponse, error) {
	s.lifecycle.ResetTimer()

	macros, err := s.dispatcher.ListCapabilities(ctx, req.Path)
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}

	resp := &expandv1.ListResponse{}
	for _, m := range macros {
		resp.Macros = append(resp.Macros, expandv1.Macro{
			Name: m.Name,
			Kind: m.Kind.String(),
		})
	}
	return resp, nil
}

// Ping implements ExpandService.Ping.
func (s *Server) Ping(_ context.Context, _ *expandv1.PingRequest) (*expandv1.PingResponse, error) {
	s.lifecycle.ResetTimer()
	return &expandv1.PingResponse{
		IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
	}, nil
}

// Status implements ExpandService.Status.
func (s *Server) Status(_ context.Context, _ *expandv1.StatusRequest) (*expandv1.StatusResponse, error) {
	s.lifecycle.ResetTimer()
	pid := os.Getpid()
	const maxInt32 = 2147483647
	if pid > maxInt32 {
		pid = maxInt32
	}
	stats := s.dispatcher.Stats()
	return &expandv1.StatusResponse{
		Running: true,
		//nolint:gosec // G115: Safe conversion - pid is capped to maxInt32 above
		Pid:                  int32(pid),
		UptimeSeconds:        int64(s.lifecycle.Uptime().Seconds()),
		LastActivityUnix:     s.lifecycle.LastActivity().Unix(),
		IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
		LoadedArtifacts:      stats.LoadedArtifacts,
		RestoreFailures:      stats.RestoreFailures,
	}, nil
}

// Shutdown implements ExpandService.Shutdown.
func (s *Server) Shutdown(_ context.Context, _ *expandv1.ShutdownRequest) (*expandv1.ShutdownResponse, error) {
	s.lifecycle.Shutdown()
	return &expandv1.ShutdownResponse{Success: true}, nil
}
