package expandv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names of the expansion service.
const (
	ExpandService_Expand_FullMethodName   = "/mexpd.expand.v1.ExpandService/Expand"
	ExpandService_List_FullMethodName     = "/mexpd.expand.v1.ExpandService/List"
	ExpandService_Ping_FullMethodName     = "/mexpd.expand.v1.ExpandService/Ping"
	ExpandService_Status_FullMethodName   = "/mexpd.expand.v1.ExpandService/Status"
	ExpandService_Shutdown_FullMethodName = "/mexpd.expand.v1.ExpandService/Shutdown"
)

// ExpandServiceServer is the server API for the expansion service.
type ExpandServiceServer interface {
	Expand(context.Context, *ExpandRequest) (*ExpandResponse, error)
	List(context.Context, *ListRequest) (*ListResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Status(context.Context, *StatusRequest) (*StatusResponse, error)
	Shutdown(context.Context, *ShutdownRequest) (*ShutdownResponse, error)
}

// UnimplementedExpandServiceServer can be embedded for forward compatibility.
type UnimplementedExpandServiceServer struct{}

func (UnimplementedExpandServiceServer) Expand(context.Context, *ExpandRequest) (*ExpandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Expand not implemented")
}

func (UnimplementedExpandServiceServer) List(context.Context, *ListRequest) (*ListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}

func (UnimplementedExpandServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}

func (UnimplementedExpandServiceServer) Status(context.Context, *StatusRequest) (*StatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Status not implemented")
}

func (UnimplementedExpandServiceServer) Shutdown(context.Context, *ShutdownRequest) (*ShutdownResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Shutdown not implemented")
}

// RegisterExpandServiceServer registers srv on s.
func RegisterExpandServiceServer(s grpc.ServiceRegistrar, srv ExpandServiceServer) {
	s.RegisterService(&ExpandService_ServiceDesc, srv)
}

func _ExpandService_Expand_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExpandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpandServiceServer).Expand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpandService_Expand_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ExpandServiceServer).Expand(ctx, req.(*ExpandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpandService_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpandServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpandService_List_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ExpandServiceServer).List(ctx, req.(*ListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpandService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpandServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpandService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ExpandServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpandService_Status_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpandServiceServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpandService_Status_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ExpandServiceServer).Status(ctx, req.(*StatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExpandService_Shutdown_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ShutdownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExpandServiceServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExpandService_Shutdown_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ExpandServiceServer).Shutdown(ctx, req.(*ShutdownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExpandService_ServiceDesc is the grpc.ServiceDesc for the expansion service.
var ExpandService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mexpd.expand.v1.ExpandService",
	HandlerType: (*ExpandServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Expand",
			Handler:    _ExpandService_Expand_Handler,
		},
		{
			MethodName: "List",
			Handler:    _ExpandService_List_Handler,
		},
		{
			MethodName: "Ping",
			Handler:    _ExpandService_Ping_Handler,
		},
		{
			MethodName: "Status",
			Handler:    _ExpandService_Status_Handler,
		},
		{
			MethodName: "Shutdown",
			Handler:    _ExpandService_Shutdown_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mexpd/expand/v1/expand_service.json",
}

// ExpandServiceClient is the client API for the expansion service.
type ExpandServiceClient interface {
	Expand(ctx context.Context, in *ExpandRequest, opts ...grpc.CallOption) (*ExpandResponse, error)
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	Shutdown(ctx context.Context, in *ShutdownRequest, opts ...grpc.CallOption) (*ShutdownResponse, error)
}

type expandServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewExpandServiceClient creates a client that speaks the JSON codec.
func NewExpandServiceClient(cc grpc.ClientConnInterface) ExpandServiceClient {
	return &expandServiceClient{cc: cc}
}

func (c *expandServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := make([]grpc.CallOption, 0, len(opts)+1)
	callOpts = append(callOpts, grpc.CallContentSubtype(CodecName))
	callOpts = append(callOpts, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *expandServiceClient) Expand(ctx context.Context, in *ExpandRequest, opts ...grpc.CallOption) (*ExpandResponse, error) {
	out := new(ExpandResponse)
	if err := c.invoke(ctx, ExpandService_Expand_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expandServiceClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	if err := c.invoke(ctx, ExpandService_List_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expandServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.invoke(ctx, ExpandService_Ping_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expandServiceClient) Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	out := new(StatusResponse)
	if err := c.invoke(ctx, ExpandService_Status_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expandServiceClient) Shutdown(ctx context.Context, in *ShutdownRequest, opts ...grpc.CallOption) (*ShutdownResponse, error) {
	out := new(ShutdownResponse)
	if err := c.invoke(ctx, ExpandService_Shutdown_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
