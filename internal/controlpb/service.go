package controlpb

import (
	"context"

	"google.golang.org/grpc"
)

// DisplayControlServer is the server API for the DisplayControl
// service, matching the canonical RPC names in spec.md §6.
type DisplayControlServer interface {
	LoadProject(context.Context, *LoadProjectRequest) (*Ack, error)
	LoadScene(context.Context, *LoadSceneRequest) (*Ack, error)
	ActivateTimeline(context.Context, *ActivateTimelineRequest) (*Ack, error)
	Play(context.Context, *PlayRequest) (*Ack, error)
	Pause(context.Context, *PauseRequest) (*Ack, error)
	Stop(context.Context, *StopRequest) (*Ack, error)
	Seek(context.Context, *SeekRequest) (*Ack, error)
	SetRate(context.Context, *SetRateRequest) (*Ack, error)
	SubscribeState(*SubscribeRequest, DisplayControl_SubscribeStateServer) error
}

// DisplayControl_SubscribeStateServer is the server-side stream handle
// for SubscribeState.
type DisplayControl_SubscribeStateServer interface {
	Send(*StateUpdate) error
	grpc.ServerStream
}

type displayControlSubscribeStateServer struct {
	grpc.ServerStream
}

func (s *displayControlSubscribeStateServer) Send(m *StateUpdate) error {
	return s.ServerStream.SendMsg(m)
}

// UnimplementedDisplayControlServer embeds into a concrete server to
// get forward-compatible zero-value method stubs.
type UnimplementedDisplayControlServer struct{}

func (UnimplementedDisplayControlServer) LoadProject(context.Context, *LoadProjectRequest) (*Ack, error) {
	return nil, grpcUnimplemented("LoadProject")
}
func (UnimplementedDisplayControlServer) LoadScene(context.Context, *LoadSceneRequest) (*Ack, error) {
	return nil, grpcUnimplemented("LoadScene")
}
func (UnimplementedDisplayControlServer) ActivateTimeline(context.Context, *ActivateTimelineRequest) (*Ack, error) {
	return nil, grpcUnimplemented("ActivateTimeline")
}
func (UnimplementedDisplayControlServer) Play(context.Context, *PlayRequest) (*Ack, error) {
	return nil, grpcUnimplemented("Play")
}
func (UnimplementedDisplayControlServer) Pause(context.Context, *PauseRequest) (*Ack, error) {
	return nil, grpcUnimplemented("Pause")
}
func (UnimplementedDisplayControlServer) Stop(context.Context, *StopRequest) (*Ack, error) {
	return nil, grpcUnimplemented("Stop")
}
func (UnimplementedDisplayControlServer) Seek(context.Context, *SeekRequest) (*Ack, error) {
	return nil, grpcUnimplemented("Seek")
}
func (UnimplementedDisplayControlServer) SetRate(context.Context, *SetRateRequest) (*Ack, error) {
	return nil, grpcUnimplemented("SetRate")
}
func (UnimplementedDisplayControlServer) SubscribeState(*SubscribeRequest, DisplayControl_SubscribeStateServer) error {
	return grpcUnimplemented("SubscribeState")
}

// RegisterDisplayControlServer registers the implementation with a
// *grpc.Server, matching the generated pattern
// (visualiser.RegisterService in the teacher package).
func RegisterDisplayControlServer(s *grpc.Server, srv DisplayControlServer) {
	s.RegisterService(&_DisplayControl_serviceDesc, srv)
}

func _DisplayControl_LoadProject_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadProjectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DisplayControlServer).LoadProject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/constellation.v1.DisplayControl/LoadProject"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DisplayControlServer).LoadProject(ctx, req.(*LoadProjectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DisplayControl_LoadScene_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadSceneRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DisplayControlServer).LoadScene(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/constellation.v1.DisplayControl/LoadScene"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DisplayControlServer).LoadScene(ctx, req.(*LoadSceneRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DisplayControl_ActivateTimeline_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ActivateTimelineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DisplayControlServer).ActivateTimeline(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/constellation.v1.DisplayControl/ActivateTimeline"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DisplayControlServer).ActivateTimeline(ctx, req.(*ActivateTimelineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DisplayControl_Play_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PlayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DisplayControlServer).Play(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/constellation.v1.DisplayControl/Play"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DisplayControlServer).Play(ctx, req.(*PlayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DisplayControl_Pause_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PauseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DisplayControlServer).Pause(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/constellation.v1.DisplayControl/Pause"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DisplayControlServer).Pause(ctx, req.(*PauseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DisplayControl_Stop_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DisplayControlServer).Stop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/constellation.v1.DisplayControl/Stop"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DisplayControlServer).Stop(ctx, req.(*StopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DisplayControl_Seek_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SeekRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DisplayControlServer).Seek(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/constellation.v1.DisplayControl/Seek"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DisplayControlServer).Seek(ctx, req.(*SeekRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DisplayControl_SetRate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DisplayControlServer).SetRate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/constellation.v1.DisplayControl/SetRate"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DisplayControlServer).SetRate(ctx, req.(*SetRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DisplayControl_SubscribeState_Handler(srv any, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DisplayControlServer).SubscribeState(m, &displayControlSubscribeStateServer{stream})
}

var _DisplayControl_serviceDesc = grpc.ServiceDesc{
	ServiceName: "constellation.v1.DisplayControl",
	HandlerType: (*DisplayControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "LoadProject", Handler: _DisplayControl_LoadProject_Handler},
		{MethodName: "LoadScene", Handler: _DisplayControl_LoadScene_Handler},
		{MethodName: "ActivateTimeline", Handler: _DisplayControl_ActivateTimeline_Handler},
		{MethodName: "Play", Handler: _DisplayControl_Play_Handler},
		{MethodName: "Pause", Handler: _DisplayControl_Pause_Handler},
		{MethodName: "Stop", Handler: _DisplayControl_Stop_Handler},
		{MethodName: "Seek", Handler: _DisplayControl_Seek_Handler},
		{MethodName: "SetRate", Handler: _DisplayControl_SetRate_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeState",
			Handler:       _DisplayControl_SubscribeState_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "constellation/v1/display_control.proto",
}

// DisplayControlClient is the client API for the DisplayControl
// service.
type DisplayControlClient interface {
	LoadProject(ctx context.Context, in *LoadProjectRequest, opts ...grpc.CallOption) (*Ack, error)
	LoadScene(ctx context.Context, in *LoadSceneRequest, opts ...grpc.CallOption) (*Ack, error)
	ActivateTimeline(ctx context.Context, in *ActivateTimelineRequest, opts ...grpc.CallOption) (*Ack, error)
	Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*Ack, error)
	Pause(ctx context.Context, in *PauseRequest, opts ...grpc.CallOption) (*Ack, error)
	Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*Ack, error)
	Seek(ctx context.Context, in *SeekRequest, opts ...grpc.CallOption) (*Ack, error)
	SetRate(ctx context.Context, in *SetRateRequest, opts ...grpc.CallOption) (*Ack, error)
	SubscribeState(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (DisplayControl_SubscribeStateClient, error)
}

type displayControlClient struct {
	cc *grpc.ClientConn
}

// NewDisplayControlClient wraps a dialed connection.
func NewDisplayControlClient(cc *grpc.ClientConn) DisplayControlClient {
	return &displayControlClient{cc}
}

func (c *displayControlClient) LoadProject(ctx context.Context, in *LoadProjectRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/constellation.v1.DisplayControl/LoadProject", in, out, opts...)
	return out, err
}

func (c *displayControlClient) LoadScene(ctx context.Context, in *LoadSceneRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/constellation.v1.DisplayControl/LoadScene", in, out, opts...)
	return out, err
}

func (c *displayControlClient) ActivateTimeline(ctx context.Context, in *ActivateTimelineRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/constellation.v1.DisplayControl/ActivateTimeline", in, out, opts...)
	return out, err
}

func (c *displayControlClient) Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/constellation.v1.DisplayControl/Play", in, out, opts...)
	return out, err
}

func (c *displayControlClient) Pause(ctx context.Context, in *PauseRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/constellation.v1.DisplayControl/Pause", in, out, opts...)
	return out, err
}

func (c *displayControlClient) Stop(ctx context.Context, in *StopRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/constellation.v1.DisplayControl/Stop", in, out, opts...)
	return out, err
}

func (c *displayControlClient) Seek(ctx context.Context, in *SeekRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/constellation.v1.DisplayControl/Seek", in, out, opts...)
	return out, err
}

func (c *displayControlClient) SetRate(ctx context.Context, in *SetRateRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/constellation.v1.DisplayControl/SetRate", in, out, opts...)
	return out, err
}

func (c *displayControlClient) SubscribeState(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (DisplayControl_SubscribeStateClient, error) {
	stream, err := c.cc.NewStream(ctx, &_DisplayControl_serviceDesc.Streams[0], "/constellation.v1.DisplayControl/SubscribeState", opts...)
	if err != nil {
		return nil, err
	}
	x := &displayControlSubscribeStateClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// DisplayControl_SubscribeStateClient is the client-side stream handle
// for SubscribeState.
type DisplayControl_SubscribeStateClient interface {
	Recv() (*StateUpdate, error)
	grpc.ClientStream
}

type displayControlSubscribeStateClient struct {
	grpc.ClientStream
}

func (x *displayControlSubscribeStateClient) Recv() (*StateUpdate, error) {
	m := new(StateUpdate)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
