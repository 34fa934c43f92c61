package controlpb

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// grpcUnimplemented builds the status error returned by the
// Unimplemented* server stubs in service.go, matching grpc_server.go's own use
// of status.Error(codes.Unimplemented, ...) for out-of-scope calls.
func grpcUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}
