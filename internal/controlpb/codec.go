package controlpb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec marshals control-surface messages as JSON instead of wire
// protobuf. The pack this server was grown from retrieves no .proto
// file for its own visualiser service and no protoc toolchain is
// available here, so the message types in messages.go are plain Go structs
// rather than protoc-gen-go output; this codec is the documented
// grpc-go extension point (encoding.Codec, installed with
// grpc.ForceServerCodec / grpc.ForceCodec) for carrying a non-protobuf
// payload over the real gRPC transport.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string { return "constellation-json" }

// Codec returns the shared codec instance for wiring into
// grpc.ForceServerCodec / grpc.ForceCodec on both the server and any
// client dialing it.
func Codec() encoding.Codec { return jsonCodec{} }
