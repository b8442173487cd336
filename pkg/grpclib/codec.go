package grpclib

import (
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/encoding"
)

// JSONCodecName is the content subtype, requests are sent as application/grpc+json
const JSONCodecName = "json"

// JSONCodec marshals plain go structs with the gateway's builtin json marshaler,
// the same encoding the HTTP mux uses for non protobuf bodies
type JSONCodec struct {
	marshaler runtime.Marshaler
}

var _ encoding.Codec = JSONCodec{}

// NewJSONCodec ...
func NewJSONCodec() JSONCodec {
	return JSONCodec{marshaler: &runtime.JSONBuiltin{}}
}

func init() {
	encoding.RegisterCodec(NewJSONCodec())
}

// Marshal ...
func (c JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return c.marshaler.Marshal(v)
}

// Unmarshal ...
func (c JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return c.marshaler.Unmarshal(data, v)
}

// Name ...
func (JSONCodec) Name() string {
	return JSONCodecName
}
