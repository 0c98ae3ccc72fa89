// Package schedpb holds the wire types for the scheduling.v1 protocol
// (proto/scheduling/v1/scheduling.proto) together with the grpc codec
// that carries them. The messages are hand-maintained: each one
// encodes and decodes itself with protowire, so the package works with
// plain structs instead of generated stubs. Field numbers follow the
// .proto file and must not be reused.
package schedpb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// message is implemented by every wire type in this package.
type message interface {
	marshal() []byte
	unmarshal(b []byte) error
}

// Codec plugs the hand-encoded messages into grpc-go. It answers to
// the standard "proto" name so content-type negotiation stays
// unchanged, and defers to the real proto codec for foreign messages
// (the health service, for one) sharing a server with ours.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case message:
		return m.marshal(), nil
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("schedpb: cannot marshal %T", v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case message:
		return m.unmarshal(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("schedpb: cannot unmarshal into %T", v)
}

func (Codec) Name() string { return "proto" }

// scan walks one encoded message and dispatches every field to the
// matching callback: bytes-typed fields to str, varint-typed fields to
// varint. Unknown numbers, wrong wire types and absent callbacks all
// skip the field, mirroring proto3 unknown-field tolerance.
func scan(b []byte, str func(num protowire.Number, p []byte) error, varint func(num protowire.Number, v uint64) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		switch typ {
		case protowire.BytesType:
			p, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if str != nil {
				if err := str(num, p); err != nil {
					return err
				}
			}
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			if varint != nil {
				if err := varint(num, v); err != nil {
					return err
				}
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

// append helpers follow proto3 presence rules: zero values stay off
// the wire and decode back to their zero value.

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendMsg(b []byte, num protowire.Number, m message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.marshal())
}
