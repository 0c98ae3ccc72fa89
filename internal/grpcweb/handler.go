// Package grpcweb translates gRPC-Web (browser HTTP/1.1) to native
// gRPC over a local client conn. The bridge never interprets message
// payloads: frames pass through byte for byte under a raw codec, and
// the authorization header rides along as metadata so the server-side
// interceptor stays the single authentication point.
package grpcweb

import (
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type Bridge struct {
	conn *grpc.ClientConn
	log  zerolog.Logger
}

// New dials the gRPC server at addr (e.g. "localhost:50051").
func New(addr string, log zerolog.Logger) (*Bridge, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	return &Bridge{conn: conn, log: log}, nil
}

func (b *Bridge) Close() { b.conn.Close() }

// Handler returns the http.Handler serving the grpc-web face.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, X-Grpc-Web, X-User-Agent, Authorization, x-grpc-web")
		w.Header().Set("Access-Control-Expose-Headers",
			"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin, grpc-status, grpc-message")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ct := r.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "application/grpc-web") {
			http.Error(w, "not grpc-web", http.StatusUnsupportedMediaType)
			return
		}

		b.log.Debug().Str("method", r.URL.Path).Msg("grpc-web call")
		b.forward(w, r)
	})
}

func (b *Bridge) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, codes.Internal, "read body failed")
		return
	}
	if len(body) < 5 {
		writeError(w, codes.InvalidArgument, "body too short")
		return
	}

	// grpc-web frame: 1-byte flag + 4-byte big-endian length + protobuf
	msgLen := binary.BigEndian.Uint32(body[1:5])
	if int(msgLen)+5 > len(body) {
		writeError(w, codes.InvalidArgument, "incomplete frame")
		return
	}
	payload := body[5 : 5+msgLen]

	// forward the bearer so the server interceptor sees it
	md := metadata.MD{}
	if vals := r.Header.Values("Authorization"); len(vals) > 0 {
		md.Set("authorization", vals...)
	}
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	resp := &rawMsg{}
	err = b.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st, _ := status.FromError(err)
		b.log.Debug().Str("method", r.URL.Path).Stringer("code", st.Code()).Msg("grpc-web call failed")
		writeError(w, st.Code(), st.Message())
		return
	}

	writeSuccess(w, resp.data)
}

// rawMsg wraps raw protobuf bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	return v.(*rawMsg).data, nil
}
func (rawCodec) Unmarshal(data []byte, v any) error {
	m := v.(*rawMsg)
	m.data = append([]byte(nil), data...)
	return nil
}
func (rawCodec) Name() string { return "raw" }

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	trailer := fmt.Sprintf("grpc-status:%d\r\ngrpc-message:%s\r\n", code, msg)
	tf := make([]byte, 5+len(trailer))
	tf[0] = 0x80
	binary.BigEndian.PutUint32(tf[1:5], uint32(len(trailer)))
	copy(tf[5:], trailer)
	w.Write(tf)
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	// data frame
	df := make([]byte, 5+len(data))
	df[0] = 0x00
	binary.BigEndian.PutUint32(df[1:5], uint32(len(data)))
	copy(df[5:], data)
	w.Write(df)
	// trailer frame
	trailer := "grpc-status:0\r\n"
	tf := make([]byte, 5+len(trailer))
	tf[0] = 0x80
	binary.BigEndian.PutUint32(tf[1:5], uint32(len(trailer)))
	copy(tf[5:], trailer)
	w.Write(tf)
}
