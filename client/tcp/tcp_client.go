// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package tcp is the reference transport: one TCP connection, framed with
// a fixed 8-byte header, owned exclusively by a single NimbusTcpClient.
package tcp

import (
	"context"
	"encoding/binary"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nimbusmq/nimbusmq/client"
	"github.com/nimbusmq/nimbusmq/contracts"
	perr "github.com/nimbusmq/nimbusmq/errors"
)

var _ client.Client = (*NimbusTcpClient)(nil)

// requestHeaderSize is the 4-byte payload length plus the 4-byte command
// code prefixing every request.
const requestHeaderSize = 8

// responseHeaderSize is the 4-byte status code plus the 4-byte payload
// length prefixing every response.
const responseHeaderSize = 8

// Config controls how a NimbusTcpClient dials and talks to a server.
type Config struct {
	// Address is the server's "host:port".
	Address string
	// DialTimeout bounds the initial connection attempt.
	DialTimeout time.Duration
	// RequestTimeout bounds each request's round trip; zero means no
	// deadline beyond ctx.
	RequestTimeout time.Duration
	// Logger receives connection lifecycle events. Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger
	// Compression selects whether SendMessages bodies are compressed with
	// s2 before being framed. Defaults to CompressionDisabled.
	Compression PayloadCompression
}

func (c Config) withDefaults() Config {
	if c.DialTimeout == 0 {
		c.DialTimeout = 10 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// NimbusTcpClient is the TCP implementation of client.Client. It owns a
// single net.Conn; every request acquires mu for the duration of its
// round trip, since the wire protocol allows only one in-flight request
// per connection.
type NimbusTcpClient struct {
	cfg  Config
	mu   sync.Mutex
	conn net.Conn
	log  *slog.Logger
}

// Dial connects to cfg.Address and returns a ready client.
func Dial(cfg Config) (*NimbusTcpClient, error) {
	cfg = cfg.withDefaults()
	conn, err := net.DialTimeout("tcp", cfg.Address, cfg.DialTimeout)
	if err != nil {
		return nil, &perr.TransportError{Op: "dial", Err: err}
	}
	cfg.Logger.Info("connected", "address", cfg.Address)
	return &NimbusTcpClient{cfg: cfg, conn: conn, log: cfg.Logger}, nil
}

// Close releases the underlying connection. It takes the same lock as a
// request, so it waits for an in-flight call to finish rather than
// interrupting it.
func (t *NimbusTcpClient) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

// sendAndFetchResponse writes one framed request and blocks for its framed
// response. A correlation id is logged (but not placed on the wire: the
// protocol is a strict request/response pair per connection) so logs from
// both peers can be joined by hand during diagnosis.
func (t *NimbusTcpClient) sendAndFetchResponse(ctx context.Context, payload []byte, code contracts.CommandCode) ([]byte, error) {
	correlationID := uuid.New()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil, &perr.TransportError{Op: "send", Err: net.ErrClosed}
	}

	if err := ctx.Err(); err != nil {
		// Cancelled before transmission: never send.
		return nil, &perr.TransportError{Op: "send", Err: err}
	}

	deadline := time.Time{}
	if t.cfg.RequestTimeout > 0 {
		deadline = time.Now().Add(t.cfg.RequestTimeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	if !deadline.IsZero() {
		_ = t.conn.SetDeadline(deadline)
		defer t.conn.SetDeadline(time.Time{})
	}

	// Cancelling ctx mid-flight expires the connection deadline so the
	// pending write or read returns at once; the connection is then dropped
	// so a late response can never be read by a later call.
	conn := t.conn
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer func() {
		if !stop() && t.conn != nil {
			_ = t.conn.Close()
			t.conn = nil
		}
	}()

	t.log.Debug("request", "correlation_id", correlationID, "code", code, "payload_bytes", len(payload))

	header := make([]byte, requestHeaderSize)
	binary.LittleEndian.PutUint32(header[0:4], uint32(len(payload)))
	binary.LittleEndian.PutUint32(header[4:8], uint32(code))
	if _, err := t.conn.Write(header); err != nil {
		return nil, t.transportFailure("write_header", err)
	}
	if len(payload) > 0 {
		if _, err := t.conn.Write(payload); err != nil {
			return nil, t.transportFailure("write_payload", err)
		}
	}

	respHeader := make([]byte, responseHeaderSize)
	if _, err := io.ReadFull(t.conn, respHeader); err != nil {
		return nil, t.transportFailure("read_header", err)
	}
	status := binary.LittleEndian.Uint32(respHeader[0:4])
	length := binary.LittleEndian.Uint32(respHeader[4:8])

	var body []byte
	if length > 0 {
		body = make([]byte, length)
		if _, err := io.ReadFull(t.conn, body); err != nil {
			return nil, t.transportFailure("read_payload", err)
		}
	}

	t.log.Debug("response", "correlation_id", correlationID, "status", status, "payload_bytes", length)

	if err := perr.FromStatusCode(status); err != nil {
		return nil, err
	}
	return body, nil
}

// transportFailure wraps a connection-level error and drops the now-
// unusable connection so the next call fails fast instead of writing into
// a half-closed socket.
func (t *NimbusTcpClient) transportFailure(op string, err error) error {
	t.log.Warn("connection failure", "op", op, "error", err)
	if t.conn != nil {
		_ = t.conn.Close()
		t.conn = nil
	}
	return &perr.TransportError{Op: op, Err: err}
}
