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

package contracts

import (
	"fmt"

	"github.com/google/uuid"

	perr "github.com/nimbusmq/nimbusmq/errors"
)

// MaxPayloadSize is the maximum allowed size in bytes for a single
// message's payload and for the combined payload bytes of a SendMessages
// batch.
const MaxPayloadSize = 10 * 1000 * 1000

// MaxUserHeadersSize is the maximum combined size in bytes of all header
// values across a single SendMessages batch.
const MaxUserHeadersSize = 100 * 1000

// MessageHeaderSize is the fixed prefix of a serialized Message: 16 id
// bytes + 4 header-length bytes + 4 payload-length bytes.
const MessageHeaderSize = 16 + 4 + 4

// MessageID is the raw little-endian 128-bit wire representation of a
// message id. Byte 0 is the least significant byte.
type MessageID [16]byte

// NewMessageID builds a MessageID from its low 64 bits; the high 64 bits
// are zero. This covers the common case of server/sequence-assigned ids.
func NewMessageID(low uint64) MessageID {
	var id MessageID
	for i := 0; i < 8; i++ {
		id[i] = byte(low >> (8 * i))
	}
	return id
}

// MessageIDFromUUID reinterprets a UUID's 16 bytes as a message id,
// useful for client-side diagnostic ids before the server assigns a real
// one.
func MessageIDFromUUID(u uuid.UUID) MessageID {
	return MessageID(u)
}

// IsZero reports whether this id signals "server assigns an id": an
// explicit zero and an absent id are indistinguishable on the wire, so
// both mean the same thing regardless of how the caller arrived at zero.
func (id MessageID) IsZero() bool {
	return id == MessageID{}
}

// Uint64 returns the low 64 bits, the common case for sequence-style ids.
func (id MessageID) Uint64() uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(id[i])
	}
	return v
}

// Message is a single record: id + optional headers + binary payload.
type Message struct {
	ID      MessageID
	Headers HeaderSet
	Payload []byte
}

// NewMessage builds a Message. A nil id means "server assigns an id" and
// is encoded as the zero MessageID.
func NewMessage(id *MessageID, payload []byte, headers HeaderSet) (Message, error) {
	m := Message{Payload: payload, Headers: headers}
	if id != nil {
		m.ID = *id
	}
	if err := m.Validate(); err != nil {
		return Message{}, err
	}
	return m, nil
}

// MessageFromString builds a message from a UTF-8 string payload with a
// server-assigned id and no headers, mirroring the SDK's FromStr helper
// used throughout tests and examples.
func MessageFromString(payload string) (Message, error) {
	return NewMessage(nil, []byte(payload), nil)
}

// NewDefaultMessage is the named "hello world" placeholder default,
// provided explicitly per the design note that implicit zero values are
// never used as defaults.
func NewDefaultMessage() Message {
	m, _ := MessageFromString("hello world")
	return m
}

// SizeInBytes is the wire size: the fixed 24-byte header, the headers
// bytes, and the payload.
func (m Message) SizeInBytes() int {
	return MessageHeaderSize + m.Headers.SizeInBytes() + len(m.Payload)
}

// Validate enforces that the payload is non-empty and within
// MaxPayloadSize, and that every header value is itself valid.
func (m Message) Validate() error {
	if len(m.Payload) == 0 {
		return perr.EmptyMessagePayload
	}
	if len(m.Payload) > MaxPayloadSize {
		return perr.TooBigMessagePayload
	}
	for _, v := range m.Headers {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// String renders the diagnostic "id|payload" display form; never used on
// the wire.
func (m Message) String() string {
	return fmt.Sprintf("%d|%s", m.ID.Uint64(), string(m.Payload))
}
