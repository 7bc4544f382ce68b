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

package binaryserialization

import (
	"github.com/nimbusmq/nimbusmq/contracts"
	perr "github.com/nimbusmq/nimbusmq/errors"
)

// SerializeMessage writes the 16-byte id, the u32 headers length (0 when
// absent) plus headers bytes, then the u32 payload length plus payload.
func SerializeMessage(m contracts.Message) []byte {
	headersBytes := SerializeHeaderSet(m.Headers)
	buf := make([]byte, m.SizeInBytes())
	copy(buf[0:16], m.ID[:])
	putUint32(buf[16:20], uint32(len(headersBytes)))
	pos := 20
	copy(buf[pos:pos+len(headersBytes)], headersBytes)
	pos += len(headersBytes)
	putUint32(buf[pos:pos+4], uint32(len(m.Payload)))
	pos += 4
	copy(buf[pos:], m.Payload)
	return buf
}

// ParseMessage reads one Message off the front of buf. It checks that at
// least the fixed 24-byte header is present before indexing into it.
func ParseMessage(buf []byte) (contracts.Message, []byte, error) {
	if err := requireLen(buf, contracts.MessageHeaderSize); err != nil {
		return contracts.Message{}, nil, err
	}

	var id contracts.MessageID
	copy(id[:], buf[0:16])

	headersLength := getUint32(buf[16:20])
	pos := 20
	var headers contracts.HeaderSet
	if headersLength > 0 {
		if err := requireLen(buf[pos:], int(headersLength)); err != nil {
			return contracts.Message{}, nil, err
		}
		parsed, err := ParseHeaderSet(buf[pos : pos+int(headersLength)])
		if err != nil {
			return contracts.Message{}, nil, err
		}
		headers = parsed
		pos += int(headersLength)
	}

	if err := requireLen(buf[pos:], 4); err != nil {
		return contracts.Message{}, nil, err
	}
	payloadLength := getUint32(buf[pos : pos+4])
	pos += 4
	if payloadLength == 0 {
		return contracts.Message{}, nil, perr.EmptyMessagePayload
	}
	if err := requireLen(buf[pos:], int(payloadLength)); err != nil {
		return contracts.Message{}, nil, perr.InvalidMessagePayloadLength
	}
	payload := make([]byte, payloadLength)
	copy(payload, buf[pos:pos+int(payloadLength)])
	pos += int(payloadLength)

	m := contracts.Message{ID: id, Headers: headers, Payload: payload}
	return m, buf[pos:], nil
}
