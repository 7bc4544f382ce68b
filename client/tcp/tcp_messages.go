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

package tcp

import (
	"context"

	"github.com/klauspost/compress/s2"

	binaryserialization "github.com/nimbusmq/nimbusmq/binary_serialization"
	"github.com/nimbusmq/nimbusmq/client"
	"github.com/nimbusmq/nimbusmq/contracts"
)

// SendMessages serializes the batch and, when the client was configured
// with a PayloadCompression other than CompressionDisabled, compresses the serialized
// body with s2 before framing it. The command code is unaffected: the
// server distinguishes compressed bodies by a leading algorithm byte this
// client always writes, so an uncompressed peer and a compressed one stay
// on the same command code.
func (t *NimbusTcpClient) SendMessages(ctx context.Context, cmd contracts.SendMessages) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	body := binaryserialization.SerializeSendMessages(cmd)
	framed := t.encodeCompressed(body)
	_, err := t.sendAndFetchResponse(ctx, framed, contracts.CodeSendMessages)
	return err
}

func (t *NimbusTcpClient) PollMessages(ctx context.Context, cmd contracts.PollMessages) (*contracts.PolledMessages, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializePollMessages(cmd), contracts.CodePollMessages)
	if err != nil {
		return nil, err
	}
	body, err := t.decodeCompressed(buf)
	if err != nil {
		return nil, err
	}
	polled, err := binaryserialization.DeserializePolledMessages(body)
	if err != nil {
		return nil, err
	}
	return &polled, nil
}

func (t *NimbusTcpClient) StoreConsumerOffset(ctx context.Context, cmd contracts.StoreConsumerOffset) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeStoreConsumerOffset(cmd), contracts.CodeStoreConsumerOffset)
	return err
}

func (t *NimbusTcpClient) GetConsumerOffset(ctx context.Context, cmd contracts.GetConsumerOffset) (*client.ConsumerOffsetInfo, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeGetConsumerOffset(cmd), contracts.CodeGetConsumerOffset)
	if err != nil {
		return nil, err
	}
	info, err := binaryserialization.DeserializeConsumerOffset(buf)
	if err != nil {
		return nil, err
	}
	return &client.ConsumerOffsetInfo{PartitionID: info.PartitionID, CurrentOffset: info.CurrentOffset, StoredOffset: info.StoredOffset}, nil
}

// compressionNone/compressionS2 are the one-byte algorithm tags this
// client writes ahead of a SendMessages body; PayloadCompression on
// Config selects which one.
const (
	compressionNone byte = 0
	compressionS2   byte = 1
)

// PayloadCompression selects whether SendMessages bodies are compressed
// with s2 before being framed on the wire.
type PayloadCompression uint8

const (
	CompressionDisabled PayloadCompression = iota
	CompressionS2
	CompressionS2Better
	CompressionS2Best
)

func (t *NimbusTcpClient) encodeCompressed(body []byte) []byte {
	if t.cfg.Compression == CompressionDisabled {
		return append([]byte{compressionNone}, body...)
	}
	var compressed []byte
	switch t.cfg.Compression {
	case CompressionS2Better:
		compressed = s2.EncodeBetter(nil, body)
	case CompressionS2Best:
		compressed = s2.EncodeBest(nil, body)
	default:
		compressed = s2.Encode(nil, body)
	}
	return append([]byte{compressionS2}, compressed...)
}

func (t *NimbusTcpClient) decodeCompressed(framed []byte) ([]byte, error) {
	if len(framed) == 0 {
		return framed, nil
	}
	tag, body := framed[0], framed[1:]
	if tag == compressionNone {
		return body, nil
	}
	return s2.Decode(nil, body)
}
