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
	perr "github.com/nimbusmq/nimbusmq/errors"
)

// PartitioningKind selects how the server routes a SendMessages batch to a
// partition.
type PartitioningKind uint8

const (
	// PartitioningBalanced has the server round-robin the batch across
	// partitions.
	PartitioningBalanced PartitioningKind = 1
	// PartitioningPartitionID targets a specific partition by id.
	PartitioningPartitionID PartitioningKind = 2
	// PartitioningMessagesKey has the server hash opaque key bytes to a
	// partition.
	PartitioningMessagesKey PartitioningKind = 3
)

// PartitioningKindFromCode maps a wire discriminant byte to a
// PartitioningKind. Unknown codes are InvalidCommand, per the protocol-wide
// rule that every unrecognized discriminant is InvalidCommand.
func PartitioningKindFromCode(code uint8) (PartitioningKind, error) {
	switch PartitioningKind(code) {
	case PartitioningBalanced, PartitioningPartitionID, PartitioningMessagesKey:
		return PartitioningKind(code), nil
	default:
		return 0, perr.InvalidCommand
	}
}

// Partitioning is the {kind, length, value} descriptor attached to a
// SendMessages batch. Build one with Balanced, PartitionID or MessagesKey*;
// the zero value is not valid.
type Partitioning struct {
	Kind   PartitioningKind
	Length uint8
	Value  []byte
}

// Balanced selects server-side round-robin partitioning.
func Balanced() Partitioning {
	return Partitioning{Kind: PartitioningBalanced, Length: 0, Value: nil}
}

// PartitionID targets an explicit partition.
func PartitionID(id uint32) Partitioning {
	return Partitioning{Kind: PartitioningPartitionID, Length: 4, Value: leBytes(uint64(id), 4)}
}

// MessagesKey targets a partition computed by hashing opaque key bytes.
func MessagesKey(value []byte) (Partitioning, error) {
	if len(value) == 0 || len(value) > 255 {
		return Partitioning{}, perr.InvalidCommand
	}
	return Partitioning{Kind: PartitioningMessagesKey, Length: uint8(len(value)), Value: value}, nil
}

// MessagesKeyStr is MessagesKey over a string's UTF-8 bytes.
func MessagesKeyStr(value string) (Partitioning, error) {
	return MessagesKey([]byte(value))
}

// MessagesKeyU32 hashes a little-endian-encoded uint32 key.
func MessagesKeyU32(value uint32) Partitioning {
	return Partitioning{Kind: PartitioningMessagesKey, Length: 4, Value: leBytes(uint64(value), 4)}
}

// MessagesKeyU64 hashes a little-endian-encoded uint64 key.
func MessagesKeyU64(value uint64) Partitioning {
	return Partitioning{Kind: PartitioningMessagesKey, Length: 8, Value: leBytes(value, 8)}
}

// MessagesKeyU128 hashes a little-endian-encoded 128-bit key.
func MessagesKeyU128(hi, lo uint64) Partitioning {
	b := make([]byte, 16)
	copy(b[0:8], leBytes(lo, 8))
	copy(b[8:16], leBytes(hi, 8))
	return Partitioning{Kind: PartitioningMessagesKey, Length: 16, Value: b}
}

// Clone returns an independent copy, mirroring the original SDK's
// from_partitioning copy constructor.
func (p Partitioning) Clone() Partitioning {
	v := make([]byte, len(p.Value))
	copy(v, p.Value)
	return Partitioning{Kind: p.Kind, Length: p.Length, Value: v}
}

// SizeInBytes is the wire size: one kind byte, one length byte, then Value.
func (p Partitioning) SizeInBytes() int { return 2 + int(p.Length) }

// Validate enforces: Balanced requires an empty value; every other kind
// requires 1-255 value bytes.
func (p Partitioning) Validate() error {
	switch p.Kind {
	case PartitioningBalanced:
		if len(p.Value) != 0 {
			return perr.InvalidKeyValueLength
		}
	case PartitioningPartitionID, PartitioningMessagesKey:
		if len(p.Value) == 0 || len(p.Value) > 255 {
			return perr.InvalidKeyValueLength
		}
	default:
		return perr.InvalidCommand
	}
	if len(p.Value) != int(p.Length) {
		return perr.InvalidCommand
	}
	return nil
}

// String renders a diagnostic form; never used on the wire.
func (p Partitioning) String() string {
	switch p.Kind {
	case PartitioningBalanced:
		return "balanced"
	case PartitioningPartitionID:
		v := uint32(0)
		for i := 0; i < len(p.Value) && i < 4; i++ {
			v |= uint32(p.Value[i]) << (8 * i)
		}
		return "partition_id:" + NumericIdentifier(v).String()
	default:
		return "messages_key"
	}
}
