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
)

// SerializeStoreConsumerOffset writes consumer || streamId || topicId ||
// partitionId (optional) || offset (u64).
func SerializeStoreConsumerOffset(c contracts.StoreConsumerOffset) []byte {
	consumerBytes := SerializeConsumer(c.Consumer)
	streamBytes := SerializeIdentifier(c.StreamID)
	topicBytes := SerializeIdentifier(c.TopicID)
	partitionBytes := optionalUint32(c.PartitionID)

	buf := make([]byte, len(consumerBytes)+len(streamBytes)+len(topicBytes)+len(partitionBytes)+8)
	pos := 0
	pos += copy(buf[pos:], consumerBytes)
	pos += copy(buf[pos:], streamBytes)
	pos += copy(buf[pos:], topicBytes)
	pos += copy(buf[pos:], partitionBytes)
	putUint64(buf[pos:pos+8], c.Offset)
	return buf
}

// ParseStoreConsumerOffset reconstructs a StoreConsumerOffset command.
func ParseStoreConsumerOffset(buf []byte) (contracts.StoreConsumerOffset, error) {
	consumer, rest, err := ParseConsumer(buf)
	if err != nil {
		return contracts.StoreConsumerOffset{}, err
	}
	streamID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.StoreConsumerOffset{}, err
	}
	topicID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.StoreConsumerOffset{}, err
	}
	partitionID, rest, err := parseOptionalUint32(rest)
	if err != nil {
		return contracts.StoreConsumerOffset{}, err
	}
	if err := requireLen(rest, 8); err != nil {
		return contracts.StoreConsumerOffset{}, err
	}
	offset := getUint64(rest[0:8])

	cmd := contracts.StoreConsumerOffset{
		Consumer:    consumer,
		StreamID:    streamID,
		TopicID:     topicID,
		PartitionID: partitionID,
		Offset:      offset,
	}
	if err := cmd.Validate(); err != nil {
		return contracts.StoreConsumerOffset{}, err
	}
	return cmd, nil
}

// SerializeGetConsumerOffset writes consumer || streamId || topicId ||
// partitionId (optional).
func SerializeGetConsumerOffset(c contracts.GetConsumerOffset) []byte {
	consumerBytes := SerializeConsumer(c.Consumer)
	streamBytes := SerializeIdentifier(c.StreamID)
	topicBytes := SerializeIdentifier(c.TopicID)
	partitionBytes := optionalUint32(c.PartitionID)

	buf := make([]byte, len(consumerBytes)+len(streamBytes)+len(topicBytes)+len(partitionBytes))
	pos := 0
	pos += copy(buf[pos:], consumerBytes)
	pos += copy(buf[pos:], streamBytes)
	pos += copy(buf[pos:], topicBytes)
	copy(buf[pos:], partitionBytes)
	return buf
}

// ParseGetConsumerOffset reconstructs a GetConsumerOffset command.
func ParseGetConsumerOffset(buf []byte) (contracts.GetConsumerOffset, error) {
	consumer, rest, err := ParseConsumer(buf)
	if err != nil {
		return contracts.GetConsumerOffset{}, err
	}
	streamID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.GetConsumerOffset{}, err
	}
	topicID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.GetConsumerOffset{}, err
	}
	partitionID, _, err := parseOptionalUint32(rest)
	if err != nil {
		return contracts.GetConsumerOffset{}, err
	}

	cmd := contracts.GetConsumerOffset{
		Consumer:    consumer,
		StreamID:    streamID,
		TopicID:     topicID,
		PartitionID: partitionID,
	}
	if err := cmd.Validate(); err != nil {
		return contracts.GetConsumerOffset{}, err
	}
	return cmd, nil
}
