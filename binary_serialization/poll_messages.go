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

// SerializePollMessages writes consumer || streamId || topicId ||
// partitionId (present flag + 4 bytes) || strategy || count (u32) ||
// autoCommit (1 byte).
func SerializePollMessages(c contracts.PollMessages) []byte {
	consumerBytes := SerializeConsumer(c.Consumer)
	streamBytes := SerializeIdentifier(c.StreamID)
	topicBytes := SerializeIdentifier(c.TopicID)
	partitionBytes := optionalUint32(c.PartitionID)
	strategyBytes := SerializePollingStrategy(c.Strategy)

	size := len(consumerBytes) + len(streamBytes) + len(topicBytes) + len(partitionBytes) + len(strategyBytes) + 4 + 1
	buf := make([]byte, size)
	pos := 0
	pos += copy(buf[pos:], consumerBytes)
	pos += copy(buf[pos:], streamBytes)
	pos += copy(buf[pos:], topicBytes)
	pos += copy(buf[pos:], partitionBytes)
	pos += copy(buf[pos:], strategyBytes)
	putUint32(buf[pos:pos+4], c.Count)
	pos += 4
	buf[pos] = putBool(c.AutoCommit)
	return buf
}

// ParsePollMessages reconstructs a PollMessages command and validates it.
func ParsePollMessages(buf []byte) (contracts.PollMessages, error) {
	consumer, rest, err := ParseConsumer(buf)
	if err != nil {
		return contracts.PollMessages{}, err
	}
	streamID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.PollMessages{}, err
	}
	topicID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.PollMessages{}, err
	}
	partitionID, rest, err := parseOptionalUint32(rest)
	if err != nil {
		return contracts.PollMessages{}, err
	}
	strategy, rest, err := ParsePollingStrategy(rest)
	if err != nil {
		return contracts.PollMessages{}, err
	}
	if err := requireLen(rest, 5); err != nil {
		return contracts.PollMessages{}, err
	}
	count := getUint32(rest[0:4])
	autoCommit := getBool(rest[4])

	cmd := contracts.PollMessages{
		Consumer:    consumer,
		StreamID:    streamID,
		TopicID:     topicID,
		PartitionID: partitionID,
		Strategy:    strategy,
		Count:       count,
		AutoCommit:  autoCommit,
	}
	if err := cmd.Validate(); err != nil {
		return contracts.PollMessages{}, err
	}
	return cmd, nil
}
