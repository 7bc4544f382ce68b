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

// SerializeCreateTopic writes streamId || optional topicId ||
// partitionsCount (u32) || compression (1 byte) || optional messageExpiry
// || optional maxTopicSize || replicationFactor (1 byte) || name.
func SerializeCreateTopic(c contracts.CreateTopic) []byte {
	streamBytes := SerializeIdentifier(c.StreamID)
	topicIDBytes := optionalUint32(c.TopicID)
	expiryBytes := optionalUint32(c.MessageExpiry)
	maxSizeBytes := optionalUint64(c.MaxTopicSize)

	size := len(streamBytes) + len(topicIDBytes) + 4 + 1 + len(expiryBytes) + len(maxSizeBytes) + 1 + stringSize(c.Name)
	buf := make([]byte, size)
	pos := 0
	pos += copy(buf[pos:], streamBytes)
	pos += copy(buf[pos:], topicIDBytes)
	putUint32(buf[pos:pos+4], c.PartitionsCount)
	pos += 4
	buf[pos] = byte(c.Compression)
	pos++
	pos += copy(buf[pos:], expiryBytes)
	pos += copy(buf[pos:], maxSizeBytes)
	buf[pos] = c.ReplicationFactor
	pos++
	putString(buf[pos:], c.Name)
	return buf
}

// ParseCreateTopic reconstructs a CreateTopic command and validates it.
func ParseCreateTopic(buf []byte) (contracts.CreateTopic, error) {
	streamID, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.CreateTopic{}, err
	}
	topicID, rest, err := parseOptionalUint32(rest)
	if err != nil {
		return contracts.CreateTopic{}, err
	}
	if err := requireLen(rest, 5); err != nil {
		return contracts.CreateTopic{}, err
	}
	partitionsCount := getUint32(rest[0:4])
	compression := contracts.CompressionAlgorithm(rest[4])
	rest = rest[5:]

	expiry, rest, err := parseOptionalUint32(rest)
	if err != nil {
		return contracts.CreateTopic{}, err
	}
	maxSize, rest, err := parseOptionalUint64(rest)
	if err != nil {
		return contracts.CreateTopic{}, err
	}
	if err := requireLen(rest, 1); err != nil {
		return contracts.CreateTopic{}, err
	}
	replicationFactor := rest[0]
	rest = rest[1:]

	name, _, err := parseString(rest)
	if err != nil {
		return contracts.CreateTopic{}, err
	}

	cmd := contracts.CreateTopic{
		StreamID:          streamID,
		TopicID:           topicID,
		PartitionsCount:   partitionsCount,
		Compression:       compression,
		Name:              name,
		MessageExpiry:     expiry,
		MaxTopicSize:      maxSize,
		ReplicationFactor: replicationFactor,
	}
	if err := cmd.Validate(); err != nil {
		return contracts.CreateTopic{}, err
	}
	return cmd, nil
}

// SerializeDeleteTopic writes streamId || topicId.
func SerializeDeleteTopic(c contracts.DeleteTopic) []byte {
	return concatIdentifiers(c.StreamID, c.TopicID)
}

// ParseDeleteTopic reconstructs a DeleteTopic command.
func ParseDeleteTopic(buf []byte) (contracts.DeleteTopic, error) {
	streamID, topicID, err := parseTwoIdentifiers(buf)
	if err != nil {
		return contracts.DeleteTopic{}, err
	}
	cmd := contracts.DeleteTopic{StreamID: streamID, TopicID: topicID}
	if err := cmd.Validate(); err != nil {
		return contracts.DeleteTopic{}, err
	}
	return cmd, nil
}

// SerializeGetTopic writes streamId || topicId.
func SerializeGetTopic(c contracts.GetTopic) []byte {
	return concatIdentifiers(c.StreamID, c.TopicID)
}

// ParseGetTopic reconstructs a GetTopic command.
func ParseGetTopic(buf []byte) (contracts.GetTopic, error) {
	streamID, topicID, err := parseTwoIdentifiers(buf)
	if err != nil {
		return contracts.GetTopic{}, err
	}
	cmd := contracts.GetTopic{StreamID: streamID, TopicID: topicID}
	if err := cmd.Validate(); err != nil {
		return contracts.GetTopic{}, err
	}
	return cmd, nil
}

// SerializeGetTopics writes streamId.
func SerializeGetTopics(c contracts.GetTopics) []byte {
	return SerializeIdentifier(c.StreamID)
}

// ParseGetTopics reconstructs a GetTopics command.
func ParseGetTopics(buf []byte) (contracts.GetTopics, error) {
	streamID, _, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.GetTopics{}, err
	}
	cmd := contracts.GetTopics{StreamID: streamID}
	if err := cmd.Validate(); err != nil {
		return contracts.GetTopics{}, err
	}
	return cmd, nil
}

// SerializeUpdateTopic writes streamId || topicId || compression (1
// byte) || optional messageExpiry || optional maxTopicSize ||
// replicationFactor (1 byte) || name.
func SerializeUpdateTopic(c contracts.UpdateTopic) []byte {
	idBytes := concatIdentifiers(c.StreamID, c.TopicID)
	expiryBytes := optionalUint32(c.MessageExpiry)
	maxSizeBytes := optionalUint64(c.MaxTopicSize)

	size := len(idBytes) + 1 + len(expiryBytes) + len(maxSizeBytes) + 1 + stringSize(c.Name)
	buf := make([]byte, size)
	pos := copy(buf, idBytes)
	buf[pos] = byte(c.Compression)
	pos++
	pos += copy(buf[pos:], expiryBytes)
	pos += copy(buf[pos:], maxSizeBytes)
	buf[pos] = c.ReplicationFactor
	pos++
	putString(buf[pos:], c.Name)
	return buf
}

// ParseUpdateTopic reconstructs an UpdateTopic command.
func ParseUpdateTopic(buf []byte) (contracts.UpdateTopic, error) {
	streamID, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.UpdateTopic{}, err
	}
	topicID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.UpdateTopic{}, err
	}
	if err := requireLen(rest, 1); err != nil {
		return contracts.UpdateTopic{}, err
	}
	compression := contracts.CompressionAlgorithm(rest[0])
	rest = rest[1:]

	expiry, rest, err := parseOptionalUint32(rest)
	if err != nil {
		return contracts.UpdateTopic{}, err
	}
	maxSize, rest, err := parseOptionalUint64(rest)
	if err != nil {
		return contracts.UpdateTopic{}, err
	}
	if err := requireLen(rest, 1); err != nil {
		return contracts.UpdateTopic{}, err
	}
	replicationFactor := rest[0]
	rest = rest[1:]

	name, _, err := parseString(rest)
	if err != nil {
		return contracts.UpdateTopic{}, err
	}

	cmd := contracts.UpdateTopic{
		StreamID:          streamID,
		TopicID:           topicID,
		Compression:       compression,
		Name:              name,
		MessageExpiry:     expiry,
		MaxTopicSize:      maxSize,
		ReplicationFactor: replicationFactor,
	}
	if err := cmd.Validate(); err != nil {
		return contracts.UpdateTopic{}, err
	}
	return cmd, nil
}

// SerializePurgeTopic writes streamId || topicId.
func SerializePurgeTopic(c contracts.PurgeTopic) []byte {
	return concatIdentifiers(c.StreamID, c.TopicID)
}

// ParsePurgeTopic reconstructs a PurgeTopic command.
func ParsePurgeTopic(buf []byte) (contracts.PurgeTopic, error) {
	streamID, topicID, err := parseTwoIdentifiers(buf)
	if err != nil {
		return contracts.PurgeTopic{}, err
	}
	cmd := contracts.PurgeTopic{StreamID: streamID, TopicID: topicID}
	if err := cmd.Validate(); err != nil {
		return contracts.PurgeTopic{}, err
	}
	return cmd, nil
}

func concatIdentifiers(ids ...contracts.Identifier) []byte {
	size := 0
	for _, id := range ids {
		size += id.SizeInBytes()
	}
	buf := make([]byte, size)
	pos := 0
	for _, id := range ids {
		pos += copy(buf[pos:], SerializeIdentifier(id))
	}
	return buf
}

func parseTwoIdentifiers(buf []byte) (contracts.Identifier, contracts.Identifier, error) {
	a, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.Identifier{}, contracts.Identifier{}, err
	}
	b, _, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.Identifier{}, contracts.Identifier{}, err
	}
	return a, b, nil
}
