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

// SerializeCreateConsumerGroup writes streamId || topicId || optional
// groupId || name.
func SerializeCreateConsumerGroup(c contracts.CreateConsumerGroup) []byte {
	idBytes := concatIdentifiers(c.StreamID, c.TopicID)
	groupIDBytes := optionalUint32(c.GroupID)
	buf := make([]byte, len(idBytes)+len(groupIDBytes)+stringSize(c.Name))
	pos := copy(buf, idBytes)
	pos += copy(buf[pos:], groupIDBytes)
	putString(buf[pos:], c.Name)
	return buf
}

// ParseCreateConsumerGroup reconstructs a CreateConsumerGroup command.
func ParseCreateConsumerGroup(buf []byte) (contracts.CreateConsumerGroup, error) {
	streamID, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.CreateConsumerGroup{}, err
	}
	topicID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.CreateConsumerGroup{}, err
	}
	groupID, rest, err := parseOptionalUint32(rest)
	if err != nil {
		return contracts.CreateConsumerGroup{}, err
	}
	name, _, err := parseString(rest)
	if err != nil {
		return contracts.CreateConsumerGroup{}, err
	}
	cmd := contracts.CreateConsumerGroup{StreamID: streamID, TopicID: topicID, GroupID: groupID, Name: name}
	if err := cmd.Validate(); err != nil {
		return contracts.CreateConsumerGroup{}, err
	}
	return cmd, nil
}

func serializeStreamTopicGroup(streamID, topicID, groupID contracts.Identifier) []byte {
	return concatIdentifiers(streamID, topicID, groupID)
}

func parseStreamTopicGroup(buf []byte) (contracts.Identifier, contracts.Identifier, contracts.Identifier, error) {
	streamID, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.Identifier{}, contracts.Identifier{}, contracts.Identifier{}, err
	}
	topicID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.Identifier{}, contracts.Identifier{}, contracts.Identifier{}, err
	}
	groupID, _, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.Identifier{}, contracts.Identifier{}, contracts.Identifier{}, err
	}
	return streamID, topicID, groupID, nil
}

// SerializeDeleteConsumerGroup writes streamId || topicId || groupId.
func SerializeDeleteConsumerGroup(c contracts.DeleteConsumerGroup) []byte {
	return serializeStreamTopicGroup(c.StreamID, c.TopicID, c.GroupID)
}

// ParseDeleteConsumerGroup reconstructs a DeleteConsumerGroup command.
func ParseDeleteConsumerGroup(buf []byte) (contracts.DeleteConsumerGroup, error) {
	s, t, g, err := parseStreamTopicGroup(buf)
	if err != nil {
		return contracts.DeleteConsumerGroup{}, err
	}
	cmd := contracts.DeleteConsumerGroup{StreamID: s, TopicID: t, GroupID: g}
	if err := cmd.Validate(); err != nil {
		return contracts.DeleteConsumerGroup{}, err
	}
	return cmd, nil
}

// SerializeGetConsumerGroup writes streamId || topicId || groupId.
func SerializeGetConsumerGroup(c contracts.GetConsumerGroup) []byte {
	return serializeStreamTopicGroup(c.StreamID, c.TopicID, c.GroupID)
}

// ParseGetConsumerGroup reconstructs a GetConsumerGroup command.
func ParseGetConsumerGroup(buf []byte) (contracts.GetConsumerGroup, error) {
	s, t, g, err := parseStreamTopicGroup(buf)
	if err != nil {
		return contracts.GetConsumerGroup{}, err
	}
	cmd := contracts.GetConsumerGroup{StreamID: s, TopicID: t, GroupID: g}
	if err := cmd.Validate(); err != nil {
		return contracts.GetConsumerGroup{}, err
	}
	return cmd, nil
}

// SerializeGetConsumerGroups writes streamId || topicId.
func SerializeGetConsumerGroups(c contracts.GetConsumerGroups) []byte {
	return concatIdentifiers(c.StreamID, c.TopicID)
}

// ParseGetConsumerGroups reconstructs a GetConsumerGroups command.
func ParseGetConsumerGroups(buf []byte) (contracts.GetConsumerGroups, error) {
	s, t, err := parseTwoIdentifiers(buf)
	if err != nil {
		return contracts.GetConsumerGroups{}, err
	}
	cmd := contracts.GetConsumerGroups{StreamID: s, TopicID: t}
	if err := cmd.Validate(); err != nil {
		return contracts.GetConsumerGroups{}, err
	}
	return cmd, nil
}

// SerializeJoinConsumerGroup writes streamId || topicId || groupId.
func SerializeJoinConsumerGroup(c contracts.JoinConsumerGroup) []byte {
	return serializeStreamTopicGroup(c.StreamID, c.TopicID, c.GroupID)
}

// ParseJoinConsumerGroup reconstructs a JoinConsumerGroup command.
func ParseJoinConsumerGroup(buf []byte) (contracts.JoinConsumerGroup, error) {
	s, t, g, err := parseStreamTopicGroup(buf)
	if err != nil {
		return contracts.JoinConsumerGroup{}, err
	}
	cmd := contracts.JoinConsumerGroup{StreamID: s, TopicID: t, GroupID: g}
	if err := cmd.Validate(); err != nil {
		return contracts.JoinConsumerGroup{}, err
	}
	return cmd, nil
}

// SerializeLeaveConsumerGroup writes streamId || topicId || groupId.
func SerializeLeaveConsumerGroup(c contracts.LeaveConsumerGroup) []byte {
	return serializeStreamTopicGroup(c.StreamID, c.TopicID, c.GroupID)
}

// ParseLeaveConsumerGroup reconstructs a LeaveConsumerGroup command.
func ParseLeaveConsumerGroup(buf []byte) (contracts.LeaveConsumerGroup, error) {
	s, t, g, err := parseStreamTopicGroup(buf)
	if err != nil {
		return contracts.LeaveConsumerGroup{}, err
	}
	cmd := contracts.LeaveConsumerGroup{StreamID: s, TopicID: t, GroupID: g}
	if err := cmd.Validate(); err != nil {
		return contracts.LeaveConsumerGroup{}, err
	}
	return cmd, nil
}
