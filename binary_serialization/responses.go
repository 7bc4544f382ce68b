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

// Response payload codecs. The wire shape of these is a server/transport
// concern the command protocol leaves to the implementation; this file
// fixes one concrete little-endian, length-prefixed shape so the
// reference TCP client has something to decode.

// StreamDetails mirrors client.StreamDetails without importing the client
// package (which itself depends on contracts, not on binaryserialization).
type StreamDetails struct {
	ID            uint32
	Name          string
	TopicsCount   uint32
	MessagesCount uint64
	SizeBytes     uint64
}

// DeserializeStream reads one StreamDetails record.
func DeserializeStream(buf []byte) (StreamDetails, error) {
	if err := requireLen(buf, 4+4+8+8); err != nil {
		return StreamDetails{}, err
	}
	id := getUint32(buf[0:4])
	topicsCount := getUint32(buf[4:8])
	messagesCount := getUint64(buf[8:16])
	sizeBytes := getUint64(buf[16:24])
	name, _, err := parseString(buf[24:])
	if err != nil {
		return StreamDetails{}, err
	}
	return StreamDetails{ID: id, Name: name, TopicsCount: topicsCount, MessagesCount: messagesCount, SizeBytes: sizeBytes}, nil
}

// DeserializeStreams reads a length-prefixed sequence of StreamDetails
// records, each itself length-prefixed so the list can be walked without
// re-deriving each record's size.
func DeserializeStreams(buf []byte) ([]StreamDetails, error) {
	var out []StreamDetails
	for len(buf) > 0 {
		recordLen, rest, err := parseRecordLen(buf)
		if err != nil {
			return nil, err
		}
		s, err := DeserializeStream(rest[:recordLen])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		buf = rest[recordLen:]
	}
	return out, nil
}

// TopicDetails mirrors client.TopicDetails.
type TopicDetails struct {
	ID                uint32
	StreamID          uint32
	Name              string
	PartitionsCount   uint32
	MessagesCount     uint64
	SizeBytes         uint64
	MessageExpiry     *uint32
	MaxTopicSize      *uint64
	ReplicationFactor uint8
}

// DeserializeTopic reads one TopicDetails record.
func DeserializeTopic(buf []byte) (TopicDetails, error) {
	if err := requireLen(buf, 4+4+4+8+8+1); err != nil {
		return TopicDetails{}, err
	}
	id := getUint32(buf[0:4])
	streamID := getUint32(buf[4:8])
	partitionsCount := getUint32(buf[8:12])
	messagesCount := getUint64(buf[12:20])
	sizeBytes := getUint64(buf[20:28])
	rest := buf[28:]

	expiry, rest, err := parseOptionalUint32(rest)
	if err != nil {
		return TopicDetails{}, err
	}
	maxSize, rest, err := parseOptionalUint64(rest)
	if err != nil {
		return TopicDetails{}, err
	}
	if err := requireLen(rest, 1); err != nil {
		return TopicDetails{}, err
	}
	replicationFactor := rest[0]
	rest = rest[1:]

	name, _, err := parseString(rest)
	if err != nil {
		return TopicDetails{}, err
	}
	return TopicDetails{
		ID:                id,
		StreamID:          streamID,
		Name:              name,
		PartitionsCount:   partitionsCount,
		MessagesCount:     messagesCount,
		SizeBytes:         sizeBytes,
		MessageExpiry:     expiry,
		MaxTopicSize:      maxSize,
		ReplicationFactor: replicationFactor,
	}, nil
}

// DeserializeTopics reads a length-prefixed sequence of TopicDetails.
func DeserializeTopics(buf []byte) ([]TopicDetails, error) {
	var out []TopicDetails
	for len(buf) > 0 {
		recordLen, rest, err := parseRecordLen(buf)
		if err != nil {
			return nil, err
		}
		t, err := DeserializeTopic(rest[:recordLen])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		buf = rest[recordLen:]
	}
	return out, nil
}

// DeserializeConsumerGroup reads one ConsumerGroupInfo record.
func DeserializeConsumerGroup(buf []byte) (contracts.ConsumerGroupInfo, error) {
	streamID, topicID, groupID, err := parseStreamTopicGroup(buf)
	if err != nil {
		return contracts.ConsumerGroupInfo{}, err
	}
	return contracts.ConsumerGroupInfo{StreamID: streamID, TopicID: topicID, GroupID: groupID}, nil
}

// DeserializeConsumerGroups reads a length-prefixed sequence of
// ConsumerGroupInfo records.
func DeserializeConsumerGroups(buf []byte) ([]contracts.ConsumerGroupInfo, error) {
	var out []contracts.ConsumerGroupInfo
	for len(buf) > 0 {
		recordLen, rest, err := parseRecordLen(buf)
		if err != nil {
			return nil, err
		}
		g, err := DeserializeConsumerGroup(rest[:recordLen])
		if err != nil {
			return nil, err
		}
		out = append(out, g)
		buf = rest[recordLen:]
	}
	return out, nil
}

// UserDetails mirrors client.UserDetails.
type UserDetails struct {
	ID       uint32
	Username string
	Status   contracts.UserStatus
}

// DeserializeUser reads one UserDetails record.
func DeserializeUser(buf []byte) (UserDetails, error) {
	if err := requireLen(buf, 4+1); err != nil {
		return UserDetails{}, err
	}
	id := getUint32(buf[0:4])
	status := contracts.UserStatus(buf[4])
	name, _, err := parseString(buf[5:])
	if err != nil {
		return UserDetails{}, err
	}
	return UserDetails{ID: id, Username: name, Status: status}, nil
}

// DeserializeUsers reads a length-prefixed sequence of UserDetails.
func DeserializeUsers(buf []byte) ([]UserDetails, error) {
	var out []UserDetails
	for len(buf) > 0 {
		recordLen, rest, err := parseRecordLen(buf)
		if err != nil {
			return nil, err
		}
		u, err := DeserializeUser(rest[:recordLen])
		if err != nil {
			return nil, err
		}
		out = append(out, u)
		buf = rest[recordLen:]
	}
	return out, nil
}

// DeserializeIdentityInfo reads the response to a successful login.
func DeserializeIdentityInfo(buf []byte) (contracts.IdentityInfo, error) {
	if err := requireLen(buf, 4); err != nil {
		return contracts.IdentityInfo{}, err
	}
	return contracts.IdentityInfo{UserID: getUint32(buf[0:4])}, nil
}

// PersonalAccessTokenInfo mirrors client.PersonalAccessTokenInfo.
type PersonalAccessTokenInfo struct {
	Name      string
	ExpiresAt *uint64
	Token     string
}

// DeserializeCreatePersonalAccessToken reads the response to
// CreatePersonalAccessToken, which echoes the minted token value.
func DeserializeCreatePersonalAccessToken(buf []byte) (PersonalAccessTokenInfo, error) {
	name, rest, err := parseString(buf)
	if err != nil {
		return PersonalAccessTokenInfo{}, err
	}
	expiresAt, rest, err := parseOptionalUint64(rest)
	if err != nil {
		return PersonalAccessTokenInfo{}, err
	}
	token, _, err := parseString(rest)
	if err != nil {
		return PersonalAccessTokenInfo{}, err
	}
	return PersonalAccessTokenInfo{Name: name, ExpiresAt: expiresAt, Token: token}, nil
}

// DeserializePersonalAccessToken reads one listed token (no Token value:
// the server never re-sends a minted secret after creation).
func DeserializePersonalAccessToken(buf []byte) (PersonalAccessTokenInfo, error) {
	name, rest, err := parseString(buf)
	if err != nil {
		return PersonalAccessTokenInfo{}, err
	}
	expiresAt, _, err := parseOptionalUint64(rest)
	if err != nil {
		return PersonalAccessTokenInfo{}, err
	}
	return PersonalAccessTokenInfo{Name: name, ExpiresAt: expiresAt}, nil
}

// DeserializePersonalAccessTokens reads a length-prefixed sequence of
// listed tokens.
func DeserializePersonalAccessTokens(buf []byte) ([]PersonalAccessTokenInfo, error) {
	var out []PersonalAccessTokenInfo
	for len(buf) > 0 {
		recordLen, rest, err := parseRecordLen(buf)
		if err != nil {
			return nil, err
		}
		t, err := DeserializePersonalAccessToken(rest[:recordLen])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
		buf = rest[recordLen:]
	}
	return out, nil
}

// ConsumerOffsetInfo mirrors client.ConsumerOffsetInfo.
type ConsumerOffsetInfo struct {
	PartitionID   uint32
	CurrentOffset uint64
	StoredOffset  uint64
}

// DeserializeConsumerOffset reads the response to GetConsumerOffset.
func DeserializeConsumerOffset(buf []byte) (ConsumerOffsetInfo, error) {
	if err := requireLen(buf, 4+8+8); err != nil {
		return ConsumerOffsetInfo{}, err
	}
	return ConsumerOffsetInfo{
		PartitionID:   getUint32(buf[0:4]),
		CurrentOffset: getUint64(buf[4:12]),
		StoredOffset:  getUint64(buf[12:20]),
	}, nil
}

// DeserializePolledMessages reads the response to PollMessages: partition
// id, current offset, then a length-prefixed sequence of
// offset||timestamp||message records.
func DeserializePolledMessages(buf []byte) (contracts.PolledMessages, error) {
	if err := requireLen(buf, 4+8); err != nil {
		return contracts.PolledMessages{}, err
	}
	partitionID := getUint32(buf[0:4])
	currentOffset := getUint64(buf[4:12])
	rest := buf[12:]

	var messages []contracts.PolledMessage
	for len(rest) > 0 {
		if err := requireLen(rest, 8+8); err != nil {
			return contracts.PolledMessages{}, err
		}
		offset := getUint64(rest[0:8])
		timestamp := getUint64(rest[8:16])
		var m contracts.Message
		var err error
		m, rest, err = ParseMessage(rest[16:])
		if err != nil {
			return contracts.PolledMessages{}, err
		}
		messages = append(messages, contracts.PolledMessage{Offset: offset, Timestamp: timestamp, Message: m})
	}
	return contracts.PolledMessages{PartitionID: partitionID, CurrentOffset: currentOffset, Messages: messages}, nil
}

// DeserializeStats reads the response to GetStats.
func DeserializeStats(buf []byte) (contracts.Stats, error) {
	if err := requireLen(buf, 4*6+8); err != nil {
		return contracts.Stats{}, err
	}
	return contracts.Stats{
		ProcessID:           getUint32(buf[0:4]),
		StreamsCount:        getUint32(buf[4:8]),
		TopicsCount:         getUint32(buf[8:12]),
		PartitionsCount:     getUint32(buf[12:16]),
		MessagesCount:       getUint64(buf[16:24]),
		ClientsCount:        getUint32(buf[24:28]),
		ConsumerGroupsCount: getUint32(buf[28:32]),
	}, nil
}

// DeserializeClient reads one ClientInfoDetails record: the summary row
// plus the consumer groups it has joined.
func DeserializeClient(buf []byte) (contracts.ClientInfoDetails, error) {
	info, rest, err := deserializeClientInfo(buf)
	if err != nil {
		return contracts.ClientInfoDetails{}, err
	}
	groups, err := DeserializeConsumerGroups(rest)
	if err != nil {
		return contracts.ClientInfoDetails{}, err
	}
	return contracts.ClientInfoDetails{ClientInfo: info, ConsumerGroups: groups}, nil
}

// DeserializeClients reads a length-prefixed sequence of ClientInfo
// summary rows (no consumer-group detail, matching GetClients' lighter
// response).
func DeserializeClients(buf []byte) ([]contracts.ClientInfo, error) {
	var out []contracts.ClientInfo
	for len(buf) > 0 {
		recordLen, rest, err := parseRecordLen(buf)
		if err != nil {
			return nil, err
		}
		info, _, err := deserializeClientInfo(rest[:recordLen])
		if err != nil {
			return nil, err
		}
		out = append(out, info)
		buf = rest[recordLen:]
	}
	return out, nil
}

func deserializeClientInfo(buf []byte) (contracts.ClientInfo, []byte, error) {
	if err := requireLen(buf, 4); err != nil {
		return contracts.ClientInfo{}, nil, err
	}
	clientID := getUint32(buf[0:4])
	userID, rest, err := parseOptionalUint32(buf[4:])
	if err != nil {
		return contracts.ClientInfo{}, nil, err
	}
	address, rest, err := parseString(rest)
	if err != nil {
		return contracts.ClientInfo{}, nil, err
	}
	transport, rest, err := parseString(rest)
	if err != nil {
		return contracts.ClientInfo{}, nil, err
	}
	return contracts.ClientInfo{ClientID: clientID, UserID: userID, Address: address, TransportName: transport}, rest, nil
}

// parseRecordLen reads the u32 length prefix used by every list response
// to delimit one variable-length record from the next.
func parseRecordLen(buf []byte) (int, []byte, error) {
	if err := requireLen(buf, 4); err != nil {
		return 0, nil, err
	}
	n := int(getUint32(buf[0:4]))
	rest := buf[4:]
	if err := requireLen(rest, n); err != nil {
		return 0, nil, perr.InvalidCommand
	}
	return n, rest, nil
}
