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

// Package client declares the transport-agnostic request/response surface
// over the command set. Concrete transports (client/tcp, an in-process
// pipe, a future QUIC client) each implement Client.
package client

import (
	"context"

	"github.com/nimbusmq/nimbusmq/contracts"
)

// Client exposes one method per command family. Every method validates
// its command argument before handing it to the transport; a cancelled
// ctx releases the waiter without corrupting the framing of subsequent
// calls.
type Client interface {
	// Streams
	CreateStream(ctx context.Context, cmd contracts.CreateStream) error
	DeleteStream(ctx context.Context, id contracts.Identifier) error
	GetStream(ctx context.Context, id contracts.Identifier) (*StreamDetails, error)
	GetStreams(ctx context.Context) ([]StreamDetails, error)
	UpdateStream(ctx context.Context, cmd contracts.UpdateStream) error
	PurgeStream(ctx context.Context, id contracts.Identifier) error

	// Topics
	CreateTopic(ctx context.Context, cmd contracts.CreateTopic) error
	DeleteTopic(ctx context.Context, streamID, topicID contracts.Identifier) error
	GetTopic(ctx context.Context, streamID, topicID contracts.Identifier) (*TopicDetails, error)
	GetTopics(ctx context.Context, streamID contracts.Identifier) ([]TopicDetails, error)
	UpdateTopic(ctx context.Context, cmd contracts.UpdateTopic) error
	PurgeTopic(ctx context.Context, streamID, topicID contracts.Identifier) error

	// Consumer groups
	CreateConsumerGroup(ctx context.Context, cmd contracts.CreateConsumerGroup) error
	DeleteConsumerGroup(ctx context.Context, streamID, topicID, groupID contracts.Identifier) error
	GetConsumerGroup(ctx context.Context, streamID, topicID, groupID contracts.Identifier) (*contracts.ConsumerGroupInfo, error)
	GetConsumerGroups(ctx context.Context, streamID, topicID contracts.Identifier) ([]contracts.ConsumerGroupInfo, error)
	JoinConsumerGroup(ctx context.Context, streamID, topicID, groupID contracts.Identifier) error
	LeaveConsumerGroup(ctx context.Context, streamID, topicID, groupID contracts.Identifier) error

	// Messages and offsets
	SendMessages(ctx context.Context, cmd contracts.SendMessages) error
	PollMessages(ctx context.Context, cmd contracts.PollMessages) (*contracts.PolledMessages, error)
	StoreConsumerOffset(ctx context.Context, cmd contracts.StoreConsumerOffset) error
	GetConsumerOffset(ctx context.Context, cmd contracts.GetConsumerOffset) (*ConsumerOffsetInfo, error)

	// Users
	LoginUser(ctx context.Context, username, password string) (*contracts.IdentityInfo, error)
	LogoutUser(ctx context.Context) error
	CreateUser(ctx context.Context, cmd contracts.CreateUser) error
	DeleteUser(ctx context.Context, userID contracts.Identifier) error
	UpdateUser(ctx context.Context, cmd contracts.UpdateUser) error
	ChangePassword(ctx context.Context, cmd contracts.ChangePassword) error
	UpdatePermissions(ctx context.Context, cmd contracts.UpdatePermissions) error
	GetUser(ctx context.Context, userID contracts.Identifier) (*UserDetails, error)
	GetUsers(ctx context.Context) ([]UserDetails, error)

	// Personal access tokens
	CreatePersonalAccessToken(ctx context.Context, cmd contracts.CreatePersonalAccessToken) (*PersonalAccessTokenInfo, error)
	DeletePersonalAccessToken(ctx context.Context, name string) error
	GetPersonalAccessTokens(ctx context.Context) ([]PersonalAccessTokenInfo, error)
	LoginWithPersonalAccessToken(ctx context.Context, token string) (*contracts.IdentityInfo, error)

	// System
	Ping(ctx context.Context) error
	GetStats(ctx context.Context) (*contracts.Stats, error)
	GetMe(ctx context.Context) (*contracts.ClientInfoDetails, error)
	GetClient(ctx context.Context, clientID uint32) (*contracts.ClientInfoDetails, error)
	GetClients(ctx context.Context) ([]contracts.ClientInfo, error)

	// Close releases the transport. The TCP implementation waits for an
	// in-flight call to finish before closing; it does not interrupt it.
	Close() error
}

// StreamDetails is the response payload to GetStream/GetStreams.
type StreamDetails struct {
	ID            uint32
	Name          string
	TopicsCount   uint32
	MessagesCount uint64
	SizeBytes     uint64
}

// TopicDetails is the response payload to GetTopic/GetTopics.
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

// UserDetails is the response payload to GetUser/GetUsers.
type UserDetails struct {
	ID       uint32
	Username string
	Status   contracts.UserStatus
}

// PersonalAccessTokenInfo is the response payload for token listing and
// creation; Token is only populated by CreatePersonalAccessToken.
type PersonalAccessTokenInfo struct {
	Name      string
	ExpiresAt *uint64
	Token     string
}

// ConsumerOffsetInfo is the response payload to GetConsumerOffset.
type ConsumerOffsetInfo struct {
	PartitionID   uint32
	CurrentOffset uint64
	StoredOffset  uint64
}
